package jhd1802

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestClassifyErrno(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"remote I/O", syscall.EREMOTEIO, ErrBusFault},
		{"no such device", syscall.ENXIO, ErrBusFault},
		{"timed out", syscall.ETIMEDOUT, ErrBusFault},
		{"I/O error", syscall.EIO, ErrUnexpectedTransport},
		{"sysfs remote I/O", fmt.Errorf("sysfs-i2c: %v", syscall.EREMOTEIO), ErrBusFault},
		{"sysfs I/O error", fmt.Errorf("sysfs-i2c: %v", syscall.EIO), ErrUnexpectedTransport},
		{"path error", &os.PathError{Op: "ioctl", Path: "/dev/i2c-1", Err: syscall.EREMOTEIO}, ErrBusFault},
		{"permission", syscall.EACCES, ErrUnexpectedTransport},
		{"bad file", syscall.EBADF, ErrUnexpectedTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
