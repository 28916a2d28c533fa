package jhd1802

import (
	"errors"
	"strings"
	"syscall"
)

// noAckErrnos are the errnos i2c-dev adapters report when a slave does not
// acknowledge its address. EIO is left out: adapters also use it for
// arbitration loss and bus errors.
var noAckErrnos = []syscall.Errno{syscall.EREMOTEIO, syscall.ENXIO, syscall.ETIMEDOUT}

// isNoAckErrno recognizes noAckErrnos, wrapped or formatted into the error
// text as periph's sysfs bus does ("sysfs-i2c: remote I/O error").
func isNoAckErrno(err error) bool {
	msg := err.Error()
	for _, e := range noAckErrnos {
		if errors.Is(err, e) || strings.HasSuffix(msg, ": "+e.Error()) {
			return true
		}
	}
	return false
}
