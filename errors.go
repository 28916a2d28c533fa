package jhd1802

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"periph.io/x/conn/v3/display"
)

const packageName = "jhd1802"

var (
	// ErrBusFault reports that nothing answered at the device address: no
	// acknowledgment, an empty scan or a timeout.
	ErrBusFault = errors.New("jhd1802: no device responding")
	// ErrUnexpectedTransport reports any other bus failure seen while probing.
	ErrUnexpectedTransport = errors.New("jhd1802: unexpected transport error")
	// ErrNoAck can be returned (or wrapped) by a bus implementation when the
	// addressed device did not acknowledge. See package tinygobus.
	ErrNoAck = errors.New("jhd1802: no acknowledgment")
	// ErrOutOfRange is returned by MoveTo for coordinates outside the display.
	ErrOutOfRange = errors.New("jhd1802: position out of range")
	// ErrUnsupportedChar is returned for characters outside the 8-bit
	// character ROM.
	ErrUnsupportedChar = errors.New("jhd1802: unsupported character")

	ErrNotImplemented = fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)
	ErrInvalidCommand = fmt.Errorf("%s: %w", packageName, display.ErrInvalidCommand)
)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// classify maps a probe or bus failure onto ErrBusFault or
// ErrUnexpectedTransport. Already classified errors are returned unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrBusFault), errors.Is(err, ErrUnexpectedTransport):
		return err
	case isNoAck(err):
		return fmt.Errorf("%w: %w", ErrBusFault, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedTransport, err)
	}
}

// isNoAck reports whether err means the device did not answer, as opposed to
// the bus itself misbehaving.
func isNoAck(err error) bool {
	if errors.Is(err, ErrNoAck) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return true
	}
	return isNoAckErrno(err)
}
