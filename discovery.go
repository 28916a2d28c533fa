package jhd1802

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Range of 7-bit addresses probed by Scan. 0x00-0x07 and 0x78-0x7F are
// reserved by the I²C specification.
const (
	scanFirst uint16 = 0x08
	scanLast  uint16 = 0x77
)

// noop is written to the display to check that it acknowledges. A lone
// control selector with no instruction leaves the display untouched.
var noop = []byte{0x00}

// Scan returns the addresses that acknowledge a one-byte read, in ascending
// order. Reading leaves the register pointers of other devices on the bus
// where they were.
//
// A device that does not acknowledge is skipped. Any other bus error stops
// the scan and is returned with the addresses found so far.
func Scan(b i2c.Bus) ([]uint16, error) {
	var found []uint16
	var r [1]byte
	for addr := scanFirst; addr <= scanLast; addr++ {
		err := b.Tx(addr, nil, r[:])
		if err == nil {
			found = append(found, addr)
			continue
		}
		if isNoAck(err) {
			continue
		}
		return found, wrap(fmt.Errorf("scan at %s: %w", i2c.Addr(addr), err))
	}
	return found, nil
}

// Probe checks that a device answers at addr: the bus is scanned, then a
// no-op write is sent to addr. The write decides: write-only controllers
// may not answer the read used by Scan, and addr may lie outside the scanned
// range.
//
// It returns Ready, or Degraded with an error wrapping either ErrBusFault or
// ErrUnexpectedTransport. Probe leaves the display untouched and can be
// repeated.
func Probe(b i2c.Bus, addr uint16) (State, error) {
	found, err := Scan(b)
	if err != nil {
		return Degraded, classify(err)
	}
	if err := b.Tx(addr, noop, nil); err != nil {
		err = classify(wrap(err))
		if errors.Is(err, ErrBusFault) {
			if len(found) == 0 {
				return Degraded, fmt.Errorf("%w (bus scan found no devices)", err)
			}
			return Degraded, fmt.Errorf("%w (bus scan found %v)", err, addrs(found))
		}
		return Degraded, err
	}
	return Ready, nil
}

// addrs formats a list of addresses in hexadecimal.
func addrs(l []uint16) []string {
	out := make([]string, len(l))
	for i, a := range l {
		out[i] = i2c.Addr(a).String()
	}
	return out
}
