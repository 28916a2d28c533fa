// Package tinygobus exposes a TinyGo I²C bus as a periph.io i2c.Bus.
//
// Any tinygo.org/x/drivers.I2C, such as machine.I2C1 on an RP2040, can then
// be handed to jhd1802.New:
//
//	machine.I2C1.Configure(machine.I2CConfig{SDA: machine.GP2, SCL: machine.GP3})
//	bus := tinygobus.New(machine.I2C1, "I2C1")
//	dev, err := jhd1802.New(bus, nil)
package tinygobus

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/jhd1802"
	"tinygo.org/x/drivers"
)

// Bus adapts a drivers.I2C to i2c.Bus.
type Bus struct {
	bus   drivers.I2C
	name  string
	speed physic.Frequency
	noAck func(error) bool
}

// New returns a Bus named name that forwards transactions to bus.
func New(bus drivers.I2C, name string) *Bus {
	return &Bus{bus: bus, name: name}
}

// WithNoAck sets the function recognizing the platform's "no acknowledgment"
// errors. Recognized errors are returned wrapping jhd1802.ErrNoAck so the
// driver can tell an absent display from a misbehaving bus.
func (b *Bus) WithNoAck(fn func(error) bool) *Bus {
	b.noAck = fn
	return b
}

func (b *Bus) String() string {
	return b.name
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	err := b.bus.Tx(addr, w, r)
	if err != nil && b.noAck != nil && b.noAck(err) {
		return fmt.Errorf("%w: %w", jhd1802.ErrNoAck, err)
	}
	return err
}

// SetSpeed implements i2c.Bus.
//
// TinyGo sets the clock in machine.I2CConfig when the bus is configured, so
// the frequency is only recorded.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	b.speed = f
	return nil
}

// Speed returns the last frequency passed to SetSpeed.
func (b *Bus) Speed() physic.Frequency {
	return b.speed
}

var _ i2c.Bus = &Bus{}
