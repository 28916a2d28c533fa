// Package jhd1802 controls a JHD1802 character LCD via I²C.
//
// The JHD1802 is the 16×2 display found on Grove LCD modules. Its controller
// is HD44780 compatible and answers at the fixed address 0x3E. Every
// transaction is two bytes: a selector followed by a value. The selector 0x80
// addresses the instruction register and 0x40 the character data register.
//
// # Display Characteristics
//
// - 2 rows of 16 characters (other geometries are configurable)
// - One I²C transaction per instruction and per character
// - Underline and blinking cursor
// - Display shift and autoscroll
//
// # Hardware Connection
//
// Connect the display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 5V
//	SDA         → I²C Data (SDA)
//	SCL         → I²C Clock (SCL)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/jhd1802"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		dev, err := jhd1802.New(bus, nil)
//		if err != nil {
//			log.Printf("running without display: %v", err)
//		}
//		defer dev.Halt()
//
//		dev.SetCursor(0, 0)
//		dev.WriteString("hello world!")
//	}
//
// # Missing Display
//
// A missing or broken display never stops the program. New scans the bus once
// and, when the display does not answer, returns a usable Dev in the Degraded
// state together with an error describing the fault. Every operation on a
// degraded Dev returns nil without touching the bus, so callers can keep
// writing to it unconditionally:
//
//	dev, err := jhd1802.New(bus, nil)
//	switch {
//	case errors.Is(err, jhd1802.ErrBusFault):
//		// nothing at 0x3E, or it stopped answering during init
//	case errors.Is(err, jhd1802.ErrUnexpectedTransport):
//		// the bus itself failed in some other way
//	}
//	dev.WriteString("ignored when degraded")
//
// Degraded is terminal; construct a new Dev to retry. The fault is available
// afterwards through Err.
//
// Errors after a successful New are returned to the caller and the Dev stays
// Ready. Set Opts.DegradeOnFault to latch Degraded on the first such error
// instead.
//
// # Cursor Positioning
//
// SetCursor wraps the column modulo the number of columns, so on a 16 column
// display SetCursor(0, 16) is (0, 0) and SetCursor(0, -1) is (0, 15). The row
// is passed to the controller unchecked. MoveTo validates both and returns
// ErrOutOfRange instead.
//
// # Character Set
//
// Write sends raw character codes. WriteString accepts characters up to
// U+00FF and sends each as its code point; anything above returns
// ErrUnsupportedChar before any byte is written. Glyphs above 0x7F depend on
// the controller's ROM.
//
// # Concurrency
//
// Dev is not safe for concurrent use. Locked serializes access and its Do
// method runs a whole sequence, such as position then text, without
// interleaving:
//
//	l := jhd1802.NewLocked(dev)
//	l.Do(func(d *jhd1802.Dev) error {
//		if err := d.SetCursor(1, 0); err != nil {
//			return err
//		}
//		_, err := d.WriteString("line two")
//		return err
//	})
//
// # TinyGo
//
// The tinygobus subpackage adapts a tinygo.org/x/drivers I2C bus to i2c.Bus so
// the same driver runs on microcontrollers.
//
// # Compatibility with periph.io
//
// This driver implements the display.TextDisplay interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a
// display.TextDisplay.
package jhd1802
