package jhd1802

import (
	"fmt"
)

// Register selects the stream a transaction is written to. The device
// multiplexes instructions and character data on the same address, so every
// transaction starts with one of these selector bytes.
type Register byte

const (
	// RegControl carries instructions (clear, home, cursor address, ...).
	RegControl Register = 0x80
	// RegData carries character codes rendered at the cursor.
	RegData Register = 0x40
)

func (r Register) String() string {
	switch r {
	case RegControl:
		return "control"
	case RegData:
		return "data"
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}

// Command is one bus transaction: a register selector and a single byte.
type Command struct {
	Reg   Register
	Value byte
}

func (c Command) String() string {
	return fmt.Sprintf("%s:0x%02X", c.Reg, c.Value)
}

// bytes returns the wire form of c.
func (c Command) bytes() []byte {
	return []byte{byte(c.Reg), c.Value}
}

// Instruction set.
const (
	instClear     byte = 0x01
	instHome      byte = 0x02
	instEntryMode byte = 0x04
	instDisplay   byte = 0x08
	instShift     byte = 0x10
	instFunction  byte = 0x20
	instDDRAMAddr byte = 0x80

	// instEntryMode flags
	entryIncrement byte = 0x02
	entryShift     byte = 0x01

	// instDisplay flags
	displayOn byte = 0x04
	cursorOn  byte = 0x02
	blinkOn   byte = 0x01

	// instShift flags
	shiftRight byte = 0x04

	// instFunction flags; the 5x8 font is selected by leaving bit 2 clear.
	twoLines byte = 0x08

	// DDRAM offset between consecutive rows.
	rowStride = 0x40
)

func control(v byte) Command {
	return Command{Reg: RegControl, Value: v}
}

// EncodeClear clears the display and returns the cursor home.
func EncodeClear() Command {
	return control(instClear)
}

// EncodeHome returns the cursor to (0, 0).
func EncodeHome() Command {
	return control(instHome)
}

// EncodeDisplay turns the display, the underline cursor and the blinking
// block on or off. EncodeDisplay(true, false, false) is 0x0C and
// EncodeDisplay(true, true, false) is 0x0E.
func EncodeDisplay(on, cursor, blink bool) Command {
	v := instDisplay
	if on {
		v |= displayOn
	}
	if cursor {
		v |= cursorOn
	}
	if blink {
		v |= blinkOn
	}
	return control(v)
}

// EncodeConfigure selects the number of display lines and the 5x8 font.
// Any value of lines above 1 gives 0x28.
func EncodeConfigure(lines int) Command {
	v := instFunction
	if lines > 1 {
		v |= twoLines
	}
	return control(v)
}

// EncodeSetCursor moves the cursor to (row, col). col is wrapped modulo cols;
// row is not checked and the result is truncated to a byte.
func EncodeSetCursor(row, col, cols int) Command {
	if cols > 0 {
		col = ((col % cols) + cols) % cols
	}
	return control(byte(rowStride*row + col + int(instDDRAMAddr)))
}

// EncodeShift moves the cursor one position right or left.
func EncodeShift(right bool) Command {
	v := instShift
	if right {
		v |= shiftRight
	}
	return control(v)
}

// EncodeEntryMode sets left-to-right entry, with the display shifting on
// every character when autoscroll is set.
func EncodeEntryMode(autoscroll bool) Command {
	v := instEntryMode | entryIncrement
	if autoscroll {
		v |= entryShift
	}
	return control(v)
}

// EncodeChar renders the character code c at the cursor.
func EncodeChar(c byte) Command {
	return Command{Reg: RegData, Value: c}
}

// EncodeText expands s into one data command per character, in order.
// Characters above U+00FF are not part of the device character set.
func EncodeText(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for i, r := range s {
		if r < 0 || r > 0xFF {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnsupportedChar, r, i)
		}
		cmds = append(cmds, EncodeChar(byte(r)))
	}
	return cmds, nil
}
