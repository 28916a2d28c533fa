package jhd1802

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		reg  Register
		want byte
	}{
		{"home", EncodeHome(), RegControl, 0x02},
		{"clear", EncodeClear(), RegControl, 0x01},
		{"display on, cursor off", EncodeDisplay(true, false, false), RegControl, 0x0C},
		{"cursor on", EncodeDisplay(true, true, false), RegControl, 0x0E},
		{"display off", EncodeDisplay(false, false, false), RegControl, 0x08},
		{"blink", EncodeDisplay(true, false, true), RegControl, 0x0D},
		{"configure 2 lines", EncodeConfigure(2), RegControl, 0x28},
		{"configure 1 line", EncodeConfigure(1), RegControl, 0x20},
		{"set cursor origin", EncodeSetCursor(0, 0, 16), RegControl, 0x80},
		{"set cursor (1, 18)", EncodeSetCursor(1, 18, 16), RegControl, 0xC2},
		{"set cursor negative column", EncodeSetCursor(0, -1, 16), RegControl, 0x8F},
		{"set cursor 20 columns", EncodeSetCursor(1, 19, 20), RegControl, 0xD3},
		{"shift right", EncodeShift(true), RegControl, 0x14},
		{"shift left", EncodeShift(false), RegControl, 0x10},
		{"autoscroll on", EncodeEntryMode(true), RegControl, 0x07},
		{"autoscroll off", EncodeEntryMode(false), RegControl, 0x06},
		{"char", EncodeChar('A'), RegData, 0x41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Reg != tt.reg || tt.cmd.Value != tt.want {
				t.Errorf("got %v, want %v:0x%02X", tt.cmd, tt.reg, tt.want)
			}
			if b := tt.cmd.bytes(); len(b) != 2 || b[0] != byte(tt.reg) || b[1] != tt.want {
				t.Errorf("bytes() = %#v", b)
			}
		})
	}
}

func TestEncodeSetCursorWrap(t *testing.T) {
	for col := 0; col < 1000; col++ {
		for row := 0; row < 2; row++ {
			got := EncodeSetCursor(row, col, 16)
			want := byte(0x40*row + col%16 + 0x80)
			if got.Reg != RegControl || got.Value != want {
				t.Fatalf("EncodeSetCursor(%d, %d) = %v, want control:0x%02X", row, col, got, want)
			}
		}
	}
}

func TestEncodeText(t *testing.T) {
	cmds, err := EncodeText("AB")
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{{RegData, 'A'}, {RegData, 'B'}}
	if len(cmds) != len(want) {
		t.Fatalf("EncodeText(\"AB\") = %v, want %v", cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("EncodeText(\"AB\")[%d] = %v, want %v", i, cmds[i], want[i])
		}
	}

	if _, err := EncodeText("ok€"); !errors.Is(err, ErrUnsupportedChar) {
		t.Errorf("EncodeText(\"ok€\") error = %v, want ErrUnsupportedChar", err)
	}
	if _, err := EncodeText("\xff"); !errors.Is(err, ErrUnsupportedChar) {
		t.Errorf("EncodeText(invalid UTF-8) error = %v, want ErrUnsupportedChar", err)
	}
}

func TestRegisterString(t *testing.T) {
	tests := []struct {
		r    Register
		want string
	}{
		{RegControl, "control"},
		{RegData, "data"},
		{Register(0x00), "Register(0x00)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := EncodeClear().String(); got != "control:0x01" {
		t.Errorf("Command.String() = %q", got)
	}
}
