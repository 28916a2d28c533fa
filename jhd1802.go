// Package jhd1802 controls a JHD1802 16x2 character LCD via I²C.
//
// The JHD1802 (Grove 16x2 LCD) uses an HD44780-compatible controller that
// takes instructions and character data over I²C on a single address.
//
// See the examples for how to use this package.
package jhd1802

import (
	"fmt"
	"log/slog"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

const (
	// DefaultAddress is the fixed I²C address of the JHD1802.
	DefaultAddress uint16 = 0x3E

	// Geometry of the JHD1802.
	DefaultRows = 2
	DefaultCols = 16
)

// sleep is replaced in tests.
var sleep = time.Sleep

// State is the lifecycle state of a Dev.
type State int

const (
	// Uninitialized is the zero State. A Dev in it, such as a zero Dev{},
	// never reaches the bus.
	Uninitialized State = iota
	// Probing is held inside New while the bus is scanned. A Dev returned by
	// New is never Probing.
	Probing
	// Ready is the only state in which operations reach the bus.
	Ready
	// Degraded is terminal: every operation is a no-op that succeeds.
	Degraded
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Probing:
		return "Probing"
	case Ready:
		return "Ready"
	case Degraded:
		return "Degraded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Opts is the configuration for the JHD1802 display.
type Opts struct {
	// I²C address (default: 0x3E)
	Addr uint16

	// Display geometry in characters
	Rows int // default: 2
	Cols int // default: 16

	// Delays
	SettleDelay time.Duration // after home during init (default: 100ms)
	HomeDelay   time.Duration // after Home() (default: 200ms)

	// DegradeOnFault makes the first bus error after a successful New put the
	// device in Degraded. That error is still returned once. When false, bus
	// errors after New are returned on every call and the device stays Ready.
	DegradeOnFault bool

	// Logger receives the construction diagnostic (optional, nil discards)
	Logger *slog.Logger
}

// DefaultOpts is used for nil Opts and for zero fields.
var DefaultOpts = Opts{
	Addr:        DefaultAddress,
	Rows:        DefaultRows,
	Cols:        DefaultCols,
	SettleDelay: 100 * time.Millisecond,
	HomeDelay:   200 * time.Millisecond,
}

// withDefaults returns a copy of o with zero fields filled in and validated.
func (o *Opts) withDefaults() (Opts, error) {
	r := DefaultOpts
	if o != nil {
		r = *o
		if r.Addr == 0 {
			r.Addr = DefaultOpts.Addr
		}
		if r.Rows == 0 {
			r.Rows = DefaultOpts.Rows
		}
		if r.Cols == 0 {
			r.Cols = DefaultOpts.Cols
		}
		if r.SettleDelay == 0 {
			r.SettleDelay = DefaultOpts.SettleDelay
		}
		if r.HomeDelay == 0 {
			r.HomeDelay = DefaultOpts.HomeDelay
		}
	}
	if r.Addr > 0x7F {
		return r, fmt.Errorf("jhd1802: address %s is not a 7-bit address", i2c.Addr(r.Addr))
	}
	if r.Rows < 0 || r.Cols < 0 {
		return r, fmt.Errorf("jhd1802: invalid geometry %dx%d", r.Cols, r.Rows)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	return r, nil
}

// Dev is the device handle for the JHD1802 display.
//
// Dev is not safe for concurrent use; see Locked.
type Dev struct {
	// Communication
	d i2c.Dev

	// Display geometry
	rows, cols int

	homeDelay      time.Duration
	degradeOnFault bool
	logger         *slog.Logger

	// State
	state State
	err   error // fault that put the device in Degraded

	// Display control bits last sent
	on, cursor, blink bool
}

// New creates a JHD1802 device on bus b.
//
// The bus is scanned once and a no-op write is sent to opts.Addr. When the
// display acknowledges it is initialized and the device is Ready. Otherwise the returned Dev is Degraded
// and usable: every operation on it does nothing and succeeds. The error
// explains why, wrapping ErrBusFault or ErrUnexpectedTransport, and is
// reported only here.
//
// opts can be nil to use DefaultOpts. Invalid options are the only case where
// the returned Dev is nil.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	d := &Dev{
		d:              i2c.Dev{Bus: b, Addr: o.Addr},
		rows:           o.Rows,
		cols:           o.Cols,
		homeDelay:      o.HomeDelay,
		degradeOnFault: o.DegradeOnFault,
		logger:         o.Logger.With("addr", i2c.Addr(o.Addr).String()),
		state:          Probing,
	}

	state, err := Probe(b, o.Addr)
	if err != nil {
		d.fail(err)
		return d, d.err
	}
	d.state = state

	if err := d.init(o.SettleDelay); err != nil {
		if d.state != Degraded {
			d.fail(err)
		}
		return d, d.err
	}
	d.logger.Debug("display initialized", "rows", d.rows, "cols", d.cols)
	return d, nil
}

// init sends the initialization sequence to the display. The controller
// ignores the display and function instructions until it has settled after
// the home instruction.
func (d *Dev) init(settle time.Duration) error {
	if err := d.send(EncodeHome()); err != nil {
		return err
	}
	sleep(settle)

	d.on, d.cursor, d.blink = true, false, false
	if err := d.send(EncodeDisplay(d.on, d.cursor, d.blink)); err != nil {
		return err
	}
	return d.send(EncodeConfigure(d.rows))
}

// fail moves the device to Degraded and reports why, once.
func (d *Dev) fail(err error) {
	d.state = Degraded
	d.err = classify(err)
	d.logger.Warn("display unavailable, continuing without it", "err", d.err)
}

// ready reports whether operations reach the bus.
func (d *Dev) ready() bool {
	return d.state == Ready
}

// send transmits c. It is the only path to the bus: in any state other than
// Ready it does nothing and returns nil.
func (d *Dev) send(c Command) error {
	if !d.ready() {
		return nil
	}
	if err := d.d.Tx(c.bytes(), nil); err != nil {
		err = wrap(fmt.Errorf("%s: %w", c, err))
		if d.degradeOnFault {
			d.fail(err)
		}
		return err
	}
	return nil
}

// Name returns the model name.
func (d *Dev) Name() string {
	return "JHD1802"
}

// Size returns the display geometry as (rows, columns).
func (d *Dev) Size() (rows, cols int) {
	return d.rows, d.cols
}

// State returns the lifecycle state.
func (d *Dev) State() State {
	return d.state
}

// Connected reports whether the display was found and is in use.
func (d *Dev) Connected() bool {
	return d.ready()
}

// Err returns the fault that put the device in Degraded, or nil.
func (d *Dev) Err() error {
	return d.err
}

// Rows returns the number of rows the display supports.
func (d *Dev) Rows() int {
	return d.rows
}

// Cols returns the number of columns the display supports.
func (d *Dev) Cols() int {
	return d.cols
}

// MinRow returns the first row index. Rows are zero based.
func (d *Dev) MinRow() int {
	return 0
}

// MinCol returns the first column index. Columns are zero based.
func (d *Dev) MinCol() int {
	return 0
}

// Clear clears the display and moves the cursor home.
func (d *Dev) Clear() error {
	return d.send(EncodeClear())
}

// Home moves the cursor to (0, 0) and waits for the controller to finish.
func (d *Dev) Home() error {
	if err := d.send(EncodeHome()); err != nil || !d.ready() {
		return err
	}
	sleep(d.homeDelay)
	return nil
}

// SetCursor moves the cursor to (row, col).
//
// col wraps modulo Cols(), so SetCursor(1, 18) on a 16 column display lands on
// (1, 2). row is not checked: the controller decides what an out of range row
// means. Use MoveTo to validate both.
func (d *Dev) SetCursor(row, col int) error {
	return d.send(EncodeSetCursor(row, col, d.cols))
}

// MoveTo moves the cursor to (row, col), returning ErrOutOfRange when either
// lies outside the display.
func (d *Dev) MoveTo(row, col int) error {
	if !d.ready() {
		return nil
	}
	if row < d.MinRow() || row >= d.rows || col < d.MinCol() || col >= d.cols {
		return fmt.Errorf("%w: MoveTo(%d, %d) on %dx%d", ErrOutOfRange, row, col, d.cols, d.rows)
	}
	return d.send(EncodeSetCursor(row, col, d.cols))
}

// Move moves the cursor one position forward or backward. Up and Down are not
// supported by the controller.
func (d *Dev) Move(dir display.CursorDirection) error {
	if !d.ready() {
		return nil
	}
	switch dir {
	case display.Forward:
		return d.send(EncodeShift(true))
	case display.Backward:
		return d.send(EncodeShift(false))
	case display.Up, display.Down:
		return ErrNotImplemented
	}
	return fmt.Errorf("%w: cursor direction %d", ErrInvalidCommand, dir)
}

// Write writes p to the display, one transaction per byte. Each byte is a
// character code.
func (d *Dev) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.send(EncodeChar(c)); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString writes text to the display, one transaction per character, in
// order. Characters above U+00FF return ErrUnsupportedChar before anything is
// sent.
func (d *Dev) WriteString(text string) (int, error) {
	if !d.ready() {
		return len(text), nil
	}
	if _, err := EncodeText(text); err != nil {
		return 0, err
	}
	for i, r := range text {
		if err := d.send(EncodeChar(byte(r))); err != nil {
			return i, err
		}
	}
	return len(text), nil
}

// CursorOn shows or hides the underline cursor.
func (d *Dev) CursorOn(enable bool) error {
	d.cursor, d.blink = enable, false
	return d.send(EncodeDisplay(d.on, d.cursor, d.blink))
}

// Cursor sets the cursor mode. You can pass multiple arguments.
// Cursor(CursorOff, CursorUnderline)
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	if !d.ready() {
		return nil
	}
	cursor, blink := d.cursor, d.blink
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			cursor, blink = false, false
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlock, display.CursorBlink:
			blink = true
		default:
			return fmt.Errorf("%w: cursor mode %d", ErrInvalidCommand, mode)
		}
	}
	d.cursor, d.blink = cursor, blink
	return d.send(EncodeDisplay(d.on, d.cursor, d.blink))
}

// Display turns the display on or off, keeping the cursor mode.
func (d *Dev) Display(on bool) error {
	d.on = on
	return d.send(EncodeDisplay(d.on, d.cursor, d.blink))
}

// AutoScroll enables or disables shifting the display on every character.
func (d *Dev) AutoScroll(enabled bool) error {
	return d.send(EncodeEntryMode(enabled))
}

// Halt clears the display and turns it off.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Display(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("jhd1802.Dev{%s, %dx%d, %s}", i2c.Addr(d.d.Addr), d.cols, d.rows, d.state)
}

var _ conn.Resource = &Dev{}
var _ display.TextDisplay = &Dev{}
