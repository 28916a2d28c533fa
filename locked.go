package jhd1802

import (
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Locked serializes access to a Dev so it can be shared between goroutines.
// The bus is a single hardware resource: give it one owner, or wrap that
// owner in a Locked.
type Locked struct {
	mu  sync.Mutex
	dev *Dev
}

// NewLocked wraps d. d must not be used directly afterwards.
func NewLocked(d *Dev) *Locked {
	return &Locked{dev: d}
}

// Do runs fn with exclusive access to the device, for sequences that must not
// interleave with other callers (for example SetCursor then WriteString).
func (l *Locked) Do(fn func(d *Dev) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.dev)
}

func (l *Locked) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.State()
}

func (l *Locked) AutoScroll(enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.AutoScroll(enabled)
}

func (l *Locked) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Clear()
}

func (l *Locked) Cols() int {
	return l.dev.Cols()
}

func (l *Locked) Cursor(modes ...display.CursorMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Cursor(modes...)
}

func (l *Locked) CursorOn(enable bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.CursorOn(enable)
}

func (l *Locked) Display(on bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Display(on)
}

func (l *Locked) Halt() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Halt()
}

func (l *Locked) Home() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Home()
}

func (l *Locked) MinCol() int {
	return l.dev.MinCol()
}

func (l *Locked) MinRow() int {
	return l.dev.MinRow()
}

func (l *Locked) Move(dir display.CursorDirection) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Move(dir)
}

func (l *Locked) MoveTo(row, col int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.MoveTo(row, col)
}

func (l *Locked) Rows() int {
	return l.dev.Rows()
}

func (l *Locked) SetCursor(row, col int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.SetCursor(row, col)
}

func (l *Locked) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.String()
}

func (l *Locked) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.Write(p)
}

func (l *Locked) WriteString(text string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dev.WriteString(text)
}

var _ conn.Resource = &Locked{}
var _ display.TextDisplay = &Locked{}
