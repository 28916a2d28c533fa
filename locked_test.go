package jhd1802

import (
	"sync"
	"testing"

	"periph.io/x/conn/v3/display"
)

func TestLockedConcurrentWrites(t *testing.T) {
	dev, bus := newReady(t, nil)
	l := NewLocked(dev)

	const workers, rounds = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				err := l.Do(func(d *Dev) error {
					if err := d.SetCursor(1, j); err != nil {
						return err
					}
					_, err := d.WriteString("ab")
					return err
				})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if want := workers * rounds * 3; len(bus.Ops) != want {
		t.Fatalf("got %d transactions, want %d", len(bus.Ops), want)
	}
	// Each Do sequence stays together: cursor, 'a', 'b'.
	for i := 0; i < len(bus.Ops); i += 3 {
		c, a, b := bus.Ops[i].W, bus.Ops[i+1].W, bus.Ops[i+2].W
		if c[0] != 0x80 || a[0] != 0x40 || a[1] != 'a' || b[0] != 0x40 || b[1] != 'b' {
			t.Fatalf("interleaved sequence at %d: %#v %#v %#v", i, c, a, b)
		}
	}
}

func TestLockedForwards(t *testing.T) {
	dev, bus := newReady(t, nil)
	l := NewLocked(dev)

	steps := []func() error{
		l.Clear,
		l.Home,
		func() error { return l.SetCursor(0, 17) },
		func() error { return l.MoveTo(1, 0) },
		func() error { return l.CursorOn(true) },
		func() error { return l.Cursor(display.CursorOff) },
		func() error { return l.Display(true) },
		func() error { return l.AutoScroll(false) },
		func() error { return l.Move(display.Forward) },
		func() error { _, err := l.WriteString("x"); return err },
		func() error { _, err := l.Write([]byte("y")); return err },
		l.Halt,
	}
	for i, s := range steps {
		if err := s(); err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}
	want := [][]byte{
		{0x80, 0x01}, {0x80, 0x02}, {0x80, 0x81}, {0x80, 0xC0}, {0x80, 0x0E}, {0x80, 0x0C},
		{0x80, 0x0C}, {0x80, 0x06}, {0x80, 0x14}, {0x40, 'x'}, {0x40, 'y'}, {0x80, 0x01}, {0x80, 0x08},
	}
	if got := bus.writes(0); !equalWrites(got, want) {
		t.Errorf("wrote %#v, want %#v", got, want)
	}
	if l.State() != Ready || l.Rows() != 2 || l.Cols() != 16 || l.MinRow() != 0 || l.MinCol() != 0 {
		t.Errorf("Locked reports %v %dx%d", l.State(), l.Cols(), l.Rows())
	}
	if l.String() != dev.String() {
		t.Errorf("String() = %q, want %q", l.String(), dev.String())
	}
}
