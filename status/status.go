// Package status shows two-line status messages on a character display.
//
// Example usage:
//
//	messages := make(chan status.Message, 4)
//	h := status.NewHandler(dev, messages, logger)
//	go h.Run()
//
//	// Send without blocking; drop the update when the display is behind.
//	select {
//	case messages <- status.Message{Line1: "Status", Line2: "OK"}:
//	default:
//	}
//
// The display is optional: a degraded jhd1802.Dev accepts every call, and
// errors from a display that fails later are logged, never returned.
package status

import (
	"log/slog"
)

// Display is the part of a character display the handler uses. It is
// implemented by *jhd1802.Dev and *jhd1802.Locked.
type Display interface {
	Clear() error
	SetCursor(row, col int) error
	WriteString(text string) (int, error)
	Cols() int
}

// Message represents a two-line display message.
type Message struct {
	Line1 string
	Line2 string
}

// Handler renders messages from a channel.
type Handler struct {
	dev      Display
	messages <-chan Message
	logger   *slog.Logger
}

// NewHandler creates a handler drawing on dev. logger may be nil.
func NewHandler(dev Display, messages <-chan Message, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		dev:      dev,
		messages: messages,
		logger:   logger,
	}
}

// Run processes messages until the channel is closed.
// Run should be called in a separate goroutine; the handler must be the only
// user of dev while it runs.
func (h *Handler) Run() {
	for msg := range h.messages {
		if err := h.show(msg); err != nil {
			h.logger.Warn("status display update failed", "err", err)
		}
	}
}

// show clears the display and prints both lines, each cut to the width of
// the display.
func (h *Handler) show(msg Message) error {
	if err := h.dev.Clear(); err != nil {
		return err
	}
	for row, line := range []string{msg.Line1, msg.Line2} {
		if line == "" {
			continue
		}
		if err := h.dev.SetCursor(row, 0); err != nil {
			return err
		}
		if _, err := h.dev.WriteString(truncate(line, h.dev.Cols())); err != nil {
			return err
		}
	}
	return nil
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
