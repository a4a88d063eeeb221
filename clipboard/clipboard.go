// Package clipboard writes text to the system clipboard, retrying while
// another process holds it.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wailsapp/wails/v3/pkg/application"
)

var (
	// ErrBusy is returned when the platform refuses a clipboard write.
	ErrBusy = errors.New("clipboard is busy")
	// ErrUnavailable is returned when no application clipboard is attached.
	ErrUnavailable = errors.New("clipboard unavailable")
)

// Writer places plain text on a clipboard.
type Writer interface {
	SetText(text string) error
}

// Retry bounds how often and how patiently a write is attempted.
type Retry struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry tries three times, 100ms apart.
var DefaultRetry = Retry{Attempts: 3, Delay: 100 * time.Millisecond}

// SetTextWithRetry writes text through w, retrying up to r.Attempts times.
// It returns the last write error, or ctx.Err() if ctx ends while waiting.
func SetTextWithRetry(ctx context.Context, w Writer, text string, r Retry) error {
	if r.Attempts <= 0 {
		r.Attempts = 1
	}

	var err error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		if err = w.SetText(text); err == nil {
			return nil
		}
		if attempt == r.Attempts {
			break
		}
		slog.Debug("clipboard write failed, retrying", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.Delay):
		}
	}
	return fmt.Errorf("set clipboard after %d attempts: %w", r.Attempts, err)
}

// System is the clipboard of a running Wails application.
type System struct {
	app *application.App
}

// New returns the clipboard of app.
func New(app *application.App) *System {
	return &System{app: app}
}

// SetText implements Writer.
func (c *System) SetText(text string) error {
	if c.app == nil {
		return ErrUnavailable
	}
	if !c.app.Clipboard.SetText(text) {
		return ErrBusy
	}
	return nil
}
