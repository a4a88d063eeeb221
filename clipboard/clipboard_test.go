package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

// flakyWriter fails the first failures calls with ErrBusy.
type flakyWriter struct {
	failures int
	calls    int
	text     string
}

func (w *flakyWriter) SetText(text string) error {
	w.calls++
	if w.calls <= w.failures {
		return ErrBusy
	}
	w.text = text
	return nil
}

func TestSetTextWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		retry     Retry
		wantCalls int
		wantErr   bool
	}{
		{"first try", 0, Retry{Attempts: 3, Delay: time.Millisecond}, 1, false},
		{"succeeds on last attempt", 2, Retry{Attempts: 3, Delay: time.Millisecond}, 3, false},
		{"exhausted", 5, Retry{Attempts: 3, Delay: time.Millisecond}, 3, true},
		{"zero attempts means one", 1, Retry{}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &flakyWriter{failures: tt.failures}

			err := SetTextWithRetry(context.Background(), w, "😀", tt.retry)

			if (err != nil) != tt.wantErr {
				t.Fatalf("SetTextWithRetry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrBusy) {
				t.Errorf("error %v does not wrap ErrBusy", err)
			}
			if w.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", w.calls, tt.wantCalls)
			}
			if !tt.wantErr && w.text != "😀" {
				t.Errorf("text = %q", w.text)
			}
		})
	}
}

func TestSetTextWithRetryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &flakyWriter{failures: 10}
	err := SetTextWithRetry(ctx, w, "😀", Retry{Attempts: 3, Delay: time.Hour})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if w.calls != 1 {
		t.Errorf("calls = %d, want 1", w.calls)
	}
}

func TestSystemWithoutApp(t *testing.T) {
	if err := New(nil).SetText("x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
