package app

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"

	"go.aimuz.me/emojiviewer/internal/types"
)

// StatusNotifier shows transient status messages and reverts them after a
// fixed delay. Each new message restarts the delay, so only the latest
// message is ever cleared.
type StatusNotifier struct {
	emit     func(name string, data any)
	setTitle func(title string)
	revert   func(f func())

	mu      sync.Mutex
	current types.StatusMessage
}

// NewStatusNotifier creates a notifier whose messages last for after.
func NewStatusNotifier(after time.Duration, emit func(string, any), setTitle func(string)) *StatusNotifier {
	return &StatusNotifier{
		emit:     emit,
		setTitle: setTitle,
		revert:   debounce.New(after),
	}
}

// Show publishes a new status message and schedules its removal.
func (n *StatusNotifier) Show(level, text string) types.StatusMessage {
	msg := types.StatusMessage{
		ID:    uuid.NewString(),
		Text:  text,
		Level: level,
	}

	n.mu.Lock()
	n.current = msg
	n.mu.Unlock()

	n.setTitle(WindowTitle + " - " + text)
	n.emit(EventStatus, msg)
	n.revert(func() { n.clear(msg.ID) })

	return msg
}

// Current returns the visible message, or the zero value if none.
func (n *StatusNotifier) Current() types.StatusMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *StatusNotifier) clear(id string) {
	n.mu.Lock()
	if n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = types.StatusMessage{}
	n.mu.Unlock()

	n.setTitle(WindowTitle)
	n.emit(EventStatusCleared, id)
}
