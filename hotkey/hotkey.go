// Package hotkey listens for a global keyboard shortcut that summons the
// picker window.
package hotkey

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"option":  "alt",
	"cmd":     "cmd",
	"command": "cmd",
	"super":   "cmd",
	"meta":    "cmd",
}

// Parse turns a combo such as "Ctrl+Shift+E" into gohook key names,
// the main key first followed by its modifiers.
func Parse(combo string) ([]string, error) {
	var key string
	var mods []string

	for part := range strings.SplitSeq(strings.ToLower(combo), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid hotkey %q: empty key", combo)
		}
		if mod, ok := modifierAliases[part]; ok {
			if slices.Contains(mods, mod) {
				return nil, fmt.Errorf("invalid hotkey %q: duplicate modifier %s", combo, mod)
			}
			mods = append(mods, mod)
			continue
		}
		if key != "" {
			return nil, fmt.Errorf("invalid hotkey %q: more than one key", combo)
		}
		key = part
	}

	if key == "" {
		return nil, fmt.Errorf("invalid hotkey %q: no key", combo)
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("invalid hotkey %q: at least one modifier required", combo)
	}
	return append([]string{key}, mods...), nil
}

// Manager owns the global hook. Only one Manager may run at a time because
// gohook keeps process-wide state.
type Manager struct {
	keys   []string
	onShow func()

	mu   sync.Mutex
	done chan bool
}

// NewManager validates combo and returns a stopped Manager.
func NewManager(combo string, onShow func()) (*Manager, error) {
	if onShow == nil {
		return nil, errors.New("hotkey: nil callback")
	}
	keys, err := Parse(combo)
	if err != nil {
		return nil, err
	}
	return &Manager{keys: keys, onShow: onShow}, nil
}

// Keys returns the parsed key names.
func (m *Manager) Keys() []string {
	return slices.Clone(m.keys)
}

// Start registers the shortcut and begins processing events in the background.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done != nil {
		return errors.New("hotkey: already started")
	}

	hook.Register(hook.KeyDown, m.keys, func(hook.Event) {
		slog.Debug("hotkey pressed", "keys", m.keys)
		m.onShow()
	})

	evChan := hook.Start()
	m.done = hook.Process(evChan)

	slog.Info("hotkey registered", "keys", m.keys)
	return nil
}

// Stop ends the hook and waits for the event loop to drain.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done == nil {
		return
	}
	hook.End()
	<-m.done
	m.done = nil
}
