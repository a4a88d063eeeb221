package hotkey

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		combo   string
		want    []string
		wantErr bool
	}{
		{"ctrl+shift+e", []string{"e", "ctrl", "shift"}, false},
		{"Ctrl + Shift + E", []string{"e", "ctrl", "shift"}, false},
		{"command+option+space", []string{"space", "cmd", "alt"}, false},
		{"control+;", []string{";", "ctrl"}, false},
		{"e", nil, true},
		{"ctrl+shift", nil, true},
		{"ctrl+a+b", nil, true},
		{"ctrl+ctrl+a", nil, true},
		{"ctrl++a", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.combo, func(t *testing.T) {
			got, err := Parse(tt.combo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.combo, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.combo, got, tt.want)
			}
		})
	}
}

func TestNewManager(t *testing.T) {
	if _, err := NewManager("ctrl+e", nil); err == nil {
		t.Error("expected error for nil callback")
	}
	if _, err := NewManager("e", func() {}); err == nil {
		t.Error("expected error for combo without modifier")
	}

	m, err := NewManager("alt+space", func() {})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"space", "alt"}) {
		t.Errorf("Keys() = %v", got)
	}

	// Stop on a manager that never started is a no-op.
	m.Stop()
}
