package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Hotkey != DefaultHotkey {
		t.Errorf("Hotkey = %q, want %q", cfg.Hotkey, DefaultHotkey)
	}
	if cfg.ResolveDataDir() != "." {
		t.Errorf("ResolveDataDir() = %q, want working directory", cfg.ResolveDataDir())
	}
	if cfg.StatusRevert() != 2*time.Second {
		t.Errorf("StatusRevert() = %v", cfg.StatusRevert())
	}
	if cfg.ClipboardRetryDelay() != 100*time.Millisecond {
		t.Errorf("ClipboardRetryDelay() = %v", cfg.ClipboardRetryDelay())
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadFromNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		check func(t *testing.T, c *Config)
	}{
		{
			name: "partial file keeps defaults",
			json: `{"data_dir": "/tmp/emoji"}`,
			check: func(t *testing.T, c *Config) {
				if c.DataDir != "/tmp/emoji" || c.ResolveDataDir() != "/tmp/emoji" {
					t.Errorf("DataDir = %q", c.DataDir)
				}
				if c.ClipboardAttempts != DefaultClipboardAttempts {
					t.Errorf("ClipboardAttempts = %d", c.ClipboardAttempts)
				}
				if c.Hotkey != DefaultHotkey {
					t.Errorf("Hotkey = %q", c.Hotkey)
				}
			},
		},
		{
			name: "invalid numbers replaced",
			json: `{"clipboard_attempts": -1, "clipboard_retry_delay_ms": -5, "status_revert_ms": 0, "window_width": 0, "window_height": -3}`,
			check: func(t *testing.T, c *Config) {
				if c.ClipboardAttempts != DefaultClipboardAttempts {
					t.Errorf("ClipboardAttempts = %d", c.ClipboardAttempts)
				}
				if c.ClipboardRetryDelayMS != DefaultClipboardDelayMS {
					t.Errorf("ClipboardRetryDelayMS = %d", c.ClipboardRetryDelayMS)
				}
				if c.StatusRevertMS != DefaultStatusRevertMS {
					t.Errorf("StatusRevertMS = %d", c.StatusRevertMS)
				}
				if c.WindowWidth != DefaultWindowWidth || c.WindowHeight != DefaultWindowHeight {
					t.Errorf("window = %dx%d", c.WindowWidth, c.WindowHeight)
				}
			},
		},
		{
			name: "hotkey can be disabled",
			json: `{"hotkey": ""}`,
			check: func(t *testing.T, c *Config) {
				if c.Hotkey != "" {
					t.Errorf("Hotkey = %q, want empty", c.Hotkey)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}

			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.Hotkey = "alt+space"
	cfg.StatusRevertMS = 1500

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Hotkey != "alt+space" {
		t.Errorf("Hotkey = %q", got.Hotkey)
	}
	if got.StatusRevert() != 1500*time.Millisecond {
		t.Errorf("StatusRevert() = %v", got.StatusRevert())
	}
}

func TestSaveIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := cfg.SaveIfMissing(); err != nil {
		t.Fatalf("SaveIfMissing: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"hotkey":"alt+space"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := cfg.SaveIfMissing(); err != nil {
		t.Fatalf("SaveIfMissing: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Hotkey != "alt+space" {
		t.Errorf("existing file overwritten, Hotkey = %q", got.Hotkey)
	}
}
