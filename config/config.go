// Package config handles application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/goccy/go-json"
)

const (
	appName        = "emojiviewer"
	configFileName = "settings.json"
)

// Defaults applied to missing or invalid settings.
const (
	DefaultHotkey            = "ctrl+shift+e"
	DefaultClipboardAttempts = 3
	DefaultClipboardDelayMS  = 100
	DefaultStatusRevertMS    = 2000
	DefaultWindowWidth       = 1000
	DefaultWindowHeight      = 700
)

// Config represents the user settings.
type Config struct {
	// Hotkey is the global shortcut that shows the picker, e.g. "ctrl+shift+e".
	// Empty disables it.
	Hotkey string `json:"hotkey"`

	// DataDir holds recent_emojis.json and favorite_emojis.json.
	// Empty means the working directory.
	DataDir string `json:"data_dir,omitempty"`

	ClipboardAttempts     int `json:"clipboard_attempts"`
	ClipboardRetryDelayMS int `json:"clipboard_retry_delay_ms"`
	StatusRevertMS        int `json:"status_revert_ms"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	path string
}

// Load loads settings from the user config directory.
// Returns default settings if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom loads settings from path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	cfg.path = path

	return cfg, nil
}

// Save persists the settings to the file they were loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("get config path: %w", err)
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// SaveIfMissing writes c when no settings file exists yet, leaving an
// editable file behind on first run. An existing file is never touched.
func (c *Config) SaveIfMissing() error {
	if c.path != "" {
		if _, err := os.Stat(c.path); !os.IsNotExist(err) {
			return nil
		}
	}
	return c.Save()
}

// Path returns the settings file location.
func (c *Config) Path() string {
	return c.path
}

// ResolveDataDir returns DataDir, or "." when it is unset.
func (c *Config) ResolveDataDir() string {
	if c.DataDir == "" {
		return "."
	}
	return c.DataDir
}

// ClipboardRetryDelay returns the pause between clipboard attempts.
func (c *Config) ClipboardRetryDelay() time.Duration {
	return time.Duration(c.ClipboardRetryDelayMS) * time.Millisecond
}

// StatusRevert returns how long a status message stays visible.
func (c *Config) StatusRevert() time.Duration {
	return time.Duration(c.StatusRevertMS) * time.Millisecond
}

// Helper functions

func (c *Config) normalize() {
	if c.ClipboardAttempts <= 0 {
		c.ClipboardAttempts = DefaultClipboardAttempts
	}
	if c.ClipboardRetryDelayMS < 0 {
		c.ClipboardRetryDelayMS = DefaultClipboardDelayMS
	}
	if c.StatusRevertMS <= 0 {
		c.StatusRevertMS = DefaultStatusRevertMS
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = DefaultWindowHeight
	}
}

func configPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, configFileName))
	if err != nil {
		return "", fmt.Errorf("resolve xdg config file: %w", err)
	}
	return path, nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Hotkey:                DefaultHotkey,
		ClipboardAttempts:     DefaultClipboardAttempts,
		ClipboardRetryDelayMS: DefaultClipboardDelayMS,
		StatusRevertMS:        DefaultStatusRevertMS,
		WindowWidth:           DefaultWindowWidth,
		WindowHeight:          DefaultWindowHeight,
	}
}
