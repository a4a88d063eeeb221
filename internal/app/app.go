// Package app provides the core application service for Wails bindings.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go.aimuz.me/emojiviewer/catalog"
	"go.aimuz.me/emojiviewer/clipboard"
	"go.aimuz.me/emojiviewer/config"
	"go.aimuz.me/emojiviewer/history"
	"go.aimuz.me/emojiviewer/hotkey"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// ErrInvalidGlyph is returned for input that is not a single emoji.
var ErrInvalidGlyph = errors.New("invalid glyph")

// Service provides application functionality bound to Wails.
// It is the only owner of the recent/favorites store.
type Service struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	store   *history.Store
	hotkey  *hotkey.Manager

	// UI references - set via Init
	app    *application.App
	window application.Window

	clip    clipboard.Writer
	retry   clipboard.Retry
	status  *StatusNotifier
	emitFn  func(name string, data any)
	titleFn func(title string)

	// Version info (set by caller)
	version string
}

// New creates a new Service. Call Init() after Wails app is created.
func New(version string) *Service {
	return &Service{version: version}
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Init initializes the service with app and window references.
// Must be called after Wails application is created.
func (s *Service) Init(app *application.App, window application.Window, cfg *config.Config) {
	s.app = app
	s.window = window
	if window != nil {
		s.titleFn = func(title string) { window.SetTitle(title) }
	}

	s.setup(cfg, clipboard.New(app), s.emitToApp)
	s.setupHotkey()
}

// setup wires everything that does not depend on a running Wails app.
func (s *Service) setup(cfg *config.Config, clip clipboard.Writer, emit func(string, any)) {
	s.cfg = cfg
	s.catalog = catalog.Default()
	s.clip = clip
	s.emitFn = emit
	s.retry = clipboard.Retry{
		Attempts: cfg.ClipboardAttempts,
		Delay:    cfg.ClipboardRetryDelay(),
	}
	s.status = NewStatusNotifier(cfg.StatusRevert(), s.emit, s.setTitle)

	s.store = history.Load(cfg.ResolveDataDir())
	slog.Info("history loaded",
		"dir", s.store.Dir(),
		"recent", len(s.store.Recent()),
		"favorites", len(s.store.Favorites()),
	)
}

// Shutdown cleans up resources.
func (s *Service) Shutdown() {
	if s.hotkey != nil {
		s.hotkey.Stop()
	}
}

func (s *Service) setupHotkey() {
	if s.cfg.Hotkey == "" {
		return
	}

	m, err := hotkey.NewManager(s.cfg.Hotkey, s.ShowWindow)
	if err != nil {
		slog.Error("configure hotkey", "hotkey", s.cfg.Hotkey, "error", err)
		return
	}
	if err := m.Start(); err != nil {
		slog.Error("start hotkey", "error", err)
		return
	}
	s.hotkey = m
}

// emit is a safe wrapper around the configured event sink.
func (s *Service) emit(name string, data any) {
	if s.emitFn != nil {
		s.emitFn(name, data)
	}
}

func (s *Service) emitToApp(name string, data any) {
	if s.app != nil {
		s.app.Event.Emit(name, data)
	}
}

func (s *Service) setTitle(title string) {
	if s.titleFn != nil {
		s.titleFn(title)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

// GetTabs returns the tab strip in display order.
func (s *Service) GetTabs() []catalog.Tab {
	return s.catalog.Tabs()
}

// GetCategory returns the subcategories of a catalog category.
func (s *Service) GetCategory(name string) (catalog.Category, error) {
	cat, ok := s.catalog.Category(name)
	if !ok {
		return catalog.Category{}, fmt.Errorf("category not found: %s", name)
	}
	return cat, nil
}

// DescribeGlyph returns tooltip details for glyph.
func (s *Service) DescribeGlyph(glyph string) (catalog.GlyphInfo, error) {
	if err := validateGlyph(glyph); err != nil {
		return catalog.GlyphInfo{}, err
	}
	return catalog.Describe(glyph), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Recent & Favorites
// ─────────────────────────────────────────────────────────────────────────────

// GetRecent returns the recent glyphs, newest first.
func (s *Service) GetRecent() []string {
	return s.store.Recent()
}

// GetFavorites returns the favorite glyphs.
func (s *Service) GetFavorites() []string {
	return s.store.Favorites()
}

// IsFavorite reports whether glyph is a favorite.
func (s *Service) IsFavorite(glyph string) bool {
	return s.store.IsFavorite(glyph)
}

// ─────────────────────────────────────────────────────────────────────────────
// Window
// ─────────────────────────────────────────────────────────────────────────────

// ShowWindow brings the picker to the front.
func (s *Service) ShowWindow() {
	if s.window != nil {
		s.window.Show()
		s.window.Focus()
	}
}

// HideWindow hides the picker; the tray and hotkey can bring it back.
func (s *Service) HideWindow() {
	if s.window != nil {
		s.window.Hide()
	}
}

// MinimiseWindow minimises the picker from the custom title bar.
func (s *Service) MinimiseWindow() {
	if s.window != nil {
		s.window.Minimise()
	}
}

// ToggleMaximiseWindow maximises or restores the picker.
func (s *Service) ToggleMaximiseWindow() {
	if s.window != nil {
		s.window.ToggleMaximise()
	}
}

func validateGlyph(glyph string) error {
	if !catalog.IsGlyph(glyph) {
		return fmt.Errorf("%w: %q", ErrInvalidGlyph, glyph)
	}
	return nil
}
