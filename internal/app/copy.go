package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.aimuz.me/emojiviewer/catalog"
	"go.aimuz.me/emojiviewer/clipboard"
	"go.aimuz.me/emojiviewer/internal/types"
)

// CopyGlyph places glyph on the clipboard and records it as recently used.
// A failed copy leaves the recent list untouched.
func (s *Service) CopyGlyph(glyph string) error {
	if err := validateGlyph(glyph); err != nil {
		return err
	}

	if err := s.copyText(glyph); err != nil {
		slog.Error("copy glyph", "glyph", glyph, "error", err)
		s.emit(EventError, fmt.Sprintf("Failed to copy emoji: %v", err))
		return fmt.Errorf("copy glyph: %w", err)
	}

	if err := s.store.RecordUsed(glyph); err != nil {
		slog.Warn("save recent", "error", err)
		s.emit(EventWarning, fmt.Sprintf("Failed to save recent emojis: %v", err))
	}
	s.emit(EventRecentChanged, s.store.Recent())
	s.status.Show(types.LevelInfo, "Copied: "+glyph)

	return nil
}

// CopyCodePoints places the U+XXXX form of glyph on the clipboard.
// It does not touch the recent list.
func (s *Service) CopyCodePoints(glyph string) (string, error) {
	if err := validateGlyph(glyph); err != nil {
		return "", err
	}

	code := catalog.CodePoints(glyph)
	if err := s.copyText(code); err != nil {
		slog.Error("copy code points", "glyph", glyph, "error", err)
		s.emit(EventError, fmt.Sprintf("Failed to copy emoji code: %v", err))
		return "", fmt.Errorf("copy code points: %w", err)
	}

	s.status.Show(types.LevelInfo, "Copied Unicode: "+code)
	return code, nil
}

// ToggleFavorite adds or removes glyph from the favorites. A failure to
// persist is reported as a warning; the in-memory change stands.
func (s *Service) ToggleFavorite(glyph string) (types.FavoriteResult, error) {
	if err := validateGlyph(glyph); err != nil {
		return types.FavoriteResult{}, err
	}

	added, err := s.store.ToggleFavorite(glyph)
	if err != nil {
		slog.Warn("save favorites", "error", err)
		s.emit(EventWarning, fmt.Sprintf("Failed to save favorite emojis: %v", err))
	}

	favorites := s.store.Favorites()
	s.emit(EventFavoritesChanged, favorites)

	return types.FavoriteResult{
		Glyph:     glyph,
		Favorite:  added,
		Favorites: favorites,
	}, nil
}

func (s *Service) copyText(text string) error {
	if s.clip == nil {
		return clipboard.ErrUnavailable
	}
	return clipboard.SetTextWithRetry(context.Background(), s.clip, text, s.retry)
}
