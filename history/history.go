// Package history persists the Recent and Favorites emoji collections.
package history

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

const (
	// RecentFile holds the most-recently-used glyphs, newest first.
	RecentFile = "recent_emojis.json"
	// FavoritesFile holds the favorite glyphs.
	FavoritesFile = "favorite_emojis.json"

	// MaxRecent bounds the recent list; older entries are discarded.
	MaxRecent = 80
)

// Store owns the recent list and the favorite set and mirrors both to disk
// after every mutation.
type Store struct {
	mu        sync.RWMutex
	dir       string
	recent    []string
	favorites []string // insertion order, no duplicates
}

// Load reads both collections from dir. A missing, unreadable or malformed
// file yields an empty collection; Load never fails.
func Load(dir string) *Store {
	s := &Store{dir: dir}

	s.recent = normalizeRecent(loadOrEmpty(s.path(RecentFile)))
	s.favorites = lo.Uniq(loadOrEmpty(s.path(FavoritesFile)))

	return s
}

// Dir returns the directory the store persists to.
func (s *Store) Dir() string {
	return s.dir
}

// Recent returns a copy of the recent list, newest first.
func (s *Store) Recent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recent)
}

// Favorites returns a copy of the favorite set in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// IsFavorite reports whether glyph is in the favorite set.
func (s *Store) IsFavorite(glyph string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, glyph)
}

// RecordUsed moves glyph to the front of the recent list and persists it.
// On a write error the in-memory list keeps the update.
func (s *Store) RecordUsed(glyph string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = pushFront(s.recent, glyph, MaxRecent)
	if err := WriteList(s.path(RecentFile), s.recent); err != nil {
		return fmt.Errorf("save recent: %w", err)
	}
	return nil
}

// ToggleFavorite adds glyph to the favorite set, or removes it if present,
// and persists the set. It reports whether glyph is a favorite afterwards.
func (s *Store) ToggleFavorite(glyph string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := !slices.Contains(s.favorites, glyph)
	if added {
		s.favorites = append(s.favorites, glyph)
	} else {
		s.favorites = lo.Without(s.favorites, glyph)
	}

	if err := WriteList(s.path(FavoritesFile), s.favorites); err != nil {
		return added, fmt.Errorf("save favorites: %w", err)
	}
	return added, nil
}

// loadOrEmpty maps any read failure to an empty collection.
func loadOrEmpty(path string) []string {
	list, err := ReadList(path)
	if err != nil {
		if !IsMissing(err) {
			slog.Warn("discard unreadable list", "path", path, "error", err)
		}
		return nil
	}
	return list
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// pushFront returns list with glyph moved (or inserted) at index 0,
// truncated to limit entries.
func pushFront(list []string, glyph string, limit int) []string {
	out := make([]string, 0, min(len(list)+1, limit))
	out = append(out, glyph)
	for _, g := range list {
		if len(out) == limit {
			break
		}
		if g != glyph {
			out = append(out, g)
		}
	}
	return out
}

func normalizeRecent(list []string) []string {
	list = lo.Uniq(list)
	if len(list) > MaxRecent {
		list = list[:MaxRecent]
	}
	return list
}

// ─────────────────────────────────────────────────────────────────────────────
// File format
// ─────────────────────────────────────────────────────────────────────────────

// ReadList decodes a JSON array of strings from path.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	return list, nil
}

// WriteList encodes list as an indented JSON array and atomically replaces
// path with it.
func WriteList(path string, list []string) error {
	if list == nil {
		list = []string{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// IsMissing reports whether err came from a list file that does not exist yet.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
