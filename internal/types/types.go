// Package types provides shared type definitions for the application.
package types

// LevelInfo marks an informational status message.
const LevelInfo = "info"

// StatusMessage is a transient notice shown in the title bar. It is cleared
// automatically unless superseded by a newer message first.
type StatusMessage struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level string `json:"level"`
}

// FavoriteResult reports the favorite state of a glyph after a toggle.
type FavoriteResult struct {
	Glyph     string   `json:"glyph"`
	Favorite  bool     `json:"favorite"`
	Favorites []string `json:"favorites"`
}
