// Package app provides the core application service for Wails bindings.
package app

// Event names for frontend communication.
const (
	EventRecentChanged    = "recent-changed"
	EventFavoritesChanged = "favorites-changed"
	EventStatus           = "status"
	EventStatusCleared    = "status-cleared"
	EventWarning          = "warning"
	EventError            = "error"
)

// WindowTitle is the resting title of the main window.
const WindowTitle = "Emoji Viewer"
