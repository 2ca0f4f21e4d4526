package models

import (
	"encoding/json"
	"time"
)

// EventType categorizes theme-state changes in the audit log.
type EventType string

const (
	// EventTypeThemeChanged records a color theme selection.
	EventTypeThemeChanged EventType = "theme.changed"
	// EventTypeDarkModeChanged records a dark mode flip.
	EventTypeDarkModeChanged EventType = "dark_mode.changed"
	// EventTypeStylesheetBuilt records a stylesheet build.
	EventTypeStylesheetBuilt EventType = "stylesheet.built"
)

// ThemeEvent is one append-only audit log entry.
type ThemeEvent struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ThemeChangedPayload is the payload for theme.changed events.
type ThemeChangedPayload struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// DarkModeChangedPayload is the payload for dark_mode.changed events.
type DarkModeChangedPayload struct {
	DarkMode bool `json:"dark_mode"`
}

// StylesheetBuiltPayload is the payload for stylesheet.built events.
type StylesheetBuiltPayload struct {
	Themes int    `json:"themes"`
	Output string `json:"output"`
	Bytes  int    `json:"bytes"`
}
