// Package events provides helper functions for recording huebuild
// audit events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hueforge/huebuild/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Append(ctx context.Context, event *models.ThemeEvent) error
}

// LogThemeChanged records a color theme selection.
func LogThemeChanged(ctx context.Context, repo Repository, previous, current string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	payload, err := json.Marshal(models.ThemeChangedPayload{
		Previous: previous,
		Current:  current,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme payload: %w", err)
	}

	return repo.Append(ctx, &models.ThemeEvent{
		Type:    models.EventTypeThemeChanged,
		Payload: payload,
	})
}

// LogDarkModeChanged records a dark mode flip.
func LogDarkModeChanged(ctx context.Context, repo Repository, darkMode bool) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	payload, err := json.Marshal(models.DarkModeChangedPayload{DarkMode: darkMode})
	if err != nil {
		return fmt.Errorf("failed to marshal dark mode payload: %w", err)
	}

	return repo.Append(ctx, &models.ThemeEvent{
		Type:    models.EventTypeDarkModeChanged,
		Payload: payload,
	})
}

// LogStylesheetBuilt records a stylesheet build.
func LogStylesheetBuilt(ctx context.Context, repo Repository, themes int, output string, size int) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	payload, err := json.Marshal(models.StylesheetBuiltPayload{
		Themes: themes,
		Output: output,
		Bytes:  size,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal build payload: %w", err)
	}

	return repo.Append(ctx, &models.ThemeEvent{
		Type:    models.EventTypeStylesheetBuilt,
		Payload: payload,
	})
}
