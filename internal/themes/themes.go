// Package themes provides theme definition loading for huebuild.
package themes

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hueforge/huebuild/internal/models"
)

var (
	// ErrThemeIDRequired is returned when a definition has no id.
	ErrThemeIDRequired = errors.New("theme id is required")
	// ErrThemeNameRequired is returned when a definition has no name.
	ErrThemeNameRequired = errors.New("theme name is required")
	// ErrThemeNotFound is returned when a theme id is not in the set.
	ErrThemeNotFound = errors.New("theme not found")
)

// idPattern keeps theme ids safe to embed in CSS class names.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// DuplicateIDError describes two definitions claiming the same id.
type DuplicateIDError struct {
	ID     string
	First  string
	Second string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate theme id %q in %s and %s", e.ID, e.First, e.Second)
}

// Definition is one theme plus where it came from.
type Definition struct {
	models.Theme `yaml:",inline"`

	// Source is the file path the theme was read from, or "builtin".
	Source string `json:"-" yaml:"-"`
}

// CheckShape validates the record shape of a definition: id and name must
// be present and the id must be a CSS-class-safe token. Color completeness
// and accessibility are the validator's concern, not the loader's, so a
// theme with missing colors still loads and gets a proper validation report.
func (d *Definition) CheckShape() error {
	if d.ID == "" {
		return ErrThemeIDRequired
	}
	if !idPattern.MatchString(d.ID) {
		return fmt.Errorf("theme id %q contains characters outside [A-Za-z0-9_-]", d.ID)
	}
	if d.Name == "" {
		return ErrThemeNameRequired
	}
	return nil
}

// Set is a loaded theme collection keyed by id.
type Set map[string]*Definition

// Themes returns the bare theme records keyed by id.
func (s Set) Themes() map[string]models.Theme {
	out := make(map[string]models.Theme, len(s))
	for id, def := range s {
		out[id] = def.Theme
	}
	return out
}

// Find returns the definition for id, or ErrThemeNotFound.
func (s Set) Find(id string) (*Definition, error) {
	if def, ok := s[id]; ok {
		return def, nil
	}
	return nil, ErrThemeNotFound
}
