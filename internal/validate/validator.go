// Package validate decides whether a theme is complete and accessible
// enough to ship. Validation findings are returned as data, never as
// errors, so callers can gate a build, log and continue, or surface
// them in an authoring tool.
package validate

import (
	"fmt"
	"sort"

	"github.com/hueforge/huebuild/internal/color"
	"github.com/hueforge/huebuild/internal/models"
)

// WCAG contrast thresholds for normal text. A ratio at or above the
// threshold passes; boundaries are inclusive.
const (
	AAMinimum  = 4.5
	AAAMinimum = 7.0
)

// Literal fallbacks substituted when a theme defines no gray ramp, so the
// contrast checks can still run. They are hardware-independent extremes:
// the check degrades to "best possible background/text" rather than
// being skipped.
const (
	FallbackDark  = "#000000"
	FallbackLight = "#ffffff"
)

// Gray steps consumed by the accessibility pass.
const (
	stepDarkest        = "0"
	stepLightest       = "999"
	stepSecondaryLight = "300"
	stepSecondaryDark  = "700"
)

// ValidateTheme runs the structural, accessibility and harmony passes over
// one theme. The accessibility and harmony passes only run when the
// structural pass found nothing, since contrast numbers computed against
// missing fields would be noise. It never panics: unparsable colors
// degrade to luminance 0 and keep the remaining checks running.
func ValidateTheme(theme models.Theme) models.ValidationResult {
	result := models.ValidationResult{}

	result.Errors = structuralErrors(theme)
	if len(result.Errors) == 0 {
		accErrors, accWarnings := accessibilityFindings(theme)
		result.Errors = append(result.Errors, accErrors...)
		result.Warnings = append(result.Warnings, accWarnings...)
		result.Warnings = append(result.Warnings, harmonyWarnings(theme)...)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateThemes validates each theme independently; there are no
// cross-theme invariants.
func ValidateThemes(set map[string]models.Theme) map[string]models.ValidationResult {
	results := make(map[string]models.ValidationResult, len(set))
	for id, theme := range set {
		results[id] = ValidateTheme(theme)
	}
	return results
}

func structuralErrors(theme models.Theme) []string {
	var errs []string

	accents := []struct {
		label string
		value string
	}{
		{"accent.light", theme.Colors.Accent.Light},
		{"accent.regular", theme.Colors.Accent.Regular},
		{"accent.dark", theme.Colors.Accent.Dark},
	}
	for _, a := range accents {
		switch {
		case a.value == "":
			errs = append(errs, fmt.Sprintf("missing %s color", a.label))
		case !color.IsHex(a.value):
			errs = append(errs, fmt.Sprintf("%s color %q is not a 6-digit hex color", a.label, a.value))
		}
	}

	for _, step := range theme.Colors.GraySorted() {
		if value := theme.Colors.Gray[step]; !color.IsHex(value) {
			errs = append(errs, fmt.Sprintf("gray step %s color %q is not a 6-digit hex color", step, value))
		}
	}
	for _, step := range unknownGraySteps(theme.Colors.Gray) {
		errs = append(errs, fmt.Sprintf("gray step %q is not one of the ramp labels", step))
	}

	charts := []struct {
		label string
		list  []string
	}{
		{"charts.primary", theme.Colors.Charts.Primary},
		{"charts.categorical", theme.Colors.Charts.Categorical},
		{"charts.gradient", theme.Colors.Charts.Gradient},
	}
	for _, c := range charts {
		if len(c.list) == 0 {
			errs = append(errs, fmt.Sprintf("missing or empty %s colors", c.label))
			continue
		}
		for i, value := range c.list {
			if !color.IsHex(value) {
				errs = append(errs, fmt.Sprintf("%s[%d] color %q is not a 6-digit hex color", c.label, i, value))
			}
		}
	}

	return errs
}

func unknownGraySteps(gray map[string]string) []string {
	known := make(map[string]bool, len(models.GraySteps))
	for _, label := range models.GraySteps {
		known[label] = true
	}

	var unknown []string
	for step := range gray {
		if !known[step] {
			unknown = append(unknown, step)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// grayOr returns the gray step color, or the fallback when the theme does
// not define that step.
func grayOr(theme models.Theme, step, fallback string) string {
	if value, ok := theme.Colors.Gray[step]; ok {
		return value
	}
	return fallback
}

func accessibilityFindings(theme models.Theme) (errs, warnings []string) {
	lightBG := grayOr(theme, stepLightest, FallbackLight)
	darkBG := grayOr(theme, stepDarkest, FallbackDark)

	checks := []struct {
		label string
		fg    string
		bg    string
	}{
		{"primary text on light background", grayOr(theme, stepDarkest, FallbackDark), lightBG},
		{"primary text on dark background", grayOr(theme, stepLightest, FallbackLight), darkBG},
		{"secondary text on light background", grayOr(theme, stepSecondaryLight, FallbackDark), lightBG},
		{"secondary text on dark background", grayOr(theme, stepSecondaryDark, FallbackLight), darkBG},
		{"accent on light background", theme.Colors.Accent.Regular, lightBG},
	}

	for _, check := range checks {
		ratio := color.ContrastRatio(check.fg, check.bg)
		switch Classify(ratio) {
		case LevelFail:
			errs = append(errs, fmt.Sprintf("%s: contrast %.2f:1 is below the AA minimum %.1f:1", check.label, ratio, AAMinimum))
		case LevelAA:
			warnings = append(warnings, fmt.Sprintf("%s: contrast %.2f:1 passes AA but not AAA (%.1f:1)", check.label, ratio, AAAMinimum))
		}
	}

	return errs, warnings
}

// Level grades a contrast ratio against the WCAG thresholds.
type Level int

const (
	// LevelFail is below the AA minimum.
	LevelFail Level = iota
	// LevelAA passes AA but not AAA.
	LevelAA
	// LevelAAA passes both thresholds.
	LevelAAA
)

// Classify grades a contrast ratio. Thresholds are inclusive: exactly 4.5
// passes AA and exactly 7.0 passes AAA.
func Classify(ratio float64) Level {
	switch {
	case ratio < AAMinimum:
		return LevelFail
	case ratio < AAAMinimum:
		return LevelAA
	default:
		return LevelAAA
	}
}

func harmonyWarnings(theme models.Theme) []string {
	var warnings []string

	accent := theme.Colors.Accent
	if color.RelativeLuminance(accent.Light) <= color.RelativeLuminance(accent.Regular) {
		warnings = append(warnings, "accent.light is not lighter than accent.regular")
	}
	if color.RelativeLuminance(accent.Regular) <= color.RelativeLuminance(accent.Dark) {
		warnings = append(warnings, "accent.regular is not lighter than accent.dark")
	}

	if n := len(theme.Colors.Charts.Primary); n < models.MinRecommendedPrimary {
		warnings = append(warnings, fmt.Sprintf("charts.primary has only %d colors; %d or more give charts room before repeating", n, models.MinRecommendedPrimary))
	}

	warnings = append(warnings, lengthWarnings(theme.Colors.Charts)...)

	return warnings
}

// lengthWarnings flags chart lists outside their intended ranges. Extra
// colors beyond the range are never consumed; a single gradient stop
// renders as a flat fill.
func lengthWarnings(charts models.Charts) []string {
	var warnings []string

	if n := len(charts.Primary); n > models.MaxPrimaryColors {
		warnings = append(warnings, fmt.Sprintf("charts.primary has %d colors; only %d are ever used", n, models.MaxPrimaryColors))
	}
	if n := len(charts.Categorical); n > models.MaxCategoricalColors {
		warnings = append(warnings, fmt.Sprintf("charts.categorical has %d colors; only %d are ever used", n, models.MaxCategoricalColors))
	}
	if n := len(charts.Gradient); n > 0 && n < models.MinGradientColors {
		warnings = append(warnings, fmt.Sprintf("charts.gradient has %d color; a gradient needs at least %d", n, models.MinGradientColors))
	} else if n := len(charts.Gradient); n > models.MaxGradientColors {
		warnings = append(warnings, fmt.Sprintf("charts.gradient has %d colors; only %d are ever used", n, models.MaxGradientColors))
	}

	return warnings
}
