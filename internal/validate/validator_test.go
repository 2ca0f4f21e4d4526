package validate

import (
	"strings"
	"testing"

	"github.com/hueforge/huebuild/internal/models"
)

func violetTheme() models.Theme {
	return models.Theme{
		ID:   "violet",
		Name: "Violet",
		Colors: models.Colors{
			Accent: models.Accent{
				Light:   "#c561f6",
				Regular: "#7611a6",
				Dark:    "#1c0056",
			},
			Charts: models.Charts{
				Primary:     []string{"#7611a6", "#c561f6", "#1c0056"},
				Categorical: []string{"#7611a6", "#11a676", "#a67611"},
				Gradient:    []string{"#1c0056", "#c561f6"},
			},
		},
	}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Level
	}{
		{4.5, LevelAA},
		{4.49999, LevelFail},
		{7.0, LevelAAA},
		{6.9999, LevelAA},
		{21, LevelAAA},
		{1, LevelFail},
	}
	for _, tc := range cases {
		if got := Classify(tc.ratio); got != tc.want {
			t.Errorf("Classify(%v): expected %v, got %v", tc.ratio, tc.want, got)
		}
	}
}

func TestMissingGradientIsOneError(t *testing.T) {
	theme := violetTheme()
	theme.Colors.Charts.Gradient = nil

	result := ValidateTheme(theme)
	if result.Valid {
		t.Fatal("expected theme without gradient colors to be invalid")
	}

	matches := 0
	for _, e := range result.Errors {
		if strings.Contains(e, "charts.gradient") {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one gradient error, got %d (%v)", matches, result.Errors)
	}
}

func TestMissingAccentSubColors(t *testing.T) {
	theme := violetTheme()
	theme.Colors.Accent.Light = ""
	theme.Colors.Accent.Dark = ""

	result := ValidateTheme(theme)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "accent.light") {
		t.Errorf("first error should name accent.light: %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "accent.dark") {
		t.Errorf("second error should name accent.dark: %q", result.Errors[1])
	}
}

func TestMalformedHexIsStructural(t *testing.T) {
	theme := violetTheme()
	theme.Colors.Accent.Regular = "purple"
	theme.Colors.Charts.Primary = []string{"#7611a6", "#12345"}

	result := ValidateTheme(theme)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	// Structural failures suppress the contrast checks entirely.
	for _, e := range result.Errors {
		if strings.Contains(e, "contrast") {
			t.Errorf("unexpected contrast error alongside structural failure: %q", e)
		}
	}
}

func TestAccessibilityWithFallbacks(t *testing.T) {
	// No gray ramp: the text checks run against the literal black/white
	// fallbacks and pass at maximum contrast; accent #7611a6 on white
	// clears AAA on its own.
	result := ValidateTheme(violetTheme())

	if !result.Valid {
		t.Fatalf("expected valid theme, got errors: %v", result.Errors)
	}
	for _, w := range result.Warnings {
		if strings.Contains(w, "accent.") {
			t.Errorf("harmony should pass for a strictly darkening ramp: %q", w)
		}
	}
}

func TestAccentContrastError(t *testing.T) {
	theme := violetTheme()
	// #c26e1b on white is around 3.8:1, below the AA minimum.
	theme.Colors.Accent.Regular = "#c26e1b"

	result := ValidateTheme(theme)
	if result.Valid {
		t.Fatal("expected accent contrast failure")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "accent on light background") && strings.Contains(e, "below the AA minimum") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an accent contrast error, got %v", result.Errors)
	}
}

func TestAccentContrastWarning(t *testing.T) {
	theme := violetTheme()
	// #e00000 on white sits near 5:1: AA yes, AAA no.
	theme.Colors.Accent.Regular = "#e00000"

	result := ValidateTheme(theme)
	if !result.Valid {
		t.Fatalf("expected valid theme, got errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "accent on light background") && strings.Contains(w, "passes AA but not AAA") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an AA-only warning, got %v", result.Warnings)
	}
}

func TestHarmonyWarnings(t *testing.T) {
	theme := violetTheme()
	// Invert the ramp: light is now the darkest color.
	theme.Colors.Accent.Light, theme.Colors.Accent.Dark = theme.Colors.Accent.Dark, theme.Colors.Accent.Light
	theme.Colors.Charts.Primary = []string{"#7611a6", "#c561f6"}

	result := ValidateTheme(theme)

	ramp := 0
	primary := 0
	for _, w := range result.Warnings {
		if strings.Contains(w, "accent.") {
			ramp++
		}
		if strings.Contains(w, "charts.primary") {
			primary++
		}
	}
	if ramp != 2 {
		t.Errorf("expected 2 ramp warnings, got %d (%v)", ramp, result.Warnings)
	}
	if primary != 1 {
		t.Errorf("expected 1 short-primary warning, got %d (%v)", primary, result.Warnings)
	}
}

func TestLengthWarnings(t *testing.T) {
	theme := violetTheme()
	theme.Colors.Charts.Gradient = []string{"#1c0056"}

	result := ValidateTheme(theme)
	if !result.Valid {
		t.Fatalf("length issues are advisory, got errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "charts.gradient") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected single-stop gradient warning, got %v", result.Warnings)
	}
}

func TestValidateThemesIndependent(t *testing.T) {
	good := violetTheme()
	bad := violetTheme()
	bad.ID = "broken"
	bad.Colors.Charts.Categorical = []string{}

	results := ValidateThemes(map[string]models.Theme{
		"violet": good,
		"broken": bad,
	})

	if !results["violet"].Valid {
		t.Errorf("violet should validate: %v", results["violet"].Errors)
	}
	if results["broken"].Valid {
		t.Error("broken should fail")
	}
}
