package styles

import "github.com/hueforge/huebuild/internal/models"

// ThemeTokens defines the semantic color roles for the picker TUI.
type ThemeTokens struct {
	Text      string
	TextMuted string
	Accent    string
	Focus     string
	Success   string
	Warning   string
	Error     string
}

// DefaultTokens is the baseline palette used before a theme is chosen.
var DefaultTokens = ThemeTokens{
	Text:      "#E6EDF3",
	TextMuted: "#8B9AAE",
	Accent:    "#5B8DEF",
	Focus:     "#7AA2F7",
	Success:   "#3FB950",
	Warning:   "#D29922",
	Error:     "#F85149",
}

// FromTheme derives picker tokens from a site theme, so the TUI previews
// the accent ramp of whatever the cursor rests on.
func FromTheme(theme models.Theme) ThemeTokens {
	tokens := DefaultTokens
	if theme.Colors.Accent.Regular != "" {
		tokens.Accent = theme.Colors.Accent.Regular
	}
	if theme.Colors.Accent.Light != "" {
		tokens.Focus = theme.Colors.Accent.Light
	}
	return tokens
}
