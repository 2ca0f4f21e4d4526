package cssgen

import (
	"fmt"
	"strings"

	"github.com/hueforge/huebuild/internal/color"
	"github.com/hueforge/huebuild/internal/models"
)

// Decorative values derived from the same theme fields. All of these are
// pure functions of the theme record and share the generator's
// determinism contract.

// writeDerived appends the decorative variables to a theme block.
func writeDerived(sb *strings.Builder, theme models.Theme) {
	writeVar(sb, "gradient-bg", gradientBackground())
	writeVar(sb, "accent-contrast", AccentContrast(theme))
	writeVar(sb, "accent-filter", accentFilter(theme))

	// Syntax highlighting borrows from the categorical chart slots so
	// code blocks stay on-palette without their own color fields.
	writeVar(sb, "syntax-keyword", "var(--chart-categorical-1)")
	writeVar(sb, "syntax-string", "var(--chart-categorical-2)")
	writeVar(sb, "syntax-function", "var(--chart-categorical-3)")
	writeVar(sb, "syntax-constant", "var(--chart-categorical-4)")
	writeVar(sb, "syntax-comment", "var(--chart-categorical-5)")
}

// gradientBackground composes the three gradient stops into a page
// background recipe.
func gradientBackground() string {
	return "linear-gradient(135deg, var(--gradient-stop-1), var(--gradient-stop-2), var(--gradient-stop-3))"
}

// AccentContrast picks the text color to place over the regular accent by
// comparing its luminance against the midpoint: dark text over light
// accents, light text over dark accents.
func AccentContrast(theme models.Theme) string {
	if color.IsLight(theme.Colors.Accent.Regular) {
		return "#000000"
	}
	return "#ffffff"
}

// accentFilter builds a CSS filter recipe that tints grayscale imagery
// toward the accent hue.
func accentFilter(theme models.Theme) string {
	hue, sat := hueSaturation(theme.Colors.Accent.Regular)
	return fmt.Sprintf("grayscale(100%%) sepia(100%%) hue-rotate(%ddeg) saturate(%d%%)", hue, sat)
}

// hueSaturation derives integer HSL-style hue and saturation percent from
// a hex color. Invalid colors yield a neutral recipe.
func hueSaturation(s string) (hue, sat int) {
	rgb, ok := color.ParseHex(s)
	if !ok {
		return 0, 100
	}

	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max, min := r, r
	for _, c := range []float64{g, b} {
		if c > max {
			max = c
		}
		if c < min {
			min = c
		}
	}

	delta := max - min
	if delta == 0 {
		return 0, 100
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60

	l := (max + min) / 2
	var sf float64
	if l > 0 && l < 1 {
		sf = delta / (1 - abs(2*l-1))
	}

	return int(h + 0.5), int(sf*100 + 0.5)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
