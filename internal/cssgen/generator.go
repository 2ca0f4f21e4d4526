// Package cssgen derives render-ready CSS custom properties from theme
// records. Generation is deterministic: the same theme always produces
// byte-identical output, with no I/O and no time- or randomness-derived
// values, so stylesheet builds are reproducible.
package cssgen

import (
	"fmt"
	"strings"

	"github.com/hueforge/huebuild/internal/color"
	"github.com/hueforge/huebuild/internal/models"
)

// Generate renders one theme as a selector block on the root element
// carrying the theme class. The theme is assumed structurally valid;
// callers validate first.
//
// Chart slots are filled cyclically, so a list shorter than the slot
// count wraps around instead of leaving slots blank.
func Generate(theme models.Theme) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, ":root.theme-%s {\n", theme.ID)

	writeVar(&sb, "accent-light", theme.Colors.Accent.Light)
	writeVar(&sb, "accent-regular", theme.Colors.Accent.Regular)
	writeVar(&sb, "accent-dark", theme.Colors.Accent.Dark)

	// Themes without a gray ramp get no gray variables at all; the page
	// layer falls back to its own defaults for such themes.
	if len(theme.Colors.Gray) > 0 {
		for _, step := range models.GraySteps {
			if value, ok := theme.Colors.Gray[step]; ok {
				writeVar(&sb, "gray-"+step, value)
			}
		}
	}

	writeSlots(&sb, "chart-primary", theme.Colors.Charts.Primary, models.PrimaryChartSlots)
	writeSlots(&sb, "chart-categorical", theme.Colors.Charts.Categorical, models.CategoricalSlots)
	writeSlots(&sb, "gradient-stop", theme.Colors.Charts.Gradient, models.GradientStopSlots)

	writeDerived(&sb, theme)

	sb.WriteString("}\n")
	return sb.String()
}

func writeVar(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "  --%s: %s;\n", name, value)
}

func writeSlots(sb *strings.Builder, prefix string, list []string, count int) {
	for i := 0; i < count; i++ {
		writeVar(sb, fmt.Sprintf("%s-%d", prefix, i+1), color.Pick(list, i))
	}
}

// ChartPalette exposes a theme's raw chart color lists alongside the
// generated slot variable references, for callers that iterate "however
// many colors this theme actually has" rather than the fixed slot count.
type ChartPalette struct {
	Primary     []string
	Categorical []string
	Gradient    []string

	PrimaryVars     []string
	CategoricalVars []string
	GradientVars    []string
}

// ChartColors returns the chart palette for a theme.
func ChartColors(theme models.Theme) ChartPalette {
	return ChartPalette{
		Primary:         theme.Colors.Charts.Primary,
		Categorical:     theme.Colors.Charts.Categorical,
		Gradient:        theme.Colors.Charts.Gradient,
		PrimaryVars:     slotVars("chart-primary", models.PrimaryChartSlots),
		CategoricalVars: slotVars("chart-categorical", models.CategoricalSlots),
		GradientVars:    slotVars("gradient-stop", models.GradientStopSlots),
	}
}

func slotVars(prefix string, count int) []string {
	vars := make([]string, count)
	for i := range vars {
		vars[i] = fmt.Sprintf("var(--%s-%d)", prefix, i+1)
	}
	return vars
}
