package cssgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hueforge/huebuild/internal/color"
	"github.com/hueforge/huebuild/internal/models"
)

func chartTheme() models.Theme {
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
				Categorical: []string{"#aa0000", "#00bb00", "#0000cc"},
				Gradient:    []string{"#1c0056", "#c561f6"},
			},
		},
	}
}

func TestGenerateSelector(t *testing.T) {
	out := Generate(chartTheme())
	if !strings.HasPrefix(out, ":root.theme-violet {\n") {
		t.Fatalf("unexpected selector:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("block not closed:\n%s", out)
	}
	for _, want := range []string{
		"--accent-light: #c561f6;",
		"--accent-regular: #7611a6;",
		"--accent-dark: #1c0056;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerateCategoricalCycles(t *testing.T) {
	out := Generate(chartTheme())

	// A 3-color list fills all 8 slots as 1-2-3-1-2-3-1-2.
	want := []string{
		"--chart-categorical-1: #aa0000;",
		"--chart-categorical-2: #00bb00;",
		"--chart-categorical-3: #0000cc;",
		"--chart-categorical-4: #aa0000;",
		"--chart-categorical-5: #00bb00;",
		"--chart-categorical-6: #0000cc;",
		"--chart-categorical-7: #aa0000;",
		"--chart-categorical-8: #00bb00;",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q", line)
		}
	}
}

func TestGenerateEmptyListUsesFallback(t *testing.T) {
	theme := chartTheme()
	theme.Colors.Charts.Primary = nil

	out := Generate(theme)
	for i := 1; i <= models.PrimaryChartSlots; i++ {
		want := fmt.Sprintf("--chart-primary-%d: %s;", i, color.FallbackColor)
		if !strings.Contains(out, want) {
			t.Errorf("missing fallback slot %d in:\n%s", i, out)
		}
	}
}

func TestGenerateOmitsGrayWhenAbsent(t *testing.T) {
	out := Generate(chartTheme())
	if strings.Contains(out, "--gray-") {
		t.Fatalf("theme without a gray ramp must not emit gray variables:\n%s", out)
	}
}

func TestGenerateGrayStepsInRampOrder(t *testing.T) {
	theme := chartTheme()
	theme.Colors.Gray = map[string]string{
		"999": "#fafafa",
		"0":   "#0a0a0a",
		"500": "#808080",
	}

	out := Generate(theme)
	i0 := strings.Index(out, "--gray-0: #0a0a0a;")
	i500 := strings.Index(out, "--gray-500: #808080;")
	i999 := strings.Index(out, "--gray-999: #fafafa;")
	if i0 == -1 || i500 == -1 || i999 == -1 {
		t.Fatalf("missing gray steps:\n%s", out)
	}
	if !(i0 < i500 && i500 < i999) {
		t.Error("gray steps must be emitted in ramp order")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	theme := chartTheme()
	theme.Colors.Gray = map[string]string{"0": "#0a0a0a", "999": "#fafafa"}

	first := Generate(theme)
	for i := 0; i < 10; i++ {
		if again := Generate(theme); again != first {
			t.Fatal("generator output must be byte-identical across calls")
		}
	}
}

func TestAccentContrast(t *testing.T) {
	dark := chartTheme()
	if got := AccentContrast(dark); got != "#ffffff" {
		t.Errorf("dark accent should get light text, got %s", got)
	}

	light := chartTheme()
	light.Colors.Accent.Regular = "#f2e9a1"
	if got := AccentContrast(light); got != "#000000" {
		t.Errorf("light accent should get dark text, got %s", got)
	}
}

func TestChartColorsVars(t *testing.T) {
	palette := ChartColors(chartTheme())

	if len(palette.Categorical) != 3 {
		t.Fatalf("expected raw list length 3, got %d", len(palette.Categorical))
	}
	if len(palette.CategoricalVars) != models.CategoricalSlots {
		t.Fatalf("expected %d slot vars, got %d", models.CategoricalSlots, len(palette.CategoricalVars))
	}
	if palette.PrimaryVars[0] != "var(--chart-primary-1)" {
		t.Errorf("unexpected var reference: %s", palette.PrimaryVars[0])
	}
	if palette.GradientVars[2] != "var(--gradient-stop-3)" {
		t.Errorf("unexpected var reference: %s", palette.GradientVars[2])
	}
}
