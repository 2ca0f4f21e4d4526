// Package models defines the core data types shared across huebuild.
package models

// GraySteps is the fixed ordered set of gray ramp labels, darkest-polarity
// end first. A theme may define any subset; missing steps are simply omitted
// from generated output.
var GraySteps = []string{"0", "50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "999"}

// Chart slot counts rendered by the site layer. Shorter color lists wrap
// cyclically to fill every slot.
const (
	PrimaryChartSlots     = 5
	CategoricalSlots      = 8
	GradientStopSlots     = 3
	MaxPrimaryColors      = 10
	MaxCategoricalColors  = 15
	MinGradientColors     = 2
	MaxGradientColors     = 5
	MinRecommendedPrimary = 3
)

// Accent is the three-step light/regular/dark ramp of a theme's brand color.
type Accent struct {
	Light   string `json:"light" yaml:"light"`
	Regular string `json:"regular" yaml:"regular"`
	Dark    string `json:"dark" yaml:"dark"`
}

// Charts holds the variable-length chart color lists. Renderers index them
// cyclically, so list length determines how many distinct colors appear
// before repetition.
type Charts struct {
	Primary     []string `json:"primary" yaml:"primary"`
	Categorical []string `json:"categorical" yaml:"categorical"`
	Gradient    []string `json:"gradient" yaml:"gradient"`
}

// Colors bundles every color role a theme defines.
type Colors struct {
	Accent Accent `json:"accent" yaml:"accent"`

	// Gray is a sparse step-label to hex mapping; nil when the theme has
	// no neutral ramp of its own.
	Gray map[string]string `json:"gray,omitempty" yaml:"gray,omitempty"`

	Charts Charts `json:"charts" yaml:"charts"`
}

// Theme is one named color scheme. Records are immutable after load: they
// are read from a definition file (or the builtin set) at build time and
// never mutated.
type Theme struct {
	// ID is the short machine-readable identifier, unique across the
	// theme set and safe to embed in a CSS class name.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable display name.
	Name string `json:"name" yaml:"name"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`

	Colors Colors `json:"colors" yaml:"colors"`
}

// ValidationResult is the outcome of validating a single theme. Errors are
// hard failures; warnings are advisory and never block anything.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// GraySorted returns the defined gray steps in ramp order.
func (c Colors) GraySorted() []string {
	if len(c.Gray) == 0 {
		return nil
	}
	steps := make([]string, 0, len(c.Gray))
	for _, label := range GraySteps {
		if _, ok := c.Gray[label]; ok {
			steps = append(steps, label)
		}
	}
	return steps
}
