// Package color provides sRGB color math for theme accessibility checks.
package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FallbackColor is substituted when a cyclic pick has no colors to draw from.
const FallbackColor = "#888888"

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RGB holds one 8-bit channel triple.
type RGB struct {
	R int
	G int
	B int
}

// IsHex reports whether s is a 6-digit hex color with a leading '#'.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a 6-digit hex color, with or without a leading '#'.
// ok is false for any other shape; callers should treat that as
// "contrast indeterminate" rather than an error.
func ParseHex(s string) (RGB, bool) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, false
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, false
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, false
	}

	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

// RelativeLuminance computes the WCAG 2.0 relative luminance of a hex color.
// Invalid colors yield 0.
func RelativeLuminance(s string) float64 {
	rgb, ok := ParseHex(s)
	if !ok {
		return 0
	}

	r := linearize(float64(rgb.R) / 255.0)
	g := linearize(float64(rgb.G) / 255.0)
	b := linearize(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts a [0,1] sRGB channel value to linear RGB.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors.
// The result is symmetric in its arguments and falls in [1, 21].
func ContrastRatio(a, b string) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsLight reports whether a color sits above the luminance midpoint,
// i.e. dark text would read better on it than light text.
func IsLight(s string) bool {
	return RelativeLuminance(s) > 0.5
}

// Pick selects list[i mod len(list)], so a short list still fills a longer
// fixed set of slots by repetition. An empty list yields FallbackColor.
func Pick(list []string, i int) string {
	if len(list) == 0 {
		return FallbackColor
	}
	return list[i%len(list)]
}
