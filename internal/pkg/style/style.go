// Package style computes display styles for sourced advantage entries
package style

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// brightnessThreshold is the perceptual brightness above which dark text
// is readable on the background color.
const brightnessThreshold = 125

// Brightness returns the perceptual brightness of a color on a 0-255
// scale, per the YIQ luma approximation.
func Brightness(c colorful.Color) int {
	r := math.Round(c.R * 255)
	g := math.Round(c.G * 255)
	b := math.Round(c.B * 255)
	return int(math.Round((r*299 + g*587 + b*114) / 1000))
}

// Foreground returns the readable text color ("black" or "white") for
// the given hex background color. The second return is false when the
// color cannot be parsed.
func Foreground(hexColor string) (string, bool) {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return "", false
	}
	if Brightness(c) > brightnessThreshold {
		return "black", true
	}
	return "white", true
}

// Badge returns a CSS-like style string for a badge rendered on the
// given hex background color, or the empty string when the color is
// empty or unparseable.
func Badge(hexColor string) string {
	if hexColor == "" {
		return ""
	}
	fg, ok := Foreground(hexColor)
	if !ok {
		return ""
	}
	return fmt.Sprintf("background-color: %s; color: %s", hexColor, fg)
}
