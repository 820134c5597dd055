// Package colour provides the colour model and WCAG contrast maths used to
// validate theme and branding colours.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColour is returned when a string is not a #RRGGBB colour.
var ErrInvalidColour = errors.New("not a valid #RRGGBB colour")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a colour in the strict "#RRGGBB" form (case-insensitive).
// Shorthand (#RGB), a missing hash, alpha channels and surrounding whitespace
// are all rejected; the input is never repaired.
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}

	// IsValidHex guarantees each pair is two hex digits.
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// IsValidHex reports whether s is exactly '#' followed by six hex digits.
func IsValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect linearises an sRGB channel in [0,1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
