package colour

import (
	"fmt"
	"math"
)

// HSL represents a colour in HSL space.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// String returns the colour in CSS "hsl(h, s%, l%)" notation, rounded to integers.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S, c.L)
}

// RGBToHSL converts RGB to HSL colour space.
// Components are not rounded so that HSLToRGB(RGBToHSL(c)) == c.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space, rounding each channel to the
// nearest integer. Out-of-range saturation and lightness are clamped.
func HSLToRGB(c HSL) RGB {
	s := clampUnit(c.S / 100)
	l := clampUnit(c.L / 100)

	if s == 0 {
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToRGB(p, q, c.H+120)),
		G: toChannel(hueToRGB(p, q, c.H)),
		B: toChannel(hueToRGB(p, q, c.H-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func toChannel(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}
