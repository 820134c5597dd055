package colour

import "fmt"

// Level is a WCAG conformance level for a contrast ratio.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "FAIL"
)

// WCAG 2.x minimum contrast ratios.
const (
	MinRatioAANormal  = 4.5
	MinRatioAALarge   = 3.0
	MinRatioAAANormal = 7.0
	MinRatioAAALarge  = 4.5
)

// Compliance is the result of classifying a contrast ratio.
type Compliance struct {
	Compliant bool  `json:"compliant" yaml:"compliant"`
	Level     Level `json:"level" yaml:"level"`
}

// ContrastRatioRGB calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatioRGB(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio parses two #RRGGBB colours and returns their contrast ratio.
// An unparsable colour is an error wrapping ErrInvalidColour; it is never
// treated as black.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatioRGB(ca, cb), nil
}

// MinimumRatio returns the contrast ratio required for level at the given text size.
func MinimumRatio(level Level, largeText bool) float64 {
	switch level {
	case LevelAAA:
		if largeText {
			return MinRatioAAALarge
		}
		return MinRatioAAANormal
	case LevelAA:
		if largeText {
			return MinRatioAALarge
		}
		return MinRatioAANormal
	default:
		return 1
	}
}

// WCAGCompliance classifies a contrast ratio, checking AAA before AA.
func WCAGCompliance(ratio float64, largeText bool) Compliance {
	switch {
	case ratio >= MinimumRatio(LevelAAA, largeText):
		return Compliance{Compliant: true, Level: LevelAAA}
	case ratio >= MinimumRatio(LevelAA, largeText):
		return Compliance{Compliant: true, Level: LevelAA}
	default:
		return Compliance{Compliant: false, Level: LevelFail}
	}
}

// FormatRatio renders a ratio the way WCAG tools do, e.g. "4.52:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
