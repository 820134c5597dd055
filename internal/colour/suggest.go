package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxSuggestions caps the number of colours SuggestAccessibleColours returns.
const MaxSuggestions = 5

// suggestionSteps is the number of lightness samples: 0.1, 0.2 ... 0.9.
const suggestionSteps = 9

// SuggestAccessibleColours proposes replacements for current that meet WCAG AA
// against target. If current already passes it is returned unchanged as the
// only element. Otherwise the lightness of current is swept over 0.1..0.9 with
// hue and saturation held, and up to MaxSuggestions passing candidates are
// returned darkest first. The result may be empty when no sample passes.
func SuggestAccessibleColours(current, target string, largeText bool) ([]string, error) {
	cur, err := ParseHex(current)
	if err != nil {
		return nil, err
	}
	tgt, err := ParseHex(target)
	if err != nil {
		return nil, err
	}

	threshold := MinimumRatio(LevelAA, largeText)
	if ContrastRatioRGB(cur, tgt) >= threshold {
		return []string{current}, nil
	}

	hsl := RGBToHSL(cur)
	suggestions := make([]string, 0, MaxSuggestions)
	for i := 1; i <= suggestionSteps && len(suggestions) < MaxSuggestions; i++ {
		candidate := HSLToRGB(HSL{H: hsl.H, S: hsl.S, L: float64(i) * 10})
		if ContrastRatioRGB(candidate, tgt) >= threshold {
			suggestions = append(suggestions, candidate.Hex())
		}
	}

	return suggestions, nil
}

// Suggestion is a suggested colour annotated for display.
type Suggestion struct {
	Hex   string  `json:"hex" yaml:"hex"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Level Level   `json:"level" yaml:"level"`
	// DeltaE is the CIEDE2000 distance from the original colour.
	DeltaE float64 `json:"delta_e" yaml:"delta_e"`
}

// RankSuggestions annotates suggestions with their contrast against target and
// their perceptual distance from current. Order is preserved. Entries that do
// not parse are skipped.
func RankSuggestions(current, target string, suggestions []string, largeText bool) []Suggestion {
	tgt, err := ParseHex(target)
	if err != nil {
		return nil
	}
	orig, origErr := colorful.Hex(current)

	ranked := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		rgb, err := ParseHex(s)
		if err != nil {
			continue
		}
		ratio := ContrastRatioRGB(rgb, tgt)
		sug := Suggestion{
			Hex:   rgb.Hex(),
			Ratio: ratio,
			Level: WCAGCompliance(ratio, largeText).Level,
		}
		if origErr == nil {
			sug.DeltaE = orig.DistanceCIEDE2000(toColorful(rgb))
		}
		ranked = append(ranked, sug)
	}
	return ranked
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}
