package accessibility

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jmylchreest/brandlint/internal/theme"
)

const (
	// PixelsPerRem is the root font size assumed for rem conversion.
	PixelsPerRem = 16.0
	// MinBodyPixels is the smallest acceptable "base" size.
	MinBodyPixels = 14.0
	// MinHeadingPixels is the smallest acceptable heading size.
	MinHeadingPixels = 16.0

	// typographyPenalty is subtracted from the score per warning.
	typographyPenalty = 20
)

// sizeScale is the order known size keys are reported in.
var sizeScale = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

var errInvalidLength = errors.New("not a valid rem or px length")

// ParseFontSize converts a CSS length in rem or px to pixels. Zero and
// negative lengths parse; callers decide whether they are acceptable.
func ParseFontSize(value string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	var number string
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "rem"):
		number = strings.TrimSuffix(v, "rem")
		scale = PixelsPerRem
	case strings.HasSuffix(v, "px"):
		number = strings.TrimSuffix(v, "px")
	default:
		return 0, fmt.Errorf("%w: %q", errInvalidLength, value)
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("%w: %q", errInvalidLength, value)
	}
	return n * scale, nil
}

// ValidateTypography checks fonts and sizes using the default validator.
func ValidateTypography(cfg theme.TypographyConfig) Results {
	return defaultValidator.ValidateTypography(cfg)
}

// ValidateTypography checks font families and minimum font sizes. The score
// loses a flat 20 points per warning.
func (v *Validator) ValidateTypography(cfg theme.TypographyConfig) Results {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.FontFamily) == "" {
		warnings = append(warnings, Warning{
			Type:       WarningTypography,
			Severity:   SeverityMedium,
			Message:    "Font family is empty",
			Element:    "fontFamily",
			Suggestion: "Set a font stack ending in a generic family, e.g. \"Inter, sans-serif\"",
		})
	}
	if cfg.HeadingFont != nil && strings.TrimSpace(*cfg.HeadingFont) == "" {
		warnings = append(warnings, Warning{
			Type:       WarningTypography,
			Severity:   SeverityMedium,
			Message:    "Heading font is set but empty",
			Element:    "headingFont",
			Suggestion: "Remove the heading font to inherit the body font, or name one",
		})
	}

	for _, key := range orderedSizeKeys(cfg.FontSizes) {
		if w, ok := checkFontSize(key, cfg.FontSizes[key]); ok {
			warnings = append(warnings, w)
		}
	}

	score := 100
	if len(warnings) > 0 {
		score = max(0, 100-typographyPenalty*len(warnings))
	}

	results := Results{
		IsCompliant:     !hasSeverity(warnings, SeverityHigh),
		Score:           score,
		ContrastRatios:  map[string]float64{},
		Warnings:        warnings,
		Recommendations: typographyRecommendations(warnings),
		LastValidated:   v.now(),
	}

	v.logger.Debug("validated typography",
		"score", results.Score,
		"compliant", results.IsCompliant,
		"warnings", len(results.Warnings))

	return results
}

func checkFontSize(key, value string) (Warning, bool) {
	element := "fontSizes." + key

	px, err := ParseFontSize(value)
	if err != nil {
		// An unreadable body size cannot be shown to meet the minimum.
		severity := SeverityLow
		if key == "base" {
			severity = SeverityHigh
		}
		return Warning{
			Type:       WarningTypography,
			Severity:   severity,
			Message:    fmt.Sprintf("Font size %q for %s is not a valid rem or px length", value, key),
			Element:    element,
			Suggestion: "Express font sizes in rem, e.g. 1rem",
		}, true
	}

	if key == "base" && px < MinBodyPixels {
		return Warning{
			Type:       WarningTypography,
			Severity:   SeverityHigh,
			Message:    fmt.Sprintf("Base font size %s (%gpx) is too small for body text", value, px),
			Element:    element,
			Suggestion: fmt.Sprintf("Use at least %grem (%gpx)", MinBodyPixels/PixelsPerRem, MinBodyPixels),
		}, true
	}

	if strings.Contains(key, "heading") && px < MinHeadingPixels {
		return Warning{
			Type:       WarningTypography,
			Severity:   SeverityMedium,
			Message:    fmt.Sprintf("Heading size %s for %s (%gpx) is smaller than body text", value, key, px),
			Element:    element,
			Suggestion: fmt.Sprintf("Use at least %grem (%gpx) for headings", MinHeadingPixels/PixelsPerRem, MinHeadingPixels),
		}, true
	}

	if px <= 0 {
		return Warning{
			Type:       WarningTypography,
			Severity:   SeverityLow,
			Message:    fmt.Sprintf("Font size %s for %s must be positive", value, key),
			Element:    element,
			Suggestion: "Express font sizes in rem, e.g. 1rem",
		}, true
	}

	return Warning{}, false
}

// orderedSizeKeys returns the known scale keys first, then the rest sorted.
func orderedSizeKeys(sizes map[string]string) []string {
	keys := make([]string, 0, len(sizes))
	known := make(map[string]bool, len(sizeScale))
	for _, k := range sizeScale {
		known[k] = true
		if _, ok := sizes[k]; ok {
			keys = append(keys, k)
		}
	}

	rest := make([]string, 0, len(sizes))
	for k := range sizes {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

func typographyRecommendations(warnings []Warning) []string {
	recs := make([]string, 0)
	var fonts, body, headings, format bool
	for _, w := range warnings {
		switch {
		case w.Element == "fontFamily" || w.Element == "headingFont":
			fonts = true
		case w.Severity == SeverityHigh:
			body = true
		case w.Severity == SeverityMedium:
			headings = true
		case w.Severity == SeverityLow:
			format = true
		}
	}

	if body {
		recs = append(recs, "Increase the base font size to at least 0.875rem (14px) for readable body text")
	}
	if headings {
		recs = append(recs, "Keep heading sizes at 1rem (16px) or larger")
	}
	if fonts {
		recs = append(recs, "Specify font families with a generic fallback such as sans-serif")
	}
	if format {
		recs = append(recs, "Express font sizes in rem units (1rem = 16px)")
	}
	return recs
}
