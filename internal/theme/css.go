package theme

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/brandlint/internal/colour"
)

// A colour function is converted only when it matches through its closing
// parenthesis. Only the oklab axes may be negative.
const (
	cssNum   = `([0-9]*\.?[0-9]+)`
	cssSep   = `(?:\s*,\s*|\s+)`
	cssAlpha = `(?:\s*[,/]\s*[0-9]*\.?[0-9]+%?)?\s*\)$`
)

var (
	cssVarRegex   = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;]+);`)
	cssHexRegex   = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
	cssRGBRegex   = regexp.MustCompile(`^rgba?\(\s*` + cssNum + cssSep + cssNum + cssSep + cssNum + cssAlpha)
	cssHSLRegex   = regexp.MustCompile(`^hsla?\(\s*` + cssNum + `(?:deg)?` + cssSep + cssNum + `%` + cssSep + cssNum + `%` + cssAlpha)
	cssOKLCHRegex = regexp.MustCompile(`^oklch\(\s*` + cssNum + `(%?)\s+` + cssNum + `\s+` + cssNum + `(?:deg)?` + cssAlpha)
	cssOKLABRegex = regexp.MustCompile(`^oklab\(\s*` + cssNum + `(%?)\s+(-?[0-9]*\.?[0-9]+)\s+(-?[0-9]*\.?[0-9]+)` + cssAlpha)
)

// cssPrefixes are stripped from custom property names before matching roles,
// so --color-primary, --brand-primary and --primary all set the primary role.
var cssPrefixes = []string{"color-", "colour-", "brand-", "theme-"}

// parseCSS reads a theme from CSS custom properties such as
//
//	:root { --color-primary: #1d4ed8; --font-family: Inter, sans-serif; --font-size-base: 1rem; }
//
// Colours in rgb(), hsl(), oklch() and oklab() notation and 3-digit hex are
// converted to #rrggbb. Values that cannot be converted are kept as written so
// validation reports them. Properties that name no role are ignored.
func parseCSS(content string) (*Preset, error) {
	preset := &Preset{}
	found := false

	for _, match := range cssVarRegex.FindAllStringSubmatch(content, -1) {
		name := strings.ToLower(match[1])
		value := strings.TrimSpace(match[2])

		if applyCSSTypography(&preset.Typography, name, value) {
			found = true
			continue
		}

		for _, prefix := range cssPrefixes {
			name = strings.TrimPrefix(name, prefix)
		}
		role, err := ParseRole(name)
		if err != nil {
			continue
		}
		if err := preset.Colors.Set(role, cssColourToHex(value)); err != nil {
			return nil, err
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("no theme custom properties found in CSS")
	}
	return preset, nil
}

func applyCSSTypography(t *TypographyConfig, name, value string) bool {
	switch {
	case name == "font-family" || name == "font-body" || name == "font-sans":
		t.FontFamily = value
	case name == "font-heading" || name == "heading-font" || name == "font-family-heading":
		v := value
		t.HeadingFont = &v
	case strings.HasPrefix(name, "font-size-"):
		t.SetFontSize(strings.TrimPrefix(name, "font-size-"), value)
	default:
		return false
	}
	return true
}

// cssColourToHex converts a CSS colour value to #rrggbb, returning value
// unchanged when it is not a supported notation.
func cssColourToHex(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))

	if m := cssHexRegex.FindStringSubmatch(v); m != nil {
		digits := m[1]
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		return "#" + digits
	}

	if m := cssRGBRegex.FindStringSubmatch(v); m != nil {
		// Regex guarantees these are valid floats.
		r, _ := strconv.ParseFloat(m[1], 64)
		g, _ := strconv.ParseFloat(m[2], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		return colour.RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
	}

	if m := cssHSLRegex.FindStringSubmatch(v); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return colour.HSLToRGB(colour.HSL{H: h, S: s, L: l}).Hex()
	}

	if m := cssOKLCHRegex.FindStringSubmatch(v); m != nil {
		l := okLightness(m[1], m[2])
		c, _ := strconv.ParseFloat(m[3], 64)
		h, _ := strconv.ParseFloat(m[4], 64)
		return colorful.OkLch(l, c, h).Clamped().Hex()
	}

	if m := cssOKLABRegex.FindStringSubmatch(v); m != nil {
		l := okLightness(m[1], m[2])
		a, _ := strconv.ParseFloat(m[3], 64)
		b, _ := strconv.ParseFloat(m[4], 64)
		return colorful.OkLab(l, a, b).Clamped().Hex()
	}

	return strings.TrimSpace(value)
}

// okLightness reads an OKLab/OKLCH lightness given as 0-1 or as a percentage.
func okLightness(number, percent string) float64 {
	l, _ := strconv.ParseFloat(number, 64)
	if percent != "" {
		l /= 100
	}
	return l
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v)))) // #nosec G115 -- clamped to 0-255
}
