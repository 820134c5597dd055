package accessibility

import (
	"fmt"
	"math"

	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/theme"
)

// Contrast pair labels used as keys in Results.ContrastRatios.
const (
	PairTextBackground      = "text-background"
	PairPrimaryBackground   = "primary-background"
	PairSecondaryBackground = "secondary-background"
	PairAccentBackground    = "accent-background"
	PairSurfaceText         = "surface-text"
	PairSuccessText         = "success-text"
	PairWarningText         = "warning-text"
	PairErrorText           = "error-text"
)

// ScorePassRatio is the ratio a pair must reach to count towards the score,
// whatever the text size.
const ScorePassRatio = colour.MinRatioAANormal

// scoreThreshold is the score under which the scheme gets a general recommendation.
const scoreThreshold = 80

// pairCheck is one row of the scheme checklist.
type pairCheck struct {
	label    string
	fg, bg   theme.Role
	severity Severity
	// informational pairs are recorded and scored but only warned on
	// when Options.WarnInformationalPairs is set.
	informational bool
	description   string
}

var schemeChecks = []pairCheck{
	{label: PairTextBackground, fg: theme.RoleText, bg: theme.RoleBackground, severity: SeverityHigh, description: "Text on background"},
	{label: PairPrimaryBackground, fg: theme.RolePrimary, bg: theme.RoleBackground, severity: SeverityMedium, description: "Primary colour on background"},
	{label: PairSecondaryBackground, fg: theme.RoleSecondary, bg: theme.RoleBackground, severity: SeverityLow, informational: true, description: "Secondary colour on background"},
	{label: PairAccentBackground, fg: theme.RoleAccent, bg: theme.RoleBackground, severity: SeverityLow, informational: true, description: "Accent colour on background"},
	{label: PairSurfaceText, fg: theme.RoleSurface, bg: theme.RoleText, severity: SeverityMedium, description: "Surface against text"},
	{label: PairSuccessText, fg: theme.RoleSuccess, bg: theme.RoleText, severity: SeverityMedium, description: "Success colour against text"},
	{label: PairWarningText, fg: theme.RoleWarning, bg: theme.RoleText, severity: SeverityMedium, description: "Warning colour against text"},
	{label: PairErrorText, fg: theme.RoleError, bg: theme.RoleText, severity: SeverityMedium, description: "Error colour against text"},
}

// PairLabels returns the contrast pair labels in checklist order.
func PairLabels() []string {
	labels := make([]string, len(schemeChecks))
	for i, c := range schemeChecks {
		labels[i] = c.label
	}
	return labels
}

// PairRoles returns the foreground and background roles compared by label.
func PairRoles(label string) (fg, bg theme.Role, ok bool) {
	for _, c := range schemeChecks {
		if c.label == label {
			return c.fg, c.bg, true
		}
	}
	return "", "", false
}

// formatSeverity is the severity of a malformed colour in role. Text and
// background feed the one high-severity pair, so a bad value there blocks
// compliance.
func formatSeverity(role theme.Role) Severity {
	if role == theme.RoleText || role == theme.RoleBackground {
		return SeverityHigh
	}
	return SeverityMedium
}

// ValidateColorScheme runs the scheme checklist using the default validator.
func ValidateColorScheme(scheme theme.ColorScheme) Results {
	return defaultValidator.ValidateColorScheme(scheme)
}

// ValidateColorScheme checks every colour pair in the checklist and scores
// the scheme as the share of pairs reaching 4.5:1.
func (v *Validator) ValidateColorScheme(scheme theme.ColorScheme) Results {
	warnings := make([]Warning, 0)
	parsed := make(map[theme.Role]colour.RGB, len(theme.Roles))

	for _, role := range theme.Roles {
		value := scheme.Get(role)
		rgb, err := colour.ParseHex(value)
		if err != nil {
			warnings = append(warnings, invalidColourWarning(role, value))
			continue
		}
		parsed[role] = rgb
	}

	ratios := make(map[string]float64, len(schemeChecks))
	passed := 0
	for _, check := range schemeChecks {
		fg, fgOK := parsed[check.fg]
		bg, bgOK := parsed[check.bg]
		if !fgOK || !bgOK {
			// Counted as a failed pair; the format warning already explains why.
			v.logger.Trace("skipping pair with invalid colour", "pair", check.label)
			continue
		}

		ratio := colour.ContrastRatioRGB(fg, bg)
		ratios[check.label] = ratio
		if ratio >= ScorePassRatio {
			passed++
			continue
		}

		if check.informational && !v.opts.WarnInformationalPairs {
			continue
		}
		warnings = append(warnings, contrastWarning(check, scheme, ratio))
	}

	score := int(math.Round(100 * float64(passed) / float64(len(schemeChecks))))
	results := Results{
		IsCompliant:     !hasSeverity(warnings, SeverityHigh),
		Score:           score,
		ContrastRatios:  ratios,
		Warnings:        warnings,
		Recommendations: schemeRecommendations(warnings, score),
		LastValidated:   v.now(),
	}

	v.logger.Debug("validated colour scheme",
		"score", results.Score,
		"compliant", results.IsCompliant,
		"warnings", len(results.Warnings))

	return results
}

func invalidColourWarning(role theme.Role, value string) Warning {
	msg := fmt.Sprintf("%s colour %q is not a valid #RRGGBB colour", role, value)
	if value == "" {
		msg = fmt.Sprintf("%s colour is not set", role)
	}
	return Warning{
		Type:       WarningColor,
		Severity:   formatSeverity(role),
		Message:    msg,
		Element:    string(role),
		Suggestion: "Use a 6-digit hex colour such as #1a2b3c",
	}
}

func contrastWarning(check pairCheck, scheme theme.ColorScheme, ratio float64) Warning {
	fg := scheme.Get(check.fg)
	bg := scheme.Get(check.bg)

	suggestion := fmt.Sprintf("No lightness of %s reaches %s against %s; adjust %s instead",
		check.fg, colour.FormatRatio(colour.MinRatioAANormal), check.bg, check.bg)
	if candidates, err := colour.SuggestAccessibleColours(fg, bg, false); err == nil && len(candidates) > 0 {
		suggestion = fmt.Sprintf("Try %s %s", check.fg, candidates[0])
	}

	return Warning{
		Type:     WarningContrast,
		Severity: check.severity,
		Message: fmt.Sprintf("%s contrast is %s; WCAG AA requires %s",
			check.description, colour.FormatRatio(ratio), colour.FormatRatio(colour.MinRatioAANormal)),
		Element:    check.label,
		Suggestion: suggestion,
	}
}

func schemeRecommendations(warnings []Warning, score int) []string {
	recs := make([]string, 0)
	for _, w := range warnings {
		if w.Type == WarningContrast && w.Severity == SeverityHigh {
			recs = append(recs, "Fix text on background contrast before publishing; body copy must reach 4.5:1")
			break
		}
	}
	if hasType(warnings, WarningContrast) {
		recs = append(recs, "Adjust the flagged colour pairs to at least 4.5:1 contrast (WCAG AA)")
	}
	if hasType(warnings, WarningColor) {
		recs = append(recs, "Use 6-digit hex colours (#RRGGBB) for every colour role")
	}
	if score < scoreThreshold {
		recs = append(recs, "Overall colour accessibility is below 80%; review secondary and accent colours against the background")
	}
	return recs
}
