// Package accessibility validates theme colours and typography against WCAG
// contrast and readability rules and scores the result.
//
// Validation never fails: malformed colours, fonts and sizes are reported as
// warnings so callers always get a usable Results value.
package accessibility

import "time"

// WarningType classifies what a warning is about.
type WarningType string

const (
	WarningContrast    WarningType = "contrast"
	WarningReadability WarningType = "readability"
	WarningColor       WarningType = "color"
	WarningTypography  WarningType = "typography"
	WarningOther       WarningType = "other"
)

// Severity of a warning. Only SeverityHigh blocks compliance.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Warning is a single validation finding.
type Warning struct {
	Type       WarningType `json:"type" yaml:"type"`
	Severity   Severity    `json:"severity" yaml:"severity"`
	Message    string      `json:"message" yaml:"message"`
	Element    string      `json:"element,omitempty" yaml:"element,omitempty"`
	Suggestion string      `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Results is the outcome of one validation call.
type Results struct {
	IsCompliant     bool               `json:"isCompliant" yaml:"isCompliant"`
	Score           int                `json:"score" yaml:"score"`
	ContrastRatios  map[string]float64 `json:"contrastRatios" yaml:"contrastRatios"`
	Warnings        []Warning          `json:"warnings" yaml:"warnings"`
	Recommendations []string           `json:"recommendations" yaml:"recommendations"`
	LastValidated   time.Time          `json:"lastValidated" yaml:"lastValidated"`
}

// HasSeverity reports whether any warning has the given severity.
func (r Results) HasSeverity(s Severity) bool {
	return hasSeverity(r.Warnings, s)
}

// CountBySeverity tallies warnings per severity.
func (r Results) CountBySeverity() map[Severity]int {
	counts := map[Severity]int{SeverityLow: 0, SeverityMedium: 0, SeverityHigh: 0}
	for _, w := range r.Warnings {
		counts[w.Severity]++
	}
	return counts
}

func hasSeverity(warnings []Warning, s Severity) bool {
	for _, w := range warnings {
		if w.Severity == s {
			return true
		}
	}
	return false
}

func hasType(warnings []Warning, t WarningType) bool {
	for _, w := range warnings {
		if w.Type == t {
			return true
		}
	}
	return false
}
