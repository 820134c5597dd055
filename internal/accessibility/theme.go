package accessibility

import (
	"math"

	"github.com/jmylchreest/brandlint/internal/theme"
)

// ValidateTheme validates a full theme using the default validator.
func ValidateTheme(preset theme.Preset) Results {
	return defaultValidator.ValidateTheme(preset)
}

// ValidateTheme runs the colour and typography validators and merges them.
// Colour findings come first; the score is the unweighted mean of both.
func (v *Validator) ValidateTheme(preset theme.Preset) Results {
	colours := v.ValidateColorScheme(preset.Colors)
	typography := v.ValidateTypography(preset.Typography)
	return merge(colours, typography)
}

func merge(colours, typography Results) Results {
	warnings := make([]Warning, 0, len(colours.Warnings)+len(typography.Warnings))
	warnings = append(warnings, colours.Warnings...)
	warnings = append(warnings, typography.Warnings...)

	recs := make([]string, 0, len(colours.Recommendations)+len(typography.Recommendations))
	recs = append(recs, colours.Recommendations...)
	recs = append(recs, typography.Recommendations...)

	validated := colours.LastValidated
	if typography.LastValidated.After(validated) {
		validated = typography.LastValidated
	}

	return Results{
		IsCompliant:     colours.IsCompliant && typography.IsCompliant,
		Score:           int(math.Round(float64(colours.Score+typography.Score) / 2)),
		ContrastRatios:  colours.ContrastRatios,
		Warnings:        warnings,
		Recommendations: recs,
		LastValidated:   validated,
	}
}
