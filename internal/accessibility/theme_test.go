package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/brandlint/internal/theme"
)

func TestValidateThemeMergesResults(t *testing.T) {
	preset := theme.Preset{
		ID: "brand",
		Colors: uniformScheme("#888888", map[theme.Role]string{
			theme.RoleText:       "#000000",
			theme.RoleBackground: "#ffffff",
		}),
		Typography: theme.TypographyConfig{
			FontFamily: "Inter, sans-serif",
			FontSizes:  map[string]string{"base": "0.5rem"},
		},
	}

	v := newTestValidator()
	colours := v.ValidateColorScheme(preset.Colors)
	typography := v.ValidateTypography(preset.Typography)
	results := v.ValidateTheme(preset)

	// round((63 + 80) / 2)
	assert.Equal(t, 72, results.Score)
	assert.False(t, results.IsCompliant)
	assert.Equal(t, colours.ContrastRatios, results.ContrastRatios)
	assert.Equal(t, append(colours.Warnings, typography.Warnings...), results.Warnings)
	assert.Equal(t, append(colours.Recommendations, typography.Recommendations...), results.Recommendations)
	assert.Equal(t, fixedTime, results.LastValidated)
}

func TestValidateThemeCompliantNeedsBoth(t *testing.T) {
	preset := theme.Preset{
		Colors: uniformScheme("#888888", map[theme.Role]string{
			theme.RoleText:       "#000000",
			theme.RoleBackground: "#ffffff",
		}),
		Typography: theme.TypographyConfig{FontFamily: "Inter"},
	}

	results := ValidateTheme(preset)

	assert.True(t, results.IsCompliant)
	// round((63 + 100) / 2)
	assert.Equal(t, 82, results.Score)
}

func TestMergeKeepsLatestTimestamp(t *testing.T) {
	later := fixedTime.Add(1)
	merged := merge(Results{LastValidated: fixedTime}, Results{LastValidated: later})
	assert.Equal(t, later, merged.LastValidated)
}
