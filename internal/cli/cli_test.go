package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
)

// run executes the root command in an isolated directory and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "theme", "testdata", name))
	require.NoError(t, err)
	return path
}

// greyThemeArgs builds a theme from flags: black text on white with every
// other role #888888.
func greyThemeArgs(extra ...string) []string {
	args := []string{"validate", "--font-family", "Inter, sans-serif", "--font-size", "base=1rem"}
	for _, role := range []string{"primary", "secondary", "accent", "surface", "success", "warning", "error"} {
		args = append(args, "--colour", role+"=#888888")
	}
	args = append(args, "--colour", "text=#000000", "--colour", "background=#ffffff")
	return append(args, extra...)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "brandlint version")
}

func TestValidateFromFlags(t *testing.T) {
	out, err := run(t, greyThemeArgs()...)
	require.NoError(t, err)

	assert.Contains(t, out, "Command line theme (flags)")
	assert.Contains(t, out, "compliant")
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "AAA")
	assert.Contains(t, out, "text-background")
	assert.Contains(t, out, "21.00:1")
	assert.Contains(t, out, "[MEDIUM] contrast primary-background")
	assert.Contains(t, out, "-> Try primary #1a1a1a")
}

func TestValidateJSON(t *testing.T) {
	out, err := run(t, greyThemeArgs("--format", "json")...)
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.True(t, results.IsCompliant)
	assert.Equal(t, 82, results.Score)
	assert.Len(t, results.Warnings, 1)
}

func TestValidateYAMLToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")

	out, err := run(t, greyThemeArgs("--format", "yaml", "--output", path)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, 82, report["score"])
}

func TestValidateWarnInformational(t *testing.T) {
	out, err := run(t, greyThemeArgs("--format", "json", "--warn-informational")...)
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results.Warnings, 3)
}

func TestValidateStrict(t *testing.T) {
	_, err := run(t, greyThemeArgs("--strict")...)
	require.NoError(t, err)

	out, err := run(t, greyThemeArgs("--strict", "--font-size", "base=0.5rem")...)
	require.ErrorIs(t, err, ErrNotCompliant)
	assert.Contains(t, err.Error(), "score 72")
	// The report is still written before failing.
	assert.Contains(t, out, "not compliant")
}

func TestValidateFile(t *testing.T) {
	out, err := run(t, "validate", "--format", "json", testdata(t, "brand.theme"))
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.False(t, results.IsCompliant)
	assert.True(t, results.HasSeverity(accessibility.SeverityHigh))
}

func TestValidateFileWithOverride(t *testing.T) {
	out, err := run(t, "validate", "--format", "json", "--font-size", "base=1rem", testdata(t, "brand.theme"))
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	for _, w := range results.Warnings {
		assert.NotEqual(t, "fontSizes.base", w.Element)
	}
}

func TestValidatePreview(t *testing.T) {
	out, err := run(t, greyThemeArgs("--preview")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Colours")
	assert.Contains(t, out, "SAMPLE")
	assert.Contains(t, out, "\033[48;2;255;255;255m")
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"validate", "does-not-exist.json"}, "failed to load theme"},
		{"unknown role", []string{"validate", "--colour", "link=#0000ff"}, "unknown colour role"},
		{"bad font size", []string{"validate", "--font-size", "base"}, "expected 'key=value'"},
		{"bad format", []string{"validate", "--format", "xml"}, "unsupported format"},
		{"private url", []string{"validate", "https://127.0.0.1/theme.json"}, ""},
		{"too many args", []string{"validate", "a.json", "b.json"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestContrastCommand(t *testing.T) {
	out, err := run(t, "contrast", "#777777", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "4.48:1")
	assert.Contains(t, out, "FAIL (normal text)")
	assert.Contains(t, out, "AA 4.50:1, AAA 7.00:1")

	out, err = run(t, "contrast", "--large", "#777777", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "AA (large text)")
}

func TestContrastCommandJSON(t *testing.T) {
	out, err := run(t, "contrast", "--format", "json", "#000000", "#ffffff")
	require.NoError(t, err)

	var result contrastResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 21.0, result.Ratio, 0.01)
	assert.Equal(t, colour.LevelAAA, result.Level)
	assert.True(t, result.Compliant)
}

func TestContrastCommandInvalidColour(t *testing.T) {
	_, err := run(t, "contrast", "#fff", "#000000")
	require.ErrorIs(t, err, colour.ErrInvalidColour)
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "suggest", "#777777", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "#777777 on #ffffff is 4.48:1")
	assert.Contains(t, out, "DELTA E")
	assert.Contains(t, out, "#1a1a1a")

	out, err = run(t, "suggest", "#000000", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "already meets AA")

	out, err = run(t, "suggest", "#777777", "#808080")
	require.NoError(t, err)
	assert.Contains(t, out, "adjust #808080 instead")
}

func TestSuggestCommandJSON(t *testing.T) {
	out, err := run(t, "suggest", "--format", "json", "#777777", "#ffffff")
	require.NoError(t, err)

	var result suggestResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.AlreadyPasses)
	require.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Suggestions), colour.MaxSuggestions)
	for _, s := range result.Suggestions {
		assert.GreaterOrEqual(t, s.Ratio, colour.MinRatioAANormal)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets", "--workers", "2", testdata(t, "catalog.yaml"))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "BADGE")
	assert.Contains(t, lines[2], "light")
	assert.Contains(t, lines[2], "AAA")
	assert.Contains(t, lines[3], "Washed out")
	assert.Contains(t, lines[3], "Partial")
	assert.Contains(t, out, "2 preset(s)")
}

func TestPresetsCommandJSON(t *testing.T) {
	out, err := run(t, "presets", "--format", "json", testdata(t, "catalog.yaml"))
	require.NoError(t, err)

	var previews []accessibility.PresetPreview
	require.NoError(t, json.Unmarshal([]byte(out), &previews))
	require.Len(t, previews, 2)
	assert.Equal(t, "preset-2", previews[1].ID)
}

func TestPresetsCommandRejectsTextCatalog(t *testing.T) {
	_, err := run(t, "presets", testdata(t, "brand.theme"))
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "chatty", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brandlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validation:\n  warn-informational-pairs: true\n"), 0o600))

	out, err := run(t, greyThemeArgs("--config", path, "--format", "json")...)
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results.Warnings, 3)
}

func TestValidateCSSTokens(t *testing.T) {
	out, err := run(t, "validate", "--format", "json", testdata(t, "brand.css"))
	require.NoError(t, err)

	var results accessibility.Results
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.InDelta(t, 21.0, results.ContrastRatios[accessibility.PairTextBackground], 0.01)

	// --color-warning refers to another variable and is reported, not resolved.
	found := false
	for _, w := range results.Warnings {
		if w.Element == "warning" && w.Type == accessibility.WarningColor {
			found = true
		}
	}
	assert.True(t, found)
}
