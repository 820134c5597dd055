package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)

	severityStyles = map[accessibility.Severity]lipgloss.Style{
		accessibility.SeverityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		accessibility.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		accessibility.SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

const swatchWidth = 6

// renderReport formats validation results for the terminal. When preview is
// set each contrast row gets a sample of the pair as it would render.
func renderReport(preset *theme.Preset, results accessibility.Results, preview bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%s)\n", headingStyle.Render("Theme:"), preset.DisplayName(), preset.ID)

	status := passStyle.Render("compliant")
	if !results.IsCompliant {
		status = failStyle.Render("not compliant")
	}
	fmt.Fprintf(&b, "%s %s  %s %d/100  %s %s\n\n",
		headingStyle.Render("Status:"), status,
		headingStyle.Render("Score:"), results.Score,
		headingStyle.Render("Badge:"), accessibility.BadgeFor(results))

	if len(results.ContrastRatios) > 0 {
		b.WriteString(headingStyle.Render("Contrast") + "\n")
		b.WriteString(indent(contrastTable(preset.Colors, results, preview)))
		b.WriteString("\n")
	}

	if len(results.Warnings) > 0 {
		b.WriteString(headingStyle.Render(fmt.Sprintf("Warnings (%d)", len(results.Warnings))) + "\n")
		for _, w := range results.Warnings {
			label := severityStyles[w.Severity].Render("[" + strings.ToUpper(string(w.Severity)) + "]")
			fmt.Fprintf(&b, "  %s %s %s: %s\n", label, w.Type, w.Element, w.Message)
			if w.Suggestion != "" {
				fmt.Fprintf(&b, "         %s\n", hintStyle.Render("-> "+w.Suggestion))
			}
		}
		b.WriteString("\n")
	}

	if len(results.Recommendations) > 0 {
		b.WriteString(headingStyle.Render("Recommendations") + "\n")
		for _, r := range results.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}

	return b.String()
}

func contrastTable(scheme theme.ColorScheme, results accessibility.Results, preview bool) string {
	headers := []string{"PAIR", "RATIO", "AA", "LEVEL"}
	if preview {
		headers = append(headers, "SAMPLE")
	}
	table := NewTable(headers)
	table.SetRightAligned(1)

	for _, label := range accessibility.PairLabels() {
		ratio, ok := results.ContrastRatios[label]
		if !ok {
			continue
		}
		pass := "fail"
		if ratio >= accessibility.ScorePassRatio {
			pass = "pass"
		}
		row := []string{label, colour.FormatRatio(ratio), pass, string(colour.WCAGCompliance(ratio, false).Level)}
		if preview {
			row = append(row, pairSample(scheme, label))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// pairSample renders "Aa" in the pair's foreground on its background.
func pairSample(scheme theme.ColorScheme, label string) string {
	fgRole, bgRole, ok := accessibility.PairRoles(label)
	if !ok {
		return ""
	}
	fg, err := colour.ParseHex(scheme.Get(fgRole))
	if err != nil {
		return ""
	}
	bg, err := colour.ParseHex(scheme.Get(bgRole))
	if err != nil {
		return ""
	}
	return colour.ColourPreviewWithText(fg, bg, "Aa", swatchWidth)
}

// renderSwatches lists each role with a colour block.
func renderSwatches(scheme theme.ColorScheme) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Colours") + "\n")
	for _, role := range theme.Roles {
		value := scheme.Get(role)
		rgb, err := colour.ParseHex(value)
		if err != nil {
			fmt.Fprintf(&b, "  %s  %-20s %s\n", strings.Repeat("?", swatchWidth), role, failStyle.Render(fmt.Sprintf("invalid (%q)", value)))
			continue
		}
		b.WriteString("  " + colour.FormatColourWithLabel(rgb, string(role), swatchWidth) + "\n")
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
