package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/config"
	"github.com/jmylchreest/brandlint/internal/theme"
)

const maxNameWidth = 30

func newPresetsCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "presets <catalog>",
		Short: "Badge every preset in a theme catalog",
		Long: `Validate every preset in a JSON or YAML catalog and label each with
a compliance badge:

  AAA      compliant, text on background reaches 7:1
  AA       compliant, text on background reaches 4.5:1
  Partial  not compliant, score of 50 or more
  Fail     not compliant, score below 50

Presets are validated concurrently; --workers bounds the concurrency.

Examples:
  brandlint presets catalog.yaml
  brandlint presets --workers 8 --format json catalog.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := theme.LoadPresets(args[0])
			if err != nil {
				return fmt.Errorf("failed to load presets: %w", err)
			}

			previews, err := a.validator().PreviewPresets(cmd.Context(), presets, a.cfg.Presets.Workers)
			if err != nil {
				return err
			}

			var out string
			if format == formatText || format == "" {
				out = renderPresetTable(previews)
			} else if out, err = marshal(previews, format); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, out)
		},
	}

	flags := cmd.Flags()
	flags.Int("workers", config.DefaultPresetWorkers, "number of presets validated concurrently")
	flags.StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	flags.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	a.bind(config.KeyPresetWorkers, flags.Lookup("workers"))

	return cmd
}

func renderPresetTable(previews []accessibility.PresetPreview) string {
	table := NewTable([]string{"ID", "NAME", "BADGE", "SCORE", "HIGH", "MEDIUM", "LOW"})
	table.SetColumnMaxWidth(1, maxNameWidth)
	for col := 3; col <= 6; col++ {
		table.SetRightAligned(col)
	}

	for _, p := range previews {
		counts := p.Results.CountBySeverity()
		table.AddRow([]string{
			p.ID,
			p.Name,
			string(p.Badge),
			fmt.Sprintf("%d", p.Results.Score),
			fmt.Sprintf("%d", counts[accessibility.SeverityHigh]),
			fmt.Sprintf("%d", counts[accessibility.SeverityMedium]),
			fmt.Sprintf("%d", counts[accessibility.SeverityLow]),
		})
	}

	var b strings.Builder
	b.WriteString(table.Render())
	fmt.Fprintf(&b, "\n%d preset(s)\n", len(previews))
	return b.String()
}
