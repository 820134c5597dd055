package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandlint/internal/colour"
)

// suggestResult is the machine-readable output of the suggest command.
type suggestResult struct {
	Current       string              `json:"current" yaml:"current"`
	Target        string              `json:"target" yaml:"target"`
	LargeText     bool                `json:"largeText" yaml:"largeText"`
	AlreadyPasses bool                `json:"alreadyPasses" yaml:"alreadyPasses"`
	Suggestions   []colour.Suggestion `json:"suggestions" yaml:"suggestions"`
}

func newSuggestCmd() *cobra.Command {
	var (
		largeText bool
		format    string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <current> <target>",
		Short: "Suggest accessible replacements for a colour",
		Long: `Suggest replacements for a colour that reach WCAG AA contrast against
a target colour. The hue and saturation of the current colour are kept
and its lightness is varied, so suggestions stay close to the brand.

Each suggestion is listed with its contrast ratio and its perceptual
distance (CIEDE2000) from the current colour.

Examples:
  brandlint suggest "#777777" "#ffffff"
  brandlint suggest --large --preview "#3b82f6" "#ffffff"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, target := args[0], args[1]

			suggestions, err := colour.SuggestAccessibleColours(current, target, largeText)
			if err != nil {
				return err
			}
			ratio, err := colour.ContrastRatio(current, target)
			if err != nil {
				return err
			}

			result := suggestResult{
				Current:       current,
				Target:        target,
				LargeText:     largeText,
				AlreadyPasses: ratio >= colour.MinimumRatio(colour.LevelAA, largeText),
				Suggestions:   colour.RankSuggestions(current, target, suggestions, largeText),
			}

			if format != formatText {
				out, err := marshal(result, format)
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), "", out)
			}
			return writeOutput(cmd.OutOrStdout(), "", renderSuggestions(result, ratio, preview))
		},
	}

	cmd.Flags().BoolVar(&largeText, "large", false, "use large-text thresholds")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}

func renderSuggestions(result suggestResult, ratio float64, preview bool) string {
	required := colour.FormatRatio(colour.MinimumRatio(colour.LevelAA, result.LargeText))

	if result.AlreadyPasses {
		return fmt.Sprintf("%s already meets AA against %s (%s, required %s)\n",
			result.Current, result.Target, colour.FormatRatio(ratio), required)
	}
	if len(result.Suggestions) == 0 {
		return fmt.Sprintf("No lightness of %s reaches %s against %s; adjust %s instead\n",
			result.Current, required, result.Target, result.Target)
	}

	headers := []string{"HEX", "RATIO", "LEVEL", "DELTA E"}
	if preview {
		headers = append(headers, "SAMPLE")
	}
	table := NewTable(headers)

	target, _ := colour.ParseHex(result.Target)
	for _, s := range result.Suggestions {
		row := []string{s.Hex, colour.FormatRatio(s.Ratio), string(s.Level), fmt.Sprintf("%.1f", s.DeltaE)}
		if preview {
			rgb, _ := colour.ParseHex(s.Hex)
			row = append(row, colour.ColourPreviewWithText(rgb, target, "Aa", swatchWidth))
		}
		table.AddRow(row)
	}

	return fmt.Sprintf("%s on %s is %s (required %s). Suggestions:\n\n%s",
		result.Current, result.Target, colour.FormatRatio(ratio), required, table.Render())
}
