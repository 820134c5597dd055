package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandlint/internal/colour"
)

// contrastResult is the machine-readable output of the contrast command.
type contrastResult struct {
	Foreground string       `json:"foreground" yaml:"foreground"`
	Background string       `json:"background" yaml:"background"`
	LargeText  bool         `json:"largeText" yaml:"largeText"`
	Ratio      float64      `json:"ratio" yaml:"ratio"`
	Level      colour.Level `json:"level" yaml:"level"`
	Compliant  bool         `json:"compliant" yaml:"compliant"`
}

func newContrastCmd() *cobra.Command {
	var (
		largeText bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Show the WCAG contrast ratio of two colours",
		Long: `Show the WCAG 2 contrast ratio of two #RRGGBB colours and the
conformance level it reaches.

Examples:
  brandlint contrast "#777777" "#ffffff"
  brandlint contrast --large "#777777" "#ffffff"
  brandlint contrast --format json "#000000" "#ffffff"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg := args[0], args[1]
			ratio, err := colour.ContrastRatio(fg, bg)
			if err != nil {
				return err
			}
			compliance := colour.WCAGCompliance(ratio, largeText)

			if format != formatText {
				out, err := marshal(contrastResult{
					Foreground: fg,
					Background: bg,
					LargeText:  largeText,
					Ratio:      ratio,
					Level:      compliance.Level,
					Compliant:  compliance.Compliant,
				}, format)
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), "", out)
			}

			return writeOutput(cmd.OutOrStdout(), "", renderContrast(fg, bg, ratio, compliance, largeText))
		},
	}

	cmd.Flags().BoolVar(&largeText, "large", false, "use large-text thresholds (18pt, or 14pt bold)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")

	return cmd
}

func renderContrast(fg, bg string, ratio float64, compliance colour.Compliance, largeText bool) string {
	var b strings.Builder

	size := "normal text"
	if largeText {
		size = "large text"
	}

	level := passStyle.Render(string(compliance.Level))
	if !compliance.Compliant {
		level = failStyle.Render(string(compliance.Level))
	}

	fmt.Fprintf(&b, "%s %s on %s\n", headingStyle.Render("Colours: "), fg, bg)
	fmt.Fprintf(&b, "%s %s\n", headingStyle.Render("Contrast:"), colour.FormatRatio(ratio))
	fmt.Fprintf(&b, "%s %s (%s)\n", headingStyle.Render("Level:   "), level, size)
	fmt.Fprintf(&b, "%s AA %s, AAA %s\n", headingStyle.Render("Required:"),
		colour.FormatRatio(colour.MinimumRatio(colour.LevelAA, largeText)),
		colour.FormatRatio(colour.MinimumRatio(colour.LevelAAA, largeText)))

	if colour.SupportsANSIColours() {
		f, _ := colour.ParseHex(fg)
		g, _ := colour.ParseHex(bg)
		fmt.Fprintf(&b, "%s %s\n", headingStyle.Render("Sample:  "), colour.ColourPreviewWithText(f, g, "The quick brown fox", 24))
	}
	return b.String()
}
