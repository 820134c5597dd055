package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/config"
	"github.com/jmylchreest/brandlint/internal/theme"
)

// ErrNotCompliant is returned by validate --strict when the theme has a
// high-severity finding.
var ErrNotCompliant = errors.New("theme is not accessibility compliant")

type validateOptions struct {
	colours     []string
	fontFamily  string
	headingFont string
	fontSizes   []string
	format      string
	output      string
	preview     bool
	strict      bool
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [file|url]",
		Short: "Validate a theme's colours and typography",
		Long: `Validate a theme against WCAG contrast and readability rules.

The theme can be read from a JSON, YAML, CSS (custom properties) or
key=value text file, fetched from an HTTPS URL, or built entirely from
flags. Flags override values from the file.

Malformed colours and font sizes are reported as warnings rather than
errors, so the command always prints a complete report.

Examples:
  # Validate a theme file
  brandlint validate brand.yaml

  # Validate with colour swatches in the terminal
  brandlint validate --preview brand.yaml

  # Try a darker primary colour without editing the file
  brandlint validate --colour primary=#1d4ed8 brand.yaml

  # Build a theme from flags and fail the build if it is not compliant
  brandlint validate --strict \
    --colour text=#111827 --colour background=#ffffff \
    --font-family "Inter, sans-serif" --font-size base=1rem

  # Write a JSON report
  brandlint validate --format json --output report.json brand.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return a.runValidate(cmd, source, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.colours, "colour", "c", nil, "colour override as role=#RRGGBB (repeatable)")
	flags.StringVar(&opts.fontFamily, "font-family", "", "body font family")
	flags.StringVar(&opts.headingFont, "heading-font", "", "heading font family")
	flags.StringArrayVar(&opts.fontSizes, "font-size", nil, "font size as key=value, e.g. base=1rem (repeatable)")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format (text, json, yaml)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")
	flags.BoolVar(&opts.strict, "strict", false, "exit with an error when the theme is not compliant")
	flags.Bool("warn-informational", false, "also warn on failing secondary and accent pairs")
	a.bind(config.KeyWarnInformationalPairs, flags.Lookup("warn-informational"))

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, source string, opts *validateOptions) error {
	preset, err := a.loadTheme(cmd.Context(), source)
	if err != nil {
		return err
	}

	overrides, err := opts.overrides(cmd)
	if err != nil {
		return err
	}
	if err := theme.ApplyOverrides(preset, overrides); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}

	results := a.validator().ValidateTheme(*preset)
	a.logger.Debug("validated theme",
		"theme", preset.ID,
		"score", results.Score,
		"compliant", results.IsCompliant)

	var output string
	switch opts.format {
	case formatText, "":
		if opts.preview && !colour.SupportsANSIColours() && opts.output == "" {
			a.logger.Debug("stdout is not a terminal, previews may not render")
		}
		output = renderReport(preset, results, opts.preview)
		if opts.preview {
			output = renderSwatches(preset.Colors) + "\n" + output
		}
	default:
		output, err = marshal(results, opts.format)
		if err != nil {
			return err
		}
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, output); err != nil {
		return err
	}

	if opts.strict && !results.IsCompliant {
		counts := results.CountBySeverity()
		return fmt.Errorf("%w: score %d, %d high-severity warning(s)",
			ErrNotCompliant, results.Score, counts[accessibility.SeverityHigh])
	}
	return nil
}

// loadTheme reads the theme named by source. An empty source starts from a
// blank theme that flags fill in.
func (a *app) loadTheme(ctx context.Context, source string) (*theme.Preset, error) {
	switch {
	case source == "":
		return &theme.Preset{ID: "flags", Name: "Command line theme"}, nil
	case theme.IsURL(source):
		a.logger.Debug("fetching theme", "url", source)
		return theme.Fetch(ctx, source, 0)
	default:
		a.logger.Debug("loading theme", "path", source)
		preset, err := theme.Load(source)
		if err != nil {
			return nil, fmt.Errorf("failed to load theme: %w", err)
		}
		return preset, nil
	}
}

// overrides converts the flag values into theme key=value overrides.
func (o *validateOptions) overrides(cmd *cobra.Command) ([]string, error) {
	overrides := make([]string, 0, len(o.colours)+len(o.fontSizes)+2)
	overrides = append(overrides, o.colours...)

	if cmd.Flags().Changed("font-family") {
		overrides = append(overrides, "font-family="+o.fontFamily)
	}
	if cmd.Flags().Changed("heading-font") {
		overrides = append(overrides, "heading-font="+o.headingFont)
	}
	for _, size := range o.fontSizes {
		if !strings.Contains(size, "=") {
			return nil, fmt.Errorf("invalid font size '%s': expected 'key=value'", size)
		}
		overrides = append(overrides, "font-size."+size)
	}
	return overrides, nil
}
