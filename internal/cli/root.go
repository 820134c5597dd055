// Package cli provides the command-line interface for brandlint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/brandlint/internal/accessibility"
	"github.com/jmylchreest/brandlint/internal/colour"
	"github.com/jmylchreest/brandlint/internal/config"
	"github.com/jmylchreest/brandlint/internal/logging"
	"github.com/jmylchreest/brandlint/internal/version"
)

// app carries state shared by the commands of one root command.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  hclog.Logger
	cfgFile string
}

// NewRootCmd builds the brandlint command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		v:      config.NewViper(),
		logger: logging.Discard(),
	}

	rootCmd := &cobra.Command{
		Use:   "brandlint",
		Short: "Accessibility checks for brand themes",
		Long: `brandlint validates branding themes against WCAG accessibility rules.

It checks the contrast of every colour pair a themed UI relies on, flags
unreadable font sizes, suggests accessible replacement colours and scores
whole themes so they can be compared and badged in a preset catalog.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./brandlint.yaml or $XDG_CONFIG_HOME/brandlint/brandlint.yaml)")
	flags.String(config.KeyLogLevel, "info", "log level (trace, debug, info, warn, error, off)")
	flags.Bool(config.KeyLogJSON, false, "write logs as JSON")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.BoolP("quiet", "q", false, "suppress non-error output")
	flags.Bool("no-colour", false, "disable colour swatches and samples")
	a.bind(config.KeyLogLevel, flags.Lookup(config.KeyLogLevel))
	a.bind(config.KeyLogJSON, flags.Lookup(config.KeyLogJSON))

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newPresetsCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed(config.KeyLogLevel) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			a.v.Set(config.KeyLogLevel, "debug")
		} else if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			a.v.Set(config.KeyLogLevel, "error")
		}
	}

	if noColour, _ := cmd.Flags().GetBool("no-colour"); noColour {
		colour.DisableColourOutput = true
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		JSON:   cfg.LogJSON,
		Output: cmd.ErrOrStderr(),
		Colour: true,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	if a.v.ConfigFileUsed() != "" {
		a.logger.Debug("loaded config", "file", a.v.ConfigFileUsed())
	}
	return nil
}

// bind ties a flag to a config key. Binding only fails for a nil flag, which
// is a programming error.
func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// validator builds a validator from the resolved configuration.
func (a *app) validator() *accessibility.Validator {
	return accessibility.New(
		accessibility.WithOptions(accessibility.Options{
			WarnInformationalPairs: a.cfg.Validation.WarnInformationalPairs,
		}),
		accessibility.WithLogger(a.logger),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
