package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandlint/internal/config"
	"github.com/jmylchreest/brandlint/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Long: `Serve the validators as a JSON HTTP API.

Routes:
  POST /api/v1/validate/theme
  POST /api/v1/validate/colors
  POST /api/v1/validate/typography
  GET  /api/v1/contrast?foreground=&background=&large=
  GET  /api/v1/suggest?current=&target=&large=
  POST /api/v1/presets/preview
  GET  /healthz
  GET  /version

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				Addr:           a.cfg.Server.Addr,
				ReadTimeout:    a.cfg.Server.ReadTimeout,
				WriteTimeout:   a.cfg.Server.WriteTimeout,
				AllowedOrigins: a.cfg.Server.AllowedOrigins,
				PresetWorkers:  a.cfg.Presets.Workers,
				Validator:      a.validator(),
				Logger:         a.logger,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String("addr", config.DefaultServerAddr, "listen address")
	a.bind(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
