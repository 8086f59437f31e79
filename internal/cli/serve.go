// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/metrics"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/server"
	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator over HTTP",
		Long: `Run the HTTP API under /api/morse with /health and /metrics until
interrupted, then shut down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Address = addr
			}

			srv := server.New(cfg, synth.New(a.cfg.Audio.Synth()), a.logger, metrics.New())
			if err := srv.Start(); err != nil {
				return err
			}
			cmd.Printf("Listening on %s\n", srv.Addr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			a.logger.Info("Shutdown signal received")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error stopping HTTP server", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	return cmd
}
