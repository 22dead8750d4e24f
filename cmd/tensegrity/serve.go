package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kibbyd/tensegrity/internal/config"
	"github.com/kibbyd/tensegrity/internal/httpapi"
	"github.com/kibbyd/tensegrity/internal/logging"
	"github.com/kibbyd/tensegrity/internal/session"
)

// #region serve

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diamond over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &httpapi.Server{
			Ctrl:    session.NewController(logger.Named("session"), nil),
			Logger:  logger.Named("http"),
			Addr:    cfg.Listen,
			Origins: cfg.CORSOrigins,
		}
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		logger.Info("shutdown complete", zap.String("addr", cfg.Listen))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// #endregion serve
