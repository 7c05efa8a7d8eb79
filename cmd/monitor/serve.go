package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"syncronic.com/empmonitor/config"
	"syncronic.com/empmonitor/monitor"
	"syncronic.com/empmonitor/monitor/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		app.Logger.Info("migration complete")
		return app.Close()
	},
}

// bootstrap loads the configuration and builds the application. monitor.New
// migrates the schema as part of start-up.
func bootstrap(ctx context.Context) (*monitor.App, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := monitor.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	app, err := monitor.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialise application", zap.Error(err))
		_ = logger.Sync()
		return nil, nil, err
	}
	return app, cfg, nil
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cfg, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: web.NewRouter(app),
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("server listening", zap.String("addr", cfg.Listen))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
