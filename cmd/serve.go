package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jekabolt/grbpwr-pnl/app"
	"github.com/jekabolt/grbpwr-pnl/internal/form"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve archived reports over HTTP and refresh them on a timer",
		RunE:  serve,
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := (&form.Settings{Config: cfg}).ValidateServe(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application: %w", err)
	}

	logger := slog.Default()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		stopCtx, stopCancel := context.WithTimeout(ctx, 15*time.Second)
		defer stopCancel()
		a.Stop(stopCtx)
		logger.Info("application exited")
		return nil
	case <-a.Done():
		logger.Error("application exited")
		return fmt.Errorf("http server stopped")
	}
}
