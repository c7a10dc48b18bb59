package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jekabolt/grbpwr-pnl/app"
	"github.com/jekabolt/grbpwr-pnl/config"
	"github.com/jekabolt/grbpwr-pnl/internal/form"
	"github.com/jekabolt/grbpwr-pnl/log"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	req := &form.GenerateRequest{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the report of one job, or of every job with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), req)
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Job, "job", "", "job name from the configuration")
	f.StringVar(&req.Period, "period", "", "report period, YYMM or YYYYMM")
	f.StringVar(&req.Mode, "mode", "", "month or ytd")
	f.StringSliceVar(&req.Inputs, "input", nil, "ledger file, repeatable; replaces the job inputs")
	f.StringVar(&req.Output, "output", "", "output path, may contain {job} and {period}")
	f.BoolVar(&req.All, "all", false, "run every configured job")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config: %w", err)
	}
	log.Setup(cfg.Logger)
	return cfg, nil
}

func generate(ctx context.Context, req *form.GenerateRequest) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req.Known = cfg.JobNames()
	if err := req.Validate(); err != nil {
		return err
	}
	cfg.Jobs = req.Select(cfg.Jobs)
	if err := (&form.Settings{Config: cfg}).Validate(); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	if err := a.Open(ctx); err != nil {
		return err
	}
	defer a.Close()
	return a.GenerateAll(ctx)
}
