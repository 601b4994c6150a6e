// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/goblinsim/config"
	"github.com/ava-labs/goblinsim/simulation"
	"github.com/ava-labs/goblinsim/utils/logging"
)

func runFunc(cmd *cobra.Command, _ []string) error {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging, config.DisplayFile)
	defer log.Stop()
	defer log.StopOnPanic()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, log, cfg, cmd.OutOrStdout())
}

func run(ctx context.Context, log logging.Logger, cfg config.Config, out io.Writer) error {
	options := cfg.Simulation
	log.Info("launching simulation",
		zap.Int("maxSteps", options.MaxSteps),
		zap.Int64("initialGold", options.InitialGold),
		zap.Stringer("incomeStrategy", options.IncomeStrategy),
		zap.Stringer("deathStrategy", options.DeathStrategy),
		zap.Float64("pIncome", options.PIncome),
		zap.Float64("pBirth", options.PBirth),
		zap.Float64("pDeath", options.PDeath),
		zap.Uint64("seed", options.Seed),
	)

	model, err := simulation.New(log, prometheus.NewRegistry(), options)
	if err != nil {
		return err
	}
	if err := model.Run(ctx, options.MaxSteps); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report := model.Finish()
	if cfg.HistogramFile != "" {
		if err := writeHistogram(cfg.HistogramFile, report); err != nil {
			return err
		}
		log.Info("wrote histogram",
			zap.String("path", cfg.HistogramFile),
		)
	}

	printReport := report.Print
	if cfg.Verbose {
		printReport = report.PrintVerbose
	}
	if _, err := fmt.Fprintln(out, "---"); err != nil {
		return err
	}
	if err := printReport(out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "---\nDuration: %d ms.\n", report.Duration.Milliseconds())
	return err
}

func writeHistogram(path string, report *simulation.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create histogram file: %w", err)
	}
	if err := report.WriteHistogram(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write histogram file: %w", err)
	}
	return f.Close()
}
