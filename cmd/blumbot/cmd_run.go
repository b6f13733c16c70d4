package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/BlumBot_Go/internal/bootstrap"
	"github.com/osse101/BlumBot_Go/internal/config"
	"github.com/osse101/BlumBot_Go/internal/supervisor"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every configured account until interrupted",
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, Version)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sup, err := supervisor.New(cfg, supervisor.Deps{})
	if err != nil {
		slog.Error("Failed to create supervisor", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sup.Run(ctx); err != nil {
		slog.Error("Supervisor failed", "error", err)
		return err
	}
	return nil
}
