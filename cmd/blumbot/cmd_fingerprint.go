package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/BlumBot_Go/internal/config"
	"github.com/osse101/BlumBot_Go/internal/fingerprint"
	"github.com/osse101/BlumBot_Go/internal/logger"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <session>",
	Short: "Print the browser identity of a session, creating it if absent",
	Args:  cobra.ExactArgs(1),
	RunE:  runFingerprint,
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	logger.InitLoggerWithWriter(logger.DefaultConfig(), cmd.ErrOrStderr())

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fp, err := fingerprint.NewStore(cfg.UserAgentsDir).Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(fp)
}
