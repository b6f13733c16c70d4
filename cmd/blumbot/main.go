package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/BlumBot_Go/internal/config"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "blumbot",
	Short: "Farming, task and game automation for Blum accounts",
	Long: `blumbot keeps one or more Blum accounts busy: it farms, clears tasks,
plays drop games and collects daily and referral rewards on a randomized schedule.

Accounts are listed in ACCOUNTS_FILE; settings come from the environment
(optionally loaded from --env-file).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before the environment")
	rootCmd.AddCommand(runCmd, fingerprintCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
