package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/BlumBot_Go/internal/config"
	"github.com/osse101/BlumBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs and installs slog with a
// MultiWriter for stdout and the new file.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	return SetupLoggerWithWriter(cfg, version, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with a replaceable console writer
func SetupLoggerWithWriter(cfg *config.Config, version string, console io.Writer) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// Make room for the new file
	cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version,
		cfg.Environment, cfg.Environment == logger.EnvironmentDev)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(console, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingBlumBot,
		"environment", cfg.Environment,
		"version", version,
		"accounts", len(cfg.Accounts))

	slog.Debug(LogMsgConfigurationLoaded,
		"tasks", cfg.Tasks,
		"play_games", cfg.PlayGames,
		"use_ref", cfg.UseReferral,
		"tribe_autojoin", cfg.TribeAutoJoin,
		"tribe_switch", cfg.TribeSwitch,
		"sleep", cfg.Sleep,
		"metrics_addr", cfg.MetricsAddr)

	return logFile, nil
}

// cleanupLogs removes the oldest log files until at most keep remain.
// File names embed a sortable timestamp so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
		}
	}
}
