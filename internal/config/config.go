// Package config loads the bot settings from the environment and the accounts file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// Range is an inclusive [Min, Max] pair
type Range struct {
	Min int `validate:"gte=0"`
	Max int `validate:"gtefield=Min"`
}

// Config holds the application configuration
type Config struct {
	UseStartupDelay bool
	StartupDelay    Range

	Tasks     bool
	PlayGames bool
	Points    Range

	UseReferral bool
	RefID       string `validate:"required_if=UseReferral true"`

	Sleep Range

	TribeAutoJoin   bool
	TribeSwitch     bool
	LoginRetryLimit int           `validate:"gte=1"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	RequireProxy    bool

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string

	MetricsAddr   string
	AccountsFile  string `validate:"required"`
	SessionsDir   string `validate:"required"`
	UserAgentsDir string `validate:"required"`
	APIBaseURL    string `validate:"omitempty,url"`

	Accounts []Account `validate:"required,min=1,dive"`
}

// Load reads envFile (when present), then the environment, then the accounts file
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	accounts, err := LoadAccounts(cfg.AccountsFile)
	if err != nil {
		return nil, err
	}
	cfg.Accounts = accounts

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds the settings from environment variables alone
func FromEnv() (*Config, error) {
	cfg := &Config{
		UseStartupDelay: getEnvAsBool(EnvUseStartupDelay, false),
		Tasks:           getEnvAsBool(EnvTasks, false),
		PlayGames:       getEnvAsBool(EnvPlayGames, false),
		UseReferral:     getEnvAsBool(EnvUseReferral, false),
		RefID:           getEnv(EnvRefID, DefaultRefID),
		TribeAutoJoin:   getEnvAsBool(EnvTribeAutoJoin, false),
		TribeSwitch:     getEnvAsBool(EnvTribeSwitch, false),
		LoginRetryLimit: getEnvAsInt(EnvLoginRetryLimit, DefaultLoginRetryLimit),
		RequestTimeout:  getEnvAsDuration(EnvRequestTimeout, DefaultRequestTimeout),
		RequireProxy:    getEnvAsBool(EnvRequireProxy, false),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:          getEnv(EnvLogDir, DefaultLogDir),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		MetricsAddr:     getEnv(EnvMetricsAddr, ""),
		AccountsFile:    getEnv(EnvAccountsFile, DefaultAccountsFile),
		SessionsDir:     getEnv(EnvSessionsDir, DefaultSessionsDir),
		UserAgentsDir:   getEnv(EnvUserAgentsDir, DefaultUserAgentsDir),
		APIBaseURL:      getEnv(EnvAPIBaseURL, ""),
	}

	var err error
	if cfg.StartupDelay, err = getEnvAsRange(EnvStartupDelay, Range{DefaultStartupDelayMin, DefaultStartupDelayMax}); err != nil {
		return nil, err
	}
	if cfg.Points, err = getEnvAsRange(EnvPoints, Range{DefaultPointsMin, DefaultPointsMax}); err != nil {
		return nil, err
	}
	if cfg.Sleep, err = getEnvAsRange(EnvSleepTime, Range{DefaultSleepMin, DefaultSleepMax}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default for unset or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts the strconv.ParseBool spellings
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsRange reads "a,b" or "[a, b]". A malformed value is an error.
func getEnvAsRange(key string, defaultValue Range) (Range, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	r, err := ParseRange(raw)
	if err != nil {
		return Range{}, fmt.Errorf("%s: %w", key, err)
	}
	return r, nil
}

// ParseRange parses "a,b" or "[a, b]"
func ParseRange(raw string) (Range, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, raw)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, raw)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, raw)
	}
	return Range{Min: lo, Max: hi}, nil
}
