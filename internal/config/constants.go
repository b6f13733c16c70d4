package config

import "time"

// Environment keys
const (
	EnvUseStartupDelay = "USE_RANDOM_DELAY_IN_RUN"
	EnvStartupDelay    = "RANDOM_DELAY_IN_RUN"
	EnvTasks           = "TASKS"
	EnvPlayGames       = "PLAY_GAMES"
	EnvPoints          = "POINTS"
	EnvUseReferral     = "USE_REF"
	EnvRefID           = "REF_ID"
	EnvSleepTime       = "SLEEP_TIME"
	EnvTribeAutoJoin   = "TRIBE_AUTOJOIN"
	EnvTribeSwitch     = "TRIBE_SWITCH"
	EnvLoginRetryLimit = "LOGIN_RETRY_LIMIT"
	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvRequireProxy    = "REQUIRE_PROXY"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvMetricsAddr     = "METRICS_ADDR"
	EnvAccountsFile    = "ACCOUNTS_FILE"
	EnvSessionsDir     = "SESSIONS_DIR"
	EnvUserAgentsDir   = "USER_AGENTS_DIR"
	EnvAPIBaseURL      = "API_BASE_URL"
)

// Defaults
const (
	DefaultStartupDelayMin = 5
	DefaultStartupDelayMax = 49930
	DefaultPointsMin       = 190
	DefaultPointsMax       = 230
	DefaultRefID           = "ref_QmiirCtfhH"
	DefaultSleepMin        = 28000
	DefaultSleepMax        = 41000
	DefaultLoginRetryLimit = 10
	DefaultRequestTimeout  = 60 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultAccountsFile    = "accounts.yaml"
	DefaultSessionsDir     = "sessions"
	DefaultUserAgentsDir   = "user_agents"
	DefaultEnvFile         = ".env"
)
