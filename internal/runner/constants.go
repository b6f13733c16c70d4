package runner

import "time"

const (
	// Pause between the stages of one cycle
	MinStepPause = 1 * time.Second
	MaxStepPause = 3 * time.Second

	// Pause after the side rewards, closing the cycle
	MinSocialPause = 15 * time.Second
	MaxSocialPause = 60 * time.Second

	fallbackUsernameLetters = 8
)

// Log messages
const (
	LogMsgStartupDelay   = "Account goes live after delay"
	LogMsgStarted        = "Account runner started"
	LogMsgLoggedIn       = "Logged in successfully"
	LogMsgCycleStarted   = "Cycle started"
	LogMsgCycleCompleted = "Cycle completed"
	LogMsgCycleFailed    = "Cycle failed, backing off"
	LogMsgUnauthorized   = "Credentials rejected, logging in again next cycle"
	LogMsgFatal          = "Invalid session, manual intervention required"
	LogMsgSleeping       = "Sleeping before next cycle"
	LogMsgStageSkipped   = "Stage failed, continuing cycle"
	LogMsgTasksDisabled  = "Task automation disabled"
	LogMsgStopped        = "Account runner stopped"
)

// Stage names for logs
const (
	stageTasks  = "tasks"
	stageGames  = "games"
	stageSocial = "social"
)
