package tasks

import "time"

const (
	// CallPacing is the pause after each start/claim/validate call
	CallPacing = 500 * time.Millisecond

	// SettleDelay is the pause between the start pass and the refetch
	SettleDelay = 5 * time.Second
)

// Task action labels
const (
	actionStart    = "start"
	actionClaim    = "claim"
	actionValidate = "validate"
)

// Log messages
const (
	LogMsgStarting      = "Starting task"
	LogMsgClaimed       = "Task claimed"
	LogMsgVerified      = "Task verified"
	LogMsgNotFinished   = "Task claim not finished"
	LogMsgNoKeyword     = "No keyword known for task, skipping"
	LogMsgTaskFailed    = "Task call failed, skipping"
	LogMsgFetchFailed   = "Failed to fetch tasks, skipping pass"
	LogMsgPassCompleted = "Task pass completed"
)
