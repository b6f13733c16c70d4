package game

import "time"

const (
	// StartRetries is how many failed starts abandon the games pass
	StartRetries = 3

	// RoundsPerToken is how many rounds are played before the bearer is refreshed
	RoundsPerToken = 25

	// RefreshAttempts bounds the token refresh before the pass is abandoned
	RefreshAttempts = 3

	// Simulated play duration and the pause after each round
	MinPlayDuration  = 30 * time.Second
	MaxPlayDuration  = 40 * time.Second
	MinRoundPause    = 1 * time.Second
	MaxRoundPause    = 5 * time.Second
	refreshRetryWait = 1 * time.Second
)

// Round results
const (
	resultPlayed   = "played"
	resultRejected = "rejected"
	resultNoStart  = "no_start"
)

// Log messages
const (
	LogMsgStarted        = "Game round started"
	LogMsgFinished       = "Game round finished"
	LogMsgCannotStart    = "Couldn't start game round, trying again"
	LogMsgGivingUp       = "No more start attempts, skipping games"
	LogMsgClaimRejected  = "Game claim rejected, stopping games"
	LogMsgClaimFailed    = "Game claim failed, stopping games"
	LogMsgRefreshing     = "Refreshing token to keep playing"
	LogMsgRefreshFailed  = "Couldn't refresh token"
	LogMsgRefreshAborted = "Token refresh exhausted, skipping games"
	LogMsgPassCompleted  = "Games pass completed"
)
