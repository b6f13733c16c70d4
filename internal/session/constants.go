package session

import "time"

const (
	// DefaultLoginRetryLimit bounds relogin attempts on the transient 520 status
	DefaultLoginRetryLimit = 10

	// MaxUsernameAttempts bounds the username-suffix ladder before plain login
	MaxUsernameAttempts = 20

	// MaxRegisterAttempts bounds retries of a registration rejected for other reasons
	MaxRegisterAttempts = 5

	// ReloginDelay is the fixed pause before retrying a 520 answer
	ReloginDelay = 3 * time.Second

	// UsernamePause is the pause between registration attempts with a new suffix
	UsernamePause = time.Second

	minSuffixLetters = 3
	maxSuffixLetters = 8
)

// Log messages
const (
	LogMsgRelogin          = "Login temporarily unavailable, retrying"
	LogMsgLoggedIn         = "Logged in"
	LogMsgRegistered       = "Registered with referral"
	LogMsgUsernameTaken    = "Username taken, retrying registration with a new name"
	LogMsgAlreadyConnected = "Account already registered, falling back to plain login"
	LogMsgLadderExhausted  = "Username attempts exhausted, falling back to plain login"
	LogMsgRegisterRejected = "Registration rejected, falling back to plain login"
	LogMsgRegisterRetry    = "Registration rejected, retrying"
	LogMsgMissingToken     = "Login response has no token, retrying"
	LogMsgTokenRefreshed   = "Token refreshed"
)
