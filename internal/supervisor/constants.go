package supervisor

import "time"

// ShutdownTimeout bounds the health server drain
const ShutdownTimeout = 10 * time.Second

// Log messages
const (
	LogMsgStarting       = "Starting accounts"
	LogMsgAccountStopped = "Account stopped"
	LogMsgAccountFailed  = "Account stopped on fatal error, other accounts keep running"
	LogMsgAllStopped     = "All accounts stopped"
)

// ErrMsgNoAccountsRunning is the readiness failure when every runner has ended
const ErrMsgNoAccountsRunning = "no accounts running"
