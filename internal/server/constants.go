package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Health server starting"
	LogMsgServerStopped    = "Health server stopped"
	LogMsgRequestCompleted = "Request completed"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Health response statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths served by the health server
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathMetrics = "/metrics"
)

// Timeouts
const (
	readHeaderTimeout = 5 * time.Second
	readinessTimeout  = 2 * time.Second
)
