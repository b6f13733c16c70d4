package backoff

// Delay windows in seconds, inclusive
const (
	ConnectMinSeconds      = 1800
	ConnectMaxSeconds      = 3600
	DisconnectedMinSeconds = 900
	DisconnectedMaxSeconds = 1800
	StatusMinSeconds       = 3600
	StatusMaxSeconds       = 7200
	ClientMinSeconds       = 3600
	ClientMaxSeconds       = 7200
	TimeoutMinSeconds      = 7200
	TimeoutMaxSeconds      = 14400
	DecodeMinSeconds       = 1800
	DecodeMaxSeconds       = 3600
	ShapeMinSeconds        = 1800
	ShapeMaxSeconds        = 3600
	UnknownMinSeconds      = 7200
	UnknownMaxSeconds      = 14400
)
