package domain

// FarmingState is the classification of an observed farming window
type FarmingState string

const (
	FarmingNoWindow FarmingState = "NO_WINDOW"
	FarmingActive   FarmingState = "FARMING"
	FarmingMature   FarmingState = "MATURE"
	FarmingUnknown  FarmingState = "UNKNOWN"
)

// FarmingWindow is a point-in-time snapshot of the balance endpoint.
// All times are seconds since epoch; the server reports milliseconds.
type FarmingWindow struct {
	Timestamp  int64
	StartTime  *int64
	EndTime    *int64
	PlayPasses int
}

// State classifies the window. A half-present or inverted window is UNKNOWN.
func (w FarmingWindow) State() FarmingState {
	switch {
	case w.StartTime == nil && w.EndTime == nil:
		return FarmingNoWindow
	case w.StartTime == nil || w.EndTime == nil:
		return FarmingUnknown
	case *w.StartTime > *w.EndTime:
		return FarmingUnknown
	case w.Timestamp >= *w.EndTime:
		return FarmingMature
	default:
		return FarmingActive
	}
}

// ClaimResult is returned by a farming claim
type ClaimResult struct {
	Timestamp        int64
	AvailableBalance string
}

// MillisToSeconds truncates a server millisecond timestamp
func MillisToSeconds(ms int64) int64 {
	return ms / 1000
}
