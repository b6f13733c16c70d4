package social

import "time"

// tribeChatnames are the tribes joined at random when auto-join is enabled
var tribeChatnames = []string{
	"tonstationgames",
	"freecryptoj",
	"cryptoladesov",
	"blumvnd",
	"invest_zonaa",
	"cryptancichat",
}

const (
	// Pause between leaving a tribe and joining another
	MinRejoinPause = 10 * time.Second
	MaxRejoinPause = 45 * time.Second
)

// Log messages
const (
	LogMsgBalance          = "Balance"
	LogMsgWalletFailed     = "Failed to read wallet balance"
	LogMsgDailyClaimed     = "Claimed daily reward"
	LogMsgDailyUnavailable = "Daily reward not available"
	LogMsgDailyFailed      = "Failed to claim daily reward"
	LogMsgFriendsClaimed   = "Claimed friends reward"
	LogMsgFriendsFailed    = "Failed to claim friends reward"
	LogMsgTribe            = "Current tribe"
	LogMsgNoTribe          = "Not in a tribe"
	LogMsgTribeFailed      = "Failed to manage tribe"
	LogMsgTribeJoined      = "Joined tribe"
	LogMsgTribeJoinFailed  = "Failed to join tribe"
	LogMsgTribeLeft        = "Left tribe"
)
