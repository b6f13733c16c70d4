package blum

import "time"

const (
	// DefaultTimeout bounds one request including the body read
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a response body is read
	maxBodyBytes = 4 << 20

	// Web app origin the requests pretend to come from
	appOrigin  = "https://telegram.blum.codes"
	appReferer = "https://telegram.blum.codes/"
)

// Endpoint labels used in errors, logs, and metrics
const (
	OpPreflight       = "auth_preflight"
	OpAuthProvider    = "auth_provider"
	OpRefresh         = "auth_refresh"
	OpTasks           = "tasks"
	OpStartTask       = "task_start"
	OpClaimTask       = "task_claim"
	OpValidateTask    = "task_validate"
	OpBalance         = "user_balance"
	OpStartFarming    = "farming_start"
	OpClaimFarming    = "farming_claim"
	OpWalletBalance   = "wallet_balance"
	OpDailyReward     = "daily_reward"
	OpFriendsBalance  = "friends_balance"
	OpFriendsClaim    = "friends_claim"
	OpTribeByChatname = "tribe_by_chatname"
	OpMyTribe         = "tribe_my"
	OpJoinTribe       = "tribe_join"
	OpLeaveTribe      = "tribe_leave"
	OpStartGame       = "game_play"
	OpClaimGame       = "game_claim"
)

// Log messages
const (
	LogMsgRequestFailed = "Remote API request failed"
	LogMsgRequestSent   = "Remote API request"
	LogMsgClientClosed  = "Remote API transport closed"
)
