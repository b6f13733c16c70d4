package domain

// Production hosts of the remote API
const (
	DefaultUserURL   = "https://user-domain.blum.codes"
	DefaultGameURL   = "https://game-domain.blum.codes"
	DefaultWalletURL = "https://wallet-domain.blum.codes"
	DefaultTribeURL  = "https://tribe-domain.blum.codes"
	DefaultEarnURL   = "https://earn-domain.blum.codes"
)

// Remote API paths
const (
	PathAuthProvider    = "/api/v1/auth/provider/PROVIDER_TELEGRAM_MINI_APP"
	PathAuthRefresh     = "/api/v1/auth/refresh"
	PathTasks           = "/api/v1/tasks"
	PathTaskStart       = "/api/v1/tasks/%s/start"
	PathTaskClaim       = "/api/v1/tasks/%s/claim"
	PathTaskValidate    = "/api/v1/tasks/%s/validate"
	PathFarmingStart    = "/api/v1/farming/start"
	PathFarmingClaim    = "/api/v1/farming/claim"
	PathUserBalance     = "/api/v1/user/balance"
	PathWalletBalance   = "/api/v1/wallet/my/points/balance"
	PathDailyReward     = "/api/v1/daily-reward"
	PathFriendsBalance  = "/api/v1/friends/balance"
	PathFriendsClaim    = "/api/v1/friends/claim"
	PathTribeByChatname = "/api/v1/tribe/by-chatname/%s"
	PathTribeMy         = "/api/v1/tribe/my"
	PathTribeJoin       = "/api/v1/tribe/%s/join"
	PathTribeLeave      = "/api/v1/tribe/leave"
	PathGamePlay        = "/api/v2/game/play"
	PathGameClaim       = "/api/v2/game/claim"
)

// DailyRewardOffset is the timezone offset (minutes) sent with the daily claim
const DailyRewardOffset = "-180"

// Login responses that drive the registration ladder
const (
	MsgUsernameUnavailable = "rpc error: code = AlreadyExists desc = Username is not available"
	MsgAlreadyConnected    = "account is already connected to another user"
)

// StatusRelogin is the transient "temporarily unavailable" status of the auth endpoint
const StatusRelogin = 520

// BodyOK is the plain-text success body of several endpoints
const BodyOK = "OK"
