package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Remote API metric names
const (
	MetricNameAPIRequestsTotal   = "blum_api_requests_total"
	MetricNameAPIRequestDuration = "blum_api_request_duration_seconds"
)

// Runtime metric names
const (
	MetricNameCyclesTotal     = "blum_cycles_total"
	MetricNameBackoffsTotal   = "blum_backoffs_total"
	MetricNameLoginsTotal     = "blum_logins_total"
	MetricNameFarmingActions  = "blum_farming_actions_total"
	MetricNameTaskActions     = "blum_task_actions_total"
	MetricNameGameRounds      = "blum_game_rounds_total"
	MetricNameGamePoints      = "blum_game_points_total"
	MetricNameAccountsRunning = "blum_accounts_running"
	MetricNameOpenTransports  = "blum_open_transports"
)

// Health server metric names
const (
	MetricNameHTTPRequestsTotal = "http_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextAPIRequestsTotal   = "Total number of requests sent to the remote API"
	HelpTextAPIRequestDuration = "Remote API request latency in seconds"
	HelpTextCyclesTotal        = "Total number of runtime cycles by result"
	HelpTextBackoffsTotal      = "Total number of backoff waits by failure category"
	HelpTextLoginsTotal        = "Total number of login attempts by result"
	HelpTextFarmingActions     = "Total number of farming start/claim actions"
	HelpTextTaskActions        = "Total number of task actions by action and result"
	HelpTextGameRounds         = "Total number of game rounds by result"
	HelpTextGamePoints         = "Total points claimed from game rounds"
	HelpTextAccountsRunning    = "Number of account runners currently active"
	HelpTextOpenTransports     = "Number of open remote API transports"
	HelpTextHTTPRequestsTotal  = "Total number of HTTP requests served by the health server"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelEndpoint = "endpoint"
	LabelStatus   = "status"
	LabelResult   = "result"
	LabelCategory = "category"
	LabelAction   = "action"
	LabelMethod   = "method"
	LabelPath     = "path"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultFatal   = "fatal"

	// StatusTransportError labels requests that never produced an HTTP status
	StatusTransportError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// APILatencyBuckets spans 50ms to 30s; the remote API is slow behind proxies.
var APILatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
