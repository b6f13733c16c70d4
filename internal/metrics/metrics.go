package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote API Metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAPIRequestsTotal,
			Help: HelpTextAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAPIRequestDuration,
			Help:    HelpTextAPIRequestDuration,
			Buckets: APILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Runtime Metrics
var (
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCyclesTotal,
			Help: HelpTextCyclesTotal,
		},
		[]string{LabelResult},
	)

	BackoffsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackoffsTotal,
			Help: HelpTextBackoffsTotal,
		},
		[]string{LabelCategory},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginsTotal,
			Help: HelpTextLoginsTotal,
		},
		[]string{LabelResult},
	)

	AccountsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAccountsRunning,
			Help: HelpTextAccountsRunning,
		},
	)

	OpenTransports = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOpenTransports,
			Help: HelpTextOpenTransports,
		},
	)
)

// Business Metrics
var (
	FarmingActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmingActions,
			Help: HelpTextFarmingActions,
		},
		[]string{LabelAction, LabelResult},
	)

	TaskActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTaskActions,
			Help: HelpTextTaskActions,
		},
		[]string{LabelAction, LabelResult},
	)

	GameRounds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameRounds,
			Help: HelpTextGameRounds,
		},
		[]string{LabelResult},
	)

	GamePoints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamePoints,
			Help: HelpTextGamePoints,
		},
	)
)

// Health Server Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)
)
