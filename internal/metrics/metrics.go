package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_conversions_total",
			Help: "Conversions that reached a terminal state",
		},
		[]string{"direction", "status"},
	)

	conversionStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramp_conversion_step_duration_seconds",
			Help:    "Time spent in each conversion state before leaving it",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"direction", "state"},
	)

	providerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_provider_requests_total",
			Help: "Requests sent to the payments provider by operation and HTTP status",
		},
		[]string{"operation", "code"},
	)

	providerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramp_provider_request_duration_seconds",
			Help:    "Latency of payments provider requests",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	tokenOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_token_operations_total",
			Help: "ERC-20 transactions submitted, by method and result",
		},
		[]string{"method", "result"},
	)

	eventPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ramp_event_publish_errors_total",
			Help: "Conversion events that could not be published",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_http_requests_total",
			Help: "API requests by route, method and status",
		},
		[]string{"route", "method", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramp_http_request_duration_seconds",
			Help:    "API request latency; conversions include provider and chain waits",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"route", "method"},
	)

	watchedWallets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ramp_history_watched_wallets",
			Help: "Wallets with in-flight payouts polled by the history refresher",
		},
	)
)

// ObserveConversion counts a terminal conversion outcome.
func ObserveConversion(direction, status string) {
	conversionsTotal.WithLabelValues(direction, status).Inc()
}

// ObserveStep records how long a conversion stayed in state.
func ObserveStep(direction, state string, d time.Duration) {
	conversionStepDuration.WithLabelValues(direction, state).Observe(d.Seconds())
}

// ObserveProviderRequest records one provider round trip. code 0 means the
// request never got an HTTP answer.
func ObserveProviderRequest(operation string, code int, d time.Duration) {
	label := "transport_error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	providerRequestsTotal.WithLabelValues(operation, label).Inc()
	providerRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveTokenOperation counts an ERC-20 submission.
func ObserveTokenOperation(method string, ok bool) {
	result := "failed"
	if ok {
		result = "confirmed"
	}
	tokenOperationsTotal.WithLabelValues(method, result).Inc()
}

// IncEventPublishErrors counts a dropped event.
func IncEventPublishErrors() {
	eventPublishErrors.Inc()
}

// SetWatchedWallets reports the size of the refresher's watch set.
func SetWatchedWallets(n int) {
	watchedWallets.Set(float64(n))
}

// ObserveHTTPRequest records one served API request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(route, method string, code int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
