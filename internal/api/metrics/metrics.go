// Package metrics defines and registers all custom Prometheus metrics for
// the HR gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrgateway"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "rrhh", "employee", "invalid_credentials", "invalid_token",
//     "unauthorized_role", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// UpstreamRequestsTotal counts calls to the HR and assistant backends.
// Labels:
//   - backend: "hr" or "assistant"
//   - outcome: "ok", "rejected" (non-2xx) or "unreachable" (transport error)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream backend calls, by backend and outcome.",
	},
	[]string{"backend", "outcome"},
)

// UpstreamRequestDuration measures upstream call latency end-to-end.
// Label:
//   - backend: "hr" or "assistant"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream backend calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"backend"},
)

// NormalizerErrorsTotal counts payloads the normalizer refused because a
// required field was missing.
var NormalizerErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "normalizer_errors_total",
		Help:      "Total number of backend payloads rejected by the view-model normalizer.",
	},
)
