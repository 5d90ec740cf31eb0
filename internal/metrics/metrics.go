// Package metrics defines the Prometheus metrics exported by the adoption
// API client. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto; embedders expose them however they serve /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adoption_client"

// RequestsTotal counts backend calls by outcome.
// Labels:
//   - method: HTTP method of the request
//   - status: numeric HTTP status, or "0" when no response was received
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend API requests, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures wall time per backend call.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ForcedLogoutsTotal counts sessions invalidated by a 403 response.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions cleared after a 403 response.",
	},
)

// RoleFallbackTotal counts logins whose role could not be derived and fell
// back to adopter. A non-zero rate usually means the backend changed its
// role contract.
// Label:
//   - reason: "missing" (no role anywhere) or "unrecognized" (value present
//     but matching no known spelling)
var RoleFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_fallback_total",
		Help:      "Total number of logins that defaulted to the adopter role.",
	},
	[]string{"reason"},
)
