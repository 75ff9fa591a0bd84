// Package metrics defines and registers all custom Prometheus metrics
// for the grievance client. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grievance_client"

// RequestsTotal counts requests dispatched to the remote service.
// Labels:
//   - method: HTTP method ("GET", "POST", "PUT")
//   - code: response status code class ("2xx", "3xx", "4xx", "5xx") or
//     "error" when the service was unreachable
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of requests dispatched to the complaint service.",
	},
	[]string{"method", "code"},
)

// RequestDuration measures end-to-end request latency against the service.
// Label:
//   - method: HTTP method
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of requests against the complaint service.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)

// TransitionsTotal counts admin status transitions requested by this client.
// Label:
//   - target: the requested target status ("in-review", "resolved")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of status transitions requested, by target status.",
	},
	[]string{"target"},
)
