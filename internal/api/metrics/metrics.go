// Package metrics defines and registers all custom Prometheus metrics for
// the kos API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens via promauto at package init; the
// echoprometheus middleware adds the standard HTTP metrics separately.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kos"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoomsCreatedTotal counts newly registered rooms.
// Label:
//   - type: "single" or "double"
var RoomsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms registered, by room type.",
	},
	[]string{"type"},
)

// PaymentsRecordedTotal counts newly recorded rent bills.
// Label:
//   - status: the initial bill status (always "pending" in the current design)
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of rent bills recorded, by initial status.",
	},
	[]string{"status"},
)

// PaymentsSettledTotal counts bills that transitioned to paid.
var PaymentsSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_settled_total",
		Help:      "Total number of rent bills settled (pending to paid).",
	},
)

// ReportCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of dashboard cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
