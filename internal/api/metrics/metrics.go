// Package metrics defines and registers the custom Prometheus metrics
// for the attendance API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ponto"

// CheckinsTotal counts successfully recorded attendance events.
// Label:
//   - acao: "Entrada" or "Saída"
var CheckinsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_total",
		Help:      "Total number of attendance events recorded, by action.",
	},
	[]string{"acao"},
)

// CheckinErrorsTotal counts rejected check-in attempts.
// Label:
//   - reason: "validation", "not_found", "invalid_pin", "alternation" or "internal"
var CheckinErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkin_errors_total",
		Help:      "Total number of rejected check-in attempts, by reason.",
	},
	[]string{"reason"},
)

// ExportsTotal counts generated admin exports.
// Label:
//   - format: "csv", "xlsx" or "json"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of admin exports generated, by format.",
	},
	[]string{"format"},
)

// ExportDuration measures how long an export takes from period parsing
// to serialized bytes.
var ExportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of export generation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"format"},
)
