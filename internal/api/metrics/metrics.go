// Package metrics defines all custom Prometheus metrics for the ART tracker
// API. It is the single source of truth for metric names, labels, and help
// strings. Registration happens implicitly through promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arttracker"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ClientsRegisteredTotal counts newly registered ART clients.
var ClientsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_registered_total",
		Help:      "Total number of ART clients registered.",
	},
)

// PickupsRecordedTotal counts recorded medication pickups.
var PickupsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pickups_recorded_total",
		Help:      "Total number of medication pickups recorded.",
	},
)

// AuditEventsTotal counts audit trail writes.
// Label:
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events written, by result.",
	},
	[]string{"result"},
)

// ClientsDue tracks the due-today count from the latest stats computation.
var ClientsDue = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "clients_due_today",
		Help:      "Clients due for pickup today, as of the last stats query.",
	},
)

// ClientsOverdue tracks the overdue count from the latest stats computation.
var ClientsOverdue = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "clients_overdue",
		Help:      "Clients past their pickup date, as of the last stats query.",
	},
)
