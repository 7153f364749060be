// Package metrics defines and registers the custom Prometheus metrics for the
// bookkeeping API. It is the single source of truth for metric names, labels,
// and help strings; everything registers with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timeformoney"

// AllocationsAssignedTotal counts allocation rows created by successful
// batch assignments.
var AllocationsAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "allocations_assigned_total",
		Help:      "Total number of allocation rows created by assign operations.",
	},
)

// AllocationRejectionsTotal counts rejected allocation mutations.
// Label:
//   - reason: "not_found", "invalid_argument", "capacity_exceeded", "conflict", "other"
var AllocationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "allocation_rejections_total",
		Help:      "Total number of rejected allocation mutations, by reason.",
	},
	[]string{"reason"},
)

// AllocationsDeletedTotal counts deleted allocations.
var AllocationsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "allocations_deleted_total",
		Help:      "Total number of allocations deleted.",
	},
)

// ReportsServedTotal counts served report queries.
// Label:
//   - report: "session_balance", "client_balance", "income_by_sessions", "income_by_payments"
var ReportsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_served_total",
		Help:      "Total number of report queries served, by report type.",
	},
	[]string{"report"},
)
