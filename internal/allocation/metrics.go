package allocation

import (
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

var operations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "allocation_operations_total",
		Help: "How many allocation operations were processed, partitioned by operation and result.",
	},
	[]string{"operation", "result"},
)

var allocatedUnits = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "allocation_allocated_units_total",
		Help: "Sum of all amounts written by allocation replacements.",
	},
)

// Metrics returns the Prometheus collectors of the allocation engine.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{operations, allocatedUnits}
}

// recordUnits adds the amounts of committed allocations.
func recordUnits(allocations []models.Allocation) {
	var total int64
	for _, a := range allocations {
		total += a.AllocatedAmount
	}

	allocatedUnits.Add(float64(total))
}

func observe(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	operations.WithLabelValues(operation, result).Inc()
}
