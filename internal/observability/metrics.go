package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gatewayOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Subsystem: "gateway",
		Name:      "operations_total",
		Help:      "Persistence gateway operations by name and outcome.",
	}, []string{"operation", "outcome"})

	fallbackWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Subsystem: "store",
		Name:      "fallback_writes_total",
		Help:      "Times a failed save was diverted to the local fallback store.",
	})
)

func init() {
	prometheus.MustRegister(gatewayOps, fallbackWrites)
}

// RecordGatewayOp counts one gateway call.
func RecordGatewayOp(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	gatewayOps.WithLabelValues(operation, outcome).Inc()
}

// RecordFallbackWrite counts a local safety-net write.
func RecordFallbackWrite() {
	fallbackWrites.Inc()
}
