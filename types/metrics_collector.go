package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently from internal goroutines.
type MetricsCollector interface {
	ClientMetrics
	RoutingMetrics
}

// ClientMetrics defines metrics for client-level lifecycle operations.
type ClientMetrics interface {
	// RecordStateTransition records an aggregate state transition event.
	RecordStateTransition(from, to State)

	// RecordLifecycleDuration records the duration of a lifecycle fan-out
	// operation ("connect", "close", "delete") in seconds.
	RecordLifecycleDuration(op string, seconds float64, success bool)
}

// RoutingMetrics defines metrics for key routing decisions.
type RoutingMetrics interface {
	// RecordRoute records a routing decision to the given partition.
	RecordRoute(id PartitionID)
}
