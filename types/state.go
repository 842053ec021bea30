package types

// State represents the connectivity state of a primitive client.
//
// For a partitioned primitive the client exposes a single aggregate state
// derived from every partition's individual session state:
//
//	StateClosed    — at least one partition session is closed (or the client
//	                 has never connected); the primitive is unusable because
//	                 every key maps to exactly one partition.
//	StateConnected — every partition session is healthy.
//	StateSuspended — the client was fully connected and at least one
//	                 partition is now having trouble, but none has closed.
//
// The zero value is StateClosed.
type State int

const (
	// StateClosed indicates the client is not connected.
	StateClosed State = iota

	// StateConnected indicates all partition sessions are healthy.
	StateConnected

	// StateSuspended indicates degraded connectivity: the client was
	// connected and at least one partition session is currently unreachable.
	StateSuspended
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateConnected:
		return "Connected"
	case StateSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}
