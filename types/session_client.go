package types

import "context"

// SessionClient is the per-partition session capability consumed by the
// proxy client.
//
// Implementations wrap whatever transport actually reaches the partition's
// replicated state machine (see transport/natsproxy for a NATS-backed
// implementation). The proxy client treats the session as opaque: it issues
// lifecycle calls, reads the last reported state, and observes asynchronous
// state changes. Retry and timeout policy belong to the implementation, not
// to the proxy client.
//
// State change callbacks may be invoked from arbitrary goroutines and must
// not be assumed to arrive in any particular order relative to other
// partitions' callbacks.
type SessionClient interface {
	// PartitionID returns the id of the partition this session serves.
	PartitionID() PartitionID

	// State returns the last known state of this partition's session.
	State() State

	// Connect establishes the session.
	Connect(ctx context.Context) error

	// Close tears down the session without deleting partition data.
	Close(ctx context.Context) error

	// Delete deletes the primitive's state in this partition and tears down
	// the session.
	Delete(ctx context.Context) error

	// OnStateChange registers a callback invoked on every session state
	// change. The returned cancel function removes the registration.
	OnStateChange(fn func(State)) (cancel func())
}
