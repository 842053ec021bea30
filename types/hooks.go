package types

import "context"

// Hooks defines callbacks for client lifecycle events.
//
// All hooks are optional and dispatched asynchronously in background
// goroutines so a slow hook can never stall the state aggregation path.
// Hook errors are logged but never fail client operations.
//
// Hooks complement state listeners: listeners receive only the new aggregate
// state in dispatch order, while OnStateChanged also receives the previous
// state, which is convenient for metrics and audit trails.
//
// Best practices:
//   - Complete quickly and respect context cancellation
//   - Make hooks idempotent (a hook may observe the same transition as a
//     listener registered alongside it)
type Hooks struct {
	// OnStateChanged is called when the aggregate client state transitions.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnError is called when a recoverable error occurs, such as a failed
	// hook dispatch or a partial lifecycle fan-out failure.
	OnError func(ctx context.Context, err error) error
}
