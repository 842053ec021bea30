package testing

import (
	"sync"

	"github.com/woojoong88/atomix/types"
)

// StateRecorder is a state listener that records every notification it
// receives, in delivery order. Safe for concurrent use.
//
// Example:
//
//	rec := atomixtest.NewStateRecorder()
//	cancel := client.OnStateChange(rec.Observe)
//	defer cancel()
//	// ... drive state events ...
//	require.Equal(t, []types.State{types.StateConnected}, rec.States())
type StateRecorder struct {
	mu     sync.Mutex
	states []types.State
}

// NewStateRecorder creates an empty state recorder.
func NewStateRecorder() *StateRecorder {
	return &StateRecorder{}
}

// Observe records one state notification. Use it as a listener callback.
func (r *StateRecorder) Observe(st types.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, st)
}

// States returns a copy of all recorded states in delivery order.
func (r *StateRecorder) States() []types.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.State, len(r.states))
	copy(out, r.states)

	return out
}

// Len returns the number of recorded notifications.
func (r *StateRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}
