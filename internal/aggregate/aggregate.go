// Package aggregate folds per-partition session states into a single
// client-visible connectivity state.
package aggregate

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/woojoong88/atomix/types"
)

// Listener receives aggregate state change notifications.
type Listener func(types.State)

// TransitionFunc is invoked once per aggregate transition, before listeners,
// with both endpoints of the transition. The owning client uses it for
// logging, metrics, and hook dispatch.
type TransitionFunc func(from, to types.State)

// Aggregator is the aggregate connectivity state machine for a partitioned
// proxy client.
//
// Each partition's transport reports session state changes asynchronously
// and from independent goroutines. The aggregator records every observation
// in a per-partition state table and derives a single aggregate state:
//
//   - Connected observed: aggregate becomes Connected only when no partition
//     currently reports Suspended or Closed.
//   - Suspended observed: aggregate degrades to Suspended only from
//     Connected.
//   - Closed observed: aggregate becomes Closed from any other state. A
//     single closed partition makes the whole keyspace unusable, so the
//     aggregate is fail-pessimistic.
//
// Events that match no rule mutate nothing and notify nobody, so repeated
// identical observations never produce duplicate notifications. Once the
// aggregate reaches Closed, a partition reporting Connected again can bring
// it back only through the Connected rule above; there is no shortcut that
// skips the all-healthy check.
//
// All bookkeeping happens under one mutex per aggregator. Listener dispatch
// happens outside that mutex (so a listener may safely re-enter the client)
// but is serialized by a dispatch queue: notifications are delivered in the
// order transitions were committed, one per transition.
type Aggregator struct {
	mu      sync.Mutex
	table   map[types.PartitionID]types.State
	pending []transition

	// current mirrors the table-derived aggregate state so State() never
	// blocks on the bookkeeping mutex.
	current atomic.Int32

	// dispatchMu serializes the drain of the pending queue.
	dispatchMu sync.Mutex

	listeners *xsync.Map[uint64, Listener]
	nextID    atomic.Uint64

	onTransition TransitionFunc

	logger types.Logger
}

// transition is one committed aggregate state change awaiting dispatch.
type transition struct {
	from types.State
	to   types.State
}

// New creates an aggregator for the given partition set.
//
// Every partition starts in StateClosed, as does the aggregate. The
// partition set is fixed for the life of the aggregator; events for unknown
// partition ids are discarded.
//
// Parameters:
//   - ids: Configured partition ids
//   - logger: Logger for transition events
//   - onTransition: Optional callback invoked once per transition (may be nil)
//
// Returns:
//   - *Aggregator: Initialized aggregator in StateClosed
func New(ids []types.PartitionID, logger types.Logger, onTransition TransitionFunc) *Aggregator {
	table := make(map[types.PartitionID]types.State, len(ids))
	for _, id := range ids {
		table[id] = types.StateClosed
	}

	a := &Aggregator{
		table:        table,
		listeners:    xsync.NewMap[uint64, Listener](),
		onTransition: onTransition,
		logger:       logger,
	}
	a.current.Store(int32(types.StateClosed))

	return a
}

// State returns the current aggregate state without blocking.
func (a *Aggregator) State() types.State {
	return types.State(a.current.Load())
}

// PartitionState returns the last recorded state for a partition.
//
// Returns:
//   - types.State: Last recorded state
//   - bool: false when id is not a configured partition
func (a *Aggregator) PartitionState(id types.PartitionID) (types.State, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, ok := a.table[id]

	return st, ok
}

// Record processes one partition state observation.
//
// Safe for concurrent use from any goroutine. If the observation commits an
// aggregate transition, all listeners are notified exactly once, in commit
// order, after the bookkeeping mutex is released.
//
// Parameters:
//   - id: Reporting partition
//   - observed: State the partition's session now reports
func (a *Aggregator) Record(id types.PartitionID, observed types.State) {
	a.mu.Lock()
	if _, ok := a.table[id]; !ok {
		a.mu.Unlock()
		a.logger.Warn("ignoring state event for unknown partition", "partition", id, "state", observed)

		return
	}

	a.table[id] = observed

	cur := types.State(a.current.Load())
	next := cur
	switch observed {
	case types.StateConnected:
		if cur != types.StateConnected && !a.anyLocked(types.StateSuspended) && !a.anyLocked(types.StateClosed) {
			next = types.StateConnected
		}
	case types.StateSuspended:
		if cur == types.StateConnected {
			next = types.StateSuspended
		}
	case types.StateClosed:
		if cur != types.StateClosed {
			next = types.StateClosed
		}
	}

	if next != cur {
		a.current.Store(int32(next))
		a.pending = append(a.pending, transition{from: cur, to: next})
	}
	a.mu.Unlock()

	a.dispatch()
}

// Subscribe registers a listener for aggregate state changes.
//
// The listener receives one call per committed transition, in commit order.
// It does not receive the current state on registration. The returned cancel
// function removes the registration; removal is best-effort immediate — no
// new notification starts after cancel returns, but one already in flight
// may still complete.
//
// Parameters:
//   - l: Listener callback
//
// Returns:
//   - func(): Cancel function removing the registration
func (a *Aggregator) Subscribe(l Listener) (cancel func()) {
	id := a.nextID.Add(1)
	a.listeners.Store(id, l)

	return func() {
		a.listeners.Delete(id)
	}
}

// anyLocked reports whether any partition currently records st.
// Caller must hold a.mu.
func (a *Aggregator) anyLocked(st types.State) bool {
	for _, s := range a.table {
		if s == st {
			return true
		}
	}

	return false
}

// dispatch drains the pending transition queue and notifies listeners.
//
// Only one goroutine drains at a time; contenders return immediately
// instead of blocking on dispatchMu. That keeps Record non-blocking while
// a listener callback is running, so a listener may re-enter the client
// with a lifecycle call whose fan-out commits further transitions without
// deadlocking the queue. The post-unlock re-check picks up a transition
// committed in the window after the drain last saw an empty queue.
func (a *Aggregator) dispatch() {
	for {
		if !a.dispatchMu.TryLock() {
			// The current holder drains every transition committed so far
			// and re-checks the queue after unlocking.
			return
		}

		for {
			a.mu.Lock()
			if len(a.pending) == 0 {
				a.mu.Unlock()
				break
			}
			tr := a.pending[0]
			a.pending = a.pending[1:]
			a.mu.Unlock()

			a.logger.Info("aggregate state changed", "from", tr.from, "to", tr.to)

			if a.onTransition != nil {
				a.onTransition(tr.from, tr.to)
			}

			a.listeners.Range(func(_ uint64, l Listener) bool {
				l(tr.to)
				return true
			})
		}
		a.dispatchMu.Unlock()

		a.mu.Lock()
		drained := len(a.pending) == 0
		a.mu.Unlock()
		if drained {
			return
		}
	}
}
