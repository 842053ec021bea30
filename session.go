package atomix

import (
	"context"
	"sync/atomic"

	"github.com/woojoong88/atomix/types"
)

// Session is the per-partition handle owned by a ProxyClient.
//
// It wraps one underlying session capability, forwards lifecycle calls to
// it, and caches the last state the partition's transport reported. A
// Session exists for the lifetime of its client and is never replaced; the
// partition set is fixed at construction (no dynamic repartitioning).
type Session[S types.SessionClient] struct {
	svc  S
	id   types.PartitionID
	last atomic.Int32 // types.State
}

// newSession wraps a session capability. The cached state starts Closed
// regardless of what the capability would currently report, matching the
// aggregator's initial table.
func newSession[S types.SessionClient](svc S) *Session[S] {
	s := &Session[S]{
		svc: svc,
		id:  svc.PartitionID(),
	}
	s.last.Store(int32(types.StateClosed))

	return s
}

// PartitionID returns the id of the partition this session serves.
func (s *Session[S]) PartitionID() PartitionID {
	return s.id
}

// State returns the last state this partition's transport reported.
func (s *Session[S]) State() State {
	return types.State(s.last.Load())
}

// Service returns the underlying session capability.
//
// This is the escape hatch to the full transport-specific API; the minimal
// capability set (connect, close, delete, state, listen) is available on
// the Session itself.
func (s *Session[S]) Service() S {
	return s.svc
}

// Connect establishes this partition's session.
func (s *Session[S]) Connect(ctx context.Context) error {
	return s.svc.Connect(ctx)
}

// Close tears down this partition's session without deleting data.
func (s *Session[S]) Close(ctx context.Context) error {
	return s.svc.Close(ctx)
}

// Delete deletes the primitive's state in this partition.
func (s *Session[S]) Delete(ctx context.Context) error {
	return s.svc.Delete(ctx)
}

// observe caches a state reported by the underlying transport.
func (s *Session[S]) observe(st types.State) {
	s.last.Store(int32(st))
}
