package natsproxy

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/woojoong88/atomix/types"
)

// Lifecycle verbs appended to the partition's subject prefix.
const (
	verbConnect = "connect"
	verbClose   = "close"
	verbDelete  = "delete"
)

// Session is a NATS-backed per-partition session.
//
// All sessions created by NewSessions share one *nats.Conn; per-partition
// health is determined by the partition server answering on its subjects,
// while connection-level trouble (reconnecting, closed) fans out to every
// session.
type Session struct {
	nc  *nats.Conn
	cfg Config
	id  types.PartitionID

	state atomic.Int32 // types.State

	listeners *xsync.Map[uint64, func(types.State)]
	nextID    atomic.Uint64
}

// Compile-time assertion that Session implements SessionClient.
var _ types.SessionClient = (*Session)(nil)

// NewSessions creates one NATS-backed session per partition id.
//
// A single status watcher goroutine observes the shared connection and
// translates its status into session state events: RECONNECTING suspends
// every connected session, a later CONNECTED resumes suspended ones, and
// CLOSED closes them all and stops the watcher.
//
// Parameters:
//   - nc: Shared NATS connection
//   - cfg: Transport configuration (zero value uses defaults)
//   - ids: Partition ids to build sessions for
//
// Returns:
//   - []*Session: One session per id, in input order
//   - error: ErrConnRequired or ErrNoPartitionIDs
//
// Example:
//
//	nc, _ := nats.Connect(nats.DefaultURL)
//	sessions, err := natsproxy.NewSessions(nc, natsproxy.Config{}, ids)
func NewSessions(nc *nats.Conn, cfg Config, ids []types.PartitionID) ([]*Session, error) {
	if nc == nil {
		return nil, ErrConnRequired
	}
	if len(ids) == 0 {
		return nil, ErrNoPartitionIDs
	}

	cfg.setDefaults()

	sessions := make([]*Session, 0, len(ids))
	for _, id := range ids {
		s := &Session{
			nc:        nc,
			cfg:       cfg,
			id:        id,
			listeners: xsync.NewMap[uint64, func(types.State)](),
		}
		s.state.Store(int32(types.StateClosed))
		sessions = append(sessions, s)
	}

	statusCh := nc.StatusChanged(nats.CONNECTED, nats.RECONNECTING, nats.CLOSED)
	go watchStatus(statusCh, sessions)

	return sessions, nil
}

// PartitionID returns the id of the partition this session serves.
func (s *Session) PartitionID() types.PartitionID {
	return s.id
}

// State returns the last known session state.
func (s *Session) State() types.State {
	return types.State(s.state.Load())
}

// Connect establishes the session by requesting the partition's connect verb.
func (s *Session) Connect(ctx context.Context) error {
	if err := s.request(ctx, verbConnect); err != nil {
		return err
	}
	s.setState(types.StateConnected)

	return nil
}

// Close tears down the session without deleting partition data.
func (s *Session) Close(ctx context.Context) error {
	if err := s.request(ctx, verbClose); err != nil {
		return err
	}
	s.setState(types.StateClosed)

	return nil
}

// Delete deletes the primitive's state in this partition and tears down the
// session.
func (s *Session) Delete(ctx context.Context) error {
	if err := s.request(ctx, verbDelete); err != nil {
		return err
	}
	s.setState(types.StateClosed)

	return nil
}

// OnStateChange registers a callback for session state changes.
//
// Parameters:
//   - fn: Callback receiving the new session state
//
// Returns:
//   - func(): Cancel function removing the registration
func (s *Session) OnStateChange(fn func(types.State)) (cancel func()) {
	id := s.nextID.Add(1)
	s.listeners.Store(id, fn)

	return func() {
		s.listeners.Delete(id)
	}
}

// request performs one lifecycle request against the partition's subject.
func (s *Session) request(ctx context.Context, verb string) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	if _, err := s.nc.RequestWithContext(ctx, s.subject(verb), nil); err != nil {
		return fmt.Errorf("%s %s: %w", verb, s.id, err)
	}

	return nil
}

// subject returns the fully qualified subject for a lifecycle verb.
func (s *Session) subject(verb string) string {
	return fmt.Sprintf("%s.%d.%s", s.cfg.SubjectPrefix, int(s.id), verb)
}

// setState records a new state and notifies listeners if it changed.
func (s *Session) setState(st types.State) {
	if old := s.state.Swap(int32(st)); types.State(old) == st {
		return
	}
	s.notify(st)
}

// swapState transitions from->to atomically, notifying listeners on success.
func (s *Session) swapState(from, to types.State) {
	if !s.state.CompareAndSwap(int32(from), int32(to)) {
		return
	}
	s.notify(to)
}

func (s *Session) notify(st types.State) {
	s.listeners.Range(func(_ uint64, fn func(types.State)) bool {
		fn(st)
		return true
	})
}

// watchStatus translates connection status changes into session state
// events for every session sharing the connection. Runs until the
// connection closes; nats.go closes the status channel with the connection.
func watchStatus(statusCh chan nats.Status, sessions []*Session) {
	for status := range statusCh {
		for _, s := range sessions {
			switch status {
			case nats.RECONNECTING:
				s.swapState(types.StateConnected, types.StateSuspended)
			case nats.CONNECTED:
				s.swapState(types.StateSuspended, types.StateConnected)
			case nats.CLOSED:
				s.setState(types.StateClosed)
			}
		}
		if status == nats.CLOSED {
			return
		}
	}
}
