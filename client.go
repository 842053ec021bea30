package atomix

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/woojoong88/atomix/internal/aggregate"
	"github.com/woojoong88/atomix/internal/hooks"
	"github.com/woojoong88/atomix/internal/logging"
	"github.com/woojoong88/atomix/internal/metrics"
	"github.com/woojoong88/atomix/serializer"
	"github.com/woojoong88/atomix/types"
)

// ProxyClient is the client-side facade over a partitioned primitive.
//
// A logical primitive (map, counter, ...) is physically split across
// independently replicated partitions. The ProxyClient presents them as a
// single object: operations are routed to the owning partition by key, and
// the partitions' individual connectivity is collapsed into one aggregate
// state (see types.State).
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - State() never blocks; it reads an atomically mirrored value
//   - Listener notifications are delivered in commit order, exactly once
//     per aggregate transition
//
// Lifecycle:
//   - Create with NewProxyClient()
//   - Connect() / Close() / Delete() fan out to every partition concurrently
//     and succeed only when every partition succeeds; partial effects are
//     not rolled back
//
// The type parameter S is the per-partition session capability. Session[S]
// exposes the concrete S via Service() so richer transport APIs stay
// reachable without type assertions.
type ProxyClient[S types.SessionClient] struct {
	cfg Config

	partitioner types.Partitioner
	serializer  types.Serializer
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger

	// Immutable after construction: ids ascending, ordered parallel to ids.
	ids      []types.PartitionID
	sessions map[types.PartitionID]*Session[S]
	ordered  []*Session[S]

	aggregator *aggregate.Aggregator

	// Per-partition transport subscriptions, registered exactly once at
	// construction so repeated Connect() calls never duplicate delivery.
	cancels []func()
}

// NewProxyClient creates a proxy client over the given partition sessions.
//
// The partition id sequence is derived from the sessions, sorted ascending,
// and fixed for the life of the client. Each session's state-change feed is
// subscribed exactly once, here; Connect() never re-subscribes.
//
// Returns a concrete struct following the "accept interfaces, return
// structs" principle.
//
// Parameters:
//   - cfg: Primitive identity (name, type, protocol; all required)
//   - sessions: One session capability per partition
//   - partitioner: Routing strategy (recommended: partitioner.NewModulo())
//   - opts: Optional configuration (serializer, hooks, metrics, logger)
//
// Returns:
//   - *ProxyClient[S]: Initialized client in StateClosed
//   - error: Validation error if configuration or arguments are invalid
//
// Example:
//
//	cfg := atomix.Config{Name: "orders", Type: "map", Protocol: "multi-raft"}
//	client, err := atomix.NewProxyClient(&cfg, sessions, partitioner.NewModulo())
func NewProxyClient[S types.SessionClient](cfg *Config, sessions []S, p types.Partitioner, opts ...Option) (*ProxyClient[S], error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPartitionerRequired
	}
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}

	// Apply options
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	ser := options.serializer
	if ser == nil {
		ser = serializer.NewJSON()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	c := &ProxyClient[S]{
		cfg:         *cfg,
		partitioner: p,
		serializer:  ser,
		hooks:       hooksInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
		sessions:    make(map[types.PartitionID]*Session[S], len(sessions)),
	}

	for _, svc := range sessions {
		sess := newSession(svc)
		if _, ok := c.sessions[sess.PartitionID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePartition, sess.PartitionID())
		}
		c.sessions[sess.PartitionID()] = sess
		c.ids = append(c.ids, sess.PartitionID())
	}
	slices.Sort(c.ids)

	c.ordered = make([]*Session[S], 0, len(c.ids))
	for _, id := range c.ids {
		c.ordered = append(c.ordered, c.sessions[id])
	}

	c.aggregator = aggregate.New(c.ids, loggerInstance, c.onTransition)

	// Subscribe to every partition's state feed exactly once. The callback
	// updates the session's cached state before the aggregator so a listener
	// re-entering the client observes consistent per-partition states.
	for _, sess := range c.ordered {
		cancel := sess.svc.OnStateChange(func(st types.State) {
			sess.observe(st)
			c.aggregator.Record(sess.PartitionID(), st)
		})
		c.cancels = append(c.cancels, cancel)
	}

	return c, nil
}

// Name returns the primitive instance name.
func (c *ProxyClient[S]) Name() string {
	return c.cfg.Name
}

// Type returns the primitive type name.
func (c *ProxyClient[S]) Type() string {
	return c.cfg.Type
}

// Protocol returns the replication protocol name.
func (c *ProxyClient[S]) Protocol() string {
	return c.cfg.Protocol
}

// State returns the current aggregate client state. Never blocks.
func (c *ProxyClient[S]) State() State {
	return c.aggregator.State()
}

// Partitions returns every partition session in ascending id order.
func (c *ProxyClient[S]) Partitions() []*Session[S] {
	return slices.Clone(c.ordered)
}

// PartitionIDs returns the configured partition ids in ascending order.
func (c *ProxyClient[S]) PartitionIDs() []PartitionID {
	return slices.Clone(c.ids)
}

// Partition returns the session for the given partition id.
//
// Returns:
//   - *Session[S]: The partition's session handle
//   - bool: false when id is not among the configured partitions
func (c *ProxyClient[S]) Partition(id PartitionID) (*Session[S], bool) {
	s, ok := c.sessions[id]

	return s, ok
}

// PartitionIDForKey returns the partition owning the given routing key.
//
// Deterministic for a fixed key and fixed partition set.
//
// Parameters:
//   - key: Routing key
//
// Returns:
//   - PartitionID: Owning partition id
//   - error: Routing error from the partitioner
func (c *ProxyClient[S]) PartitionIDForKey(key string) (PartitionID, error) {
	id, err := c.partitioner.Partition(key, c.ids)
	if err != nil {
		return 0, err
	}
	c.metrics.RecordRoute(id)

	return id, nil
}

// PartitionIDFor returns the partition owning an arbitrary routing value.
//
// The value is serialized to its canonical byte form and hex-encoded into a
// routing string; structurally equal values therefore always route to the
// same partition.
//
// Parameters:
//   - value: Arbitrary routing value
//
// Returns:
//   - PartitionID: Owning partition id
//   - error: Serialization or routing error
func (c *ProxyClient[S]) PartitionIDFor(value any) (PartitionID, error) {
	encoded, err := c.serializer.Encode(value)
	if err != nil {
		return 0, fmt.Errorf("encode routing key: %w", err)
	}

	return c.PartitionIDForKey(hex.EncodeToString(encoded))
}

// OnStateChange registers a listener for aggregate state changes.
//
// The listener is invoked once per committed transition, in commit order,
// outside the aggregator's bookkeeping lock (so it may re-enter the
// client). The returned cancel function removes the registration; removal
// is best-effort immediate.
//
// Each call registers an independent subscription, so registering the same
// function twice yields two deliveries per transition; keep one
// subscription per logical observer and cancel it when done.
//
// Parameters:
//   - fn: Listener callback receiving the new aggregate state
//
// Returns:
//   - func(): Cancel function removing the registration
func (c *ProxyClient[S]) OnStateChange(fn func(State)) (cancel func()) {
	return c.aggregator.Subscribe(func(st types.State) {
		fn(st)
	})
}

// Connect concurrently connects every partition session.
//
// Completes only when all partitions' connect operations complete. If any
// partition fails the whole operation fails with one PartitionError per
// failing partition (joined), while successfully connected partitions stay
// connected — partial success is observable, not rolled back.
//
// Safe to call multiple times: state-event subscriptions are registered at
// construction, never here, so repeated connects cannot duplicate delivery.
//
// Parameters:
//   - ctx: Context propagated to every partition's connect
//
// Returns:
//   - error: Joined per-partition failures, nil when all succeed
func (c *ProxyClient[S]) Connect(ctx context.Context) error {
	return c.forEach(ctx, "connect", (*Session[S]).Connect)
}

// Close concurrently closes every partition session.
//
// Drops connections without deleting data. Same all-or-fail and no-rollback
// semantics as Connect.
func (c *ProxyClient[S]) Close(ctx context.Context) error {
	return c.forEach(ctx, "close", (*Session[S]).Close)
}

// Delete concurrently deletes the primitive's state in every partition.
//
// Partitions that already deleted are not restored when others fail.
func (c *ProxyClient[S]) Delete(ctx context.Context) error {
	return c.forEach(ctx, "delete", (*Session[S]).Delete)
}

// forEach fans op out to every partition concurrently and joins results.
func (c *ProxyClient[S]) forEach(ctx context.Context, op string, fn func(*Session[S], context.Context) error) error {
	start := time.Now()

	var wg sync.WaitGroup
	errs := make([]error, len(c.ordered))
	for i, sess := range c.ordered {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(sess, ctx); err != nil {
				errs[i] = &types.PartitionError{Partition: sess.PartitionID(), Op: op, Err: err}
			}
		}()
	}
	wg.Wait()

	err := errors.Join(errs...)
	c.metrics.RecordLifecycleDuration(op, time.Since(start).Seconds(), err == nil)
	if err != nil {
		c.logger.Error("lifecycle fan-out failed", "name", c.cfg.Name, "op", op, "error", err)
		c.dispatchError(err)
	}

	return err
}

// onTransition handles a committed aggregate transition: logging and
// metrics inline (cheap, ordered), hooks asynchronously so a slow hook
// never stalls dispatch.
func (c *ProxyClient[S]) onTransition(from, to types.State) {
	c.metrics.RecordStateTransition(from, to)

	if c.hooks.OnStateChanged != nil {
		go func() {
			if err := c.hooks.OnStateChanged(context.Background(), from, to); err != nil {
				c.logger.Error("state change hook failed", "name", c.cfg.Name, "from", from, "to", to, "error", err)
			}
		}()
	}
}

// dispatchError reports a recoverable error to the OnError hook.
func (c *ProxyClient[S]) dispatchError(err error) {
	if c.hooks.OnError == nil {
		return
	}
	go func() {
		if hookErr := c.hooks.OnError(context.Background(), err); hookErr != nil {
			c.logger.Error("error hook failed", "name", c.cfg.Name, "error", hookErr)
		}
	}()
}
