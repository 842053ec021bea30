package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woojoong88/atomix/internal/logging"
	atomixtest "github.com/woojoong88/atomix/testing"
	"github.com/woojoong88/atomix/types"
)

func newTestAggregator(onTransition TransitionFunc) *Aggregator {
	ids := []types.PartitionID{1, 2, 3}
	return New(ids, logging.NewNop(), onTransition)
}

func TestAggregator_InitialState(t *testing.T) {
	a := newTestAggregator(nil)

	require.Equal(t, types.StateClosed, a.State())

	for _, id := range []types.PartitionID{1, 2, 3} {
		st, ok := a.PartitionState(id)
		require.True(t, ok)
		require.Equal(t, types.StateClosed, st)
	}

	_, ok := a.PartitionState(99)
	require.False(t, ok)
}

func TestAggregator_ConnectedRequiresAllHealthy(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	// Partitions connect one by one; the aggregate flips only on the last.
	a.Record(1, types.StateConnected)
	require.Equal(t, types.StateClosed, a.State())
	require.Equal(t, 0, rec.Len())

	a.Record(2, types.StateConnected)
	require.Equal(t, types.StateClosed, a.State())
	require.Equal(t, 0, rec.Len())

	a.Record(3, types.StateConnected)
	require.Equal(t, types.StateConnected, a.State())
	require.Equal(t, []types.State{types.StateConnected}, rec.States())
}

func TestAggregator_SuspendedOnlyFromConnected(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	// Suspension before full health never surfaces.
	a.Record(2, types.StateSuspended)
	require.Equal(t, types.StateClosed, a.State())
	require.Equal(t, 0, rec.Len())

	a.Record(1, types.StateConnected)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	require.Equal(t, types.StateConnected, a.State())

	a.Record(2, types.StateSuspended)
	require.Equal(t, types.StateSuspended, a.State())
	require.Equal(t, []types.State{types.StateConnected, types.StateSuspended}, rec.States())
}

func TestAggregator_RecoveryFromSuspended(t *testing.T) {
	a := newTestAggregator(nil)

	a.Record(1, types.StateConnected)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	a.Record(2, types.StateSuspended)
	require.Equal(t, types.StateSuspended, a.State())

	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	// The lagging partition recovers; no partition is suspended or closed,
	// so the aggregate returns to connected exactly once.
	a.Record(2, types.StateConnected)
	require.Equal(t, types.StateConnected, a.State())
	require.Equal(t, []types.State{types.StateConnected}, rec.States())
}

func TestAggregator_ClosedDominates(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	a.Record(1, types.StateConnected)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	require.Equal(t, types.StateConnected, a.State())

	// One closed partition closes the whole client, once.
	a.Record(1, types.StateClosed)
	require.Equal(t, types.StateClosed, a.State())

	a.Record(1, types.StateClosed)
	require.Equal(t, types.StateClosed, a.State())

	require.Equal(t, []types.State{types.StateConnected, types.StateClosed}, rec.States())

	// Connected events from the healthy partitions don't reopen the client
	// while the closed partition still reports closed.
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	require.Equal(t, types.StateClosed, a.State())

	// Once the closed partition itself reports connected, all-healthy holds
	// again and the client reopens.
	a.Record(1, types.StateConnected)
	require.Equal(t, types.StateConnected, a.State())
}

func TestAggregator_RepeatedEventsAreNoOps(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	for range 5 {
		a.Record(1, types.StateConnected)
		a.Record(2, types.StateConnected)
		a.Record(3, types.StateConnected)
	}

	require.Equal(t, []types.State{types.StateConnected}, rec.States())
}

func TestAggregator_UnknownPartitionIgnored(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)
	defer cancel()

	a.Record(42, types.StateConnected)

	require.Equal(t, types.StateClosed, a.State())
	require.Equal(t, 0, rec.Len())
}

func TestAggregator_SubscribeCancel(t *testing.T) {
	a := newTestAggregator(nil)
	rec := atomixtest.NewStateRecorder()
	cancel := a.Subscribe(rec.Observe)

	a.Record(1, types.StateConnected)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	require.Equal(t, 1, rec.Len())

	cancel()

	a.Record(2, types.StateClosed)
	require.Equal(t, types.StateClosed, a.State())
	require.Equal(t, 1, rec.Len())
}

func TestAggregator_TransitionEndpoints(t *testing.T) {
	type endpoints struct{ from, to types.State }
	var seen []endpoints

	a := newTestAggregator(func(from, to types.State) {
		seen = append(seen, endpoints{from, to})
	})

	a.Record(1, types.StateConnected)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateConnected)
	a.Record(2, types.StateSuspended)
	a.Record(2, types.StateConnected)
	a.Record(3, types.StateClosed)

	require.Equal(t, []endpoints{
		{types.StateClosed, types.StateConnected},
		{types.StateConnected, types.StateSuspended},
		{types.StateSuspended, types.StateConnected},
		{types.StateConnected, types.StateClosed},
	}, seen)
}
