package natsproxy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/woojoong88/atomix"
	"github.com/woojoong88/atomix/partitioner"
	atomixtest "github.com/woojoong88/atomix/testing"
	"github.com/woojoong88/atomix/transport/natsproxy"
	"github.com/woojoong88/atomix/types"
)

func TestNewSessions_Validation(t *testing.T) {
	_, nc := atomixtest.StartEmbeddedNATS(t)

	t.Run("nil connection", func(t *testing.T) {
		_, err := natsproxy.NewSessions(nil, natsproxy.Config{}, []types.PartitionID{1})
		require.ErrorIs(t, err, natsproxy.ErrConnRequired)
	})

	t.Run("no partition ids", func(t *testing.T) {
		_, err := natsproxy.NewSessions(nc, natsproxy.Config{}, nil)
		require.ErrorIs(t, err, natsproxy.ErrNoPartitionIDs)
	})

	t.Run("one session per id", func(t *testing.T) {
		ids := []types.PartitionID{1, 2, 3}
		sessions, err := natsproxy.NewSessions(nc, natsproxy.Config{}, ids)
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		for i, id := range ids {
			require.Equal(t, id, sessions[i].PartitionID())
			require.Equal(t, types.StateClosed, sessions[i].State())
		}
	})
}

func TestSession_Lifecycle(t *testing.T) {
	_, nc := atomixtest.StartEmbeddedNATS(t)

	const prefix = "lifecycle.partition"
	atomixtest.ServePartition(t, nc, prefix, 1)

	cfg := natsproxy.Config{SubjectPrefix: prefix, RequestTimeout: 2 * time.Second}
	sessions, err := natsproxy.NewSessions(nc, cfg, []types.PartitionID{1})
	require.NoError(t, err)
	sess := sessions[0]

	var observed []types.State
	cancel := sess.OnStateChange(func(st types.State) {
		observed = append(observed, st)
	})
	defer cancel()

	ctx := context.Background()

	require.NoError(t, sess.Connect(ctx))
	require.Equal(t, types.StateConnected, sess.State())

	// A second connect succeeds but reports no new state.
	require.NoError(t, sess.Connect(ctx))

	require.NoError(t, sess.Close(ctx))
	require.Equal(t, types.StateClosed, sess.State())

	require.NoError(t, sess.Connect(ctx))
	require.NoError(t, sess.Delete(ctx))
	require.Equal(t, types.StateClosed, sess.State())

	require.Equal(t, []types.State{
		types.StateConnected,
		types.StateClosed,
		types.StateConnected,
		types.StateClosed,
	}, observed)
}

func TestSession_ConnectFailsForUnservedPartition(t *testing.T) {
	_, nc := atomixtest.StartEmbeddedNATS(t)

	const prefix = "unserved.partition"
	atomixtest.ServePartition(t, nc, prefix, 1)
	// Partition 2 has no server behind it.

	cfg := natsproxy.Config{SubjectPrefix: prefix, RequestTimeout: 500 * time.Millisecond}
	sessions, err := natsproxy.NewSessions(nc, cfg, []types.PartitionID{1, 2})
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, sessions[0].Connect(ctx))
	require.Equal(t, types.StateConnected, sessions[0].State())

	err = sessions[1].Connect(ctx)
	require.Error(t, err)
	require.Equal(t, types.StateClosed, sessions[1].State())
}

func TestSession_ConnectionClosedPropagates(t *testing.T) {
	_, nc := atomixtest.StartEmbeddedNATS(t)

	const prefix = "closing.partition"
	atomixtest.ServePartition(t, nc, prefix, 1)
	atomixtest.ServePartition(t, nc, prefix, 2)

	cfg := natsproxy.Config{SubjectPrefix: prefix, RequestTimeout: 2 * time.Second}
	sessions, err := natsproxy.NewSessions(nc, cfg, []types.PartitionID{1, 2})
	require.NoError(t, err)

	ctx := context.Background()
	for _, sess := range sessions {
		require.NoError(t, sess.Connect(ctx))
	}

	// Closing the shared connection must close every session through the
	// status watcher.
	nc.Close()

	require.Eventually(t, func() bool {
		for _, sess := range sessions {
			if sess.State() != types.StateClosed {
				return false
			}
		}
		return true
	}, 3*time.Second, 10*time.Millisecond)
}

// TestProxyClientOverNATS wires the full stack: a proxy client whose
// sessions talk to loopback partition servers over an embedded broker.
func TestProxyClientOverNATS(t *testing.T) {
	_, nc := atomixtest.StartEmbeddedNATS(t)

	const prefix = "e2e.partition"
	ids := []types.PartitionID{1, 2, 3}
	for _, id := range ids {
		atomixtest.ServePartition(t, nc, prefix, id)
	}

	cfg := natsproxy.Config{SubjectPrefix: prefix, RequestTimeout: 2 * time.Second}
	sessions, err := natsproxy.NewSessions(nc, cfg, ids)
	require.NoError(t, err)

	client, err := atomix.NewProxyClient(
		&atomix.Config{Name: "orders", Type: "map", Protocol: "multi-raft"},
		sessions,
		partitioner.NewModulo(),
		atomix.WithLogger(atomixtest.NewTestLogger(t)),
	)
	require.NoError(t, err)

	rec := atomixtest.NewStateRecorder()
	cancel := client.OnStateChange(rec.Observe)
	defer cancel()

	ctx := context.Background()

	require.NoError(t, client.Connect(ctx))
	require.Equal(t, atomix.StateConnected, client.State())
	require.Equal(t, []atomix.State{atomix.StateConnected}, rec.States())

	id, err := client.PartitionIDForKey("user-42")
	require.NoError(t, err)
	require.Contains(t, ids, id)

	require.NoError(t, client.Close(ctx))
	require.Equal(t, atomix.StateClosed, client.State())
}
