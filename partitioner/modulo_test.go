package partitioner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woojoong88/atomix/types"
)

func TestModulo_Deterministic(t *testing.T) {
	p := NewModulo()
	ids := []types.PartitionID{1, 2, 3}

	first, err := p.Partition("user-42", ids)
	require.NoError(t, err)

	for range 50 {
		got, err := p.Partition("user-42", ids)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestModulo_ResultWithinPartitionSet(t *testing.T) {
	p := NewModulo()
	ids := []types.PartitionID{10, 20, 30, 40}

	for i := range 200 {
		got, err := p.Partition(fmt.Sprintf("key-%d", i), ids)
		require.NoError(t, err)
		require.Contains(t, ids, got)
	}
}

func TestModulo_SpreadsKeys(t *testing.T) {
	p := NewModulo()
	ids := []types.PartitionID{1, 2, 3, 4}

	hits := make(map[types.PartitionID]int)
	for i := range 4000 {
		got, err := p.Partition(fmt.Sprintf("key-%d", i), ids)
		require.NoError(t, err)
		hits[got]++
	}

	for _, id := range ids {
		require.Greater(t, hits[id], 0, "partition %s received no keys", id)
	}
}

func TestModulo_EmptyPartitionSet(t *testing.T) {
	p := NewModulo()

	_, err := p.Partition("user-42", nil)
	require.ErrorIs(t, err, types.ErrNoPartitions)
}

func TestModulo_SeedChangesRouting(t *testing.T) {
	unseeded := NewModulo()
	seeded := NewModulo(WithModuloSeed(98765))
	ids := []types.PartitionID{1, 2, 3, 4, 5, 6, 7, 8}

	moved := 0
	for i := range 500 {
		key := fmt.Sprintf("key-%d", i)
		a, _ := unseeded.Partition(key, ids)
		b, _ := seeded.Partition(key, ids)
		if a != b {
			moved++
		}
	}

	require.Greater(t, moved, 0)
}
