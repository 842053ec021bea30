package partitioner

import (
	"github.com/woojoong88/atomix/internal/hash"
	"github.com/woojoong88/atomix/types"
)

// ConsistentHash implements consistent hashing with virtual nodes.
type ConsistentHash struct {
	virtualNodes int
	hashSeed     uint64
}

var _ types.Partitioner = (*ConsistentHash)(nil)

// ConsistentHashOption configures a ConsistentHash partitioner.
type ConsistentHashOption func(*ConsistentHash)

// NewConsistentHash creates a new consistent hash partitioner.
//
// The partitioner builds a hash ring with virtual nodes per partition and
// routes each key to the nearest clockwise virtual node. Key placement is
// mostly preserved across partition sets of different sizes, which makes
// this strategy suitable for tooling that replays keys against historical
// partition layouts.
//
// Parameters:
//   - opts: Optional configuration (WithVirtualNodes, WithHashSeed)
//
// Returns:
//   - *ConsistentHash: Initialized partitioner
//
// Example:
//
//	p := partitioner.NewConsistentHash(
//	    partitioner.WithVirtualNodes(300),
//	)
func NewConsistentHash(opts ...ConsistentHashOption) *ConsistentHash {
	ch := &ConsistentHash{
		virtualNodes: 150, // default
		hashSeed:     0,
	}

	for _, opt := range opts {
		opt(ch)
	}

	return ch
}

// WithVirtualNodes sets the number of virtual nodes per partition.
//
// Higher values provide better distribution but increase the per-route ring
// construction cost. Recommended range: 100-300 (default: 150).
//
// Parameters:
//   - nodes: Number of virtual nodes per partition
//
// Returns:
//   - ConsistentHashOption: Configuration option
func WithVirtualNodes(nodes int) ConsistentHashOption {
	return func(ch *ConsistentHash) {
		ch.virtualNodes = nodes
	}
}

// WithHashSeed sets a custom hash seed for ring placement.
//
// Parameters:
//   - seed: Hash seed value
//
// Returns:
//   - ConsistentHashOption: Configuration option
func WithHashSeed(seed uint64) ConsistentHashOption {
	return func(ch *ConsistentHash) {
		ch.hashSeed = seed
	}
}

// Partition returns the partition owning key.
//
// Parameters:
//   - key: Routing key
//   - partitionIDs: Ascending-ordered partition id sequence
//
// Returns:
//   - types.PartitionID: Owning partition id
//   - error: types.ErrNoPartitions when the sequence is empty
func (ch *ConsistentHash) Partition(key string, partitionIDs []types.PartitionID) (types.PartitionID, error) {
	if len(partitionIDs) == 0 {
		return 0, types.ErrNoPartitions
	}

	ring := hash.NewRing(partitionIDs, ch.virtualNodes, ch.hashSeed)

	id, ok := ring.Get(key)
	if !ok {
		return 0, types.ErrNoPartitions
	}

	return id, nil
}
