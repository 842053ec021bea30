package partitioner

import (
	"github.com/zeebo/xxh3"

	"github.com/woojoong88/atomix/types"
)

// Modulo implements hash-modulo partition routing.
type Modulo struct {
	seed uint64
}

var _ types.Partitioner = (*Modulo)(nil)

// ModuloOption configures a Modulo partitioner.
type ModuloOption func(*Modulo)

// NewModulo creates a new hash-modulo partitioner.
//
// The key is hashed with xxh3 and reduced modulo the partition count; the
// resulting index selects from the ascending-ordered id sequence. This is
// the default routing strategy for partitioned primitives.
//
// Parameters:
//   - opts: Optional configuration (WithModuloSeed)
//
// Returns:
//   - *Modulo: Initialized partitioner
//
// Example:
//
//	p := partitioner.NewModulo()
//	client, err := atomix.NewProxyClient(&cfg, sessions, p)
func NewModulo(opts ...ModuloOption) *Modulo {
	m := &Modulo{}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithModuloSeed sets a custom hash seed.
//
// Every client routing against the same partition set must use the same
// seed, otherwise their routing decisions diverge.
//
// Parameters:
//   - seed: Hash seed value
//
// Returns:
//   - ModuloOption: Configuration option
func WithModuloSeed(seed uint64) ModuloOption {
	return func(m *Modulo) {
		m.seed = seed
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
func (m *Modulo) Partition(key string, partitionIDs []types.PartitionID) (types.PartitionID, error) {
	if len(partitionIDs) == 0 {
		return 0, types.ErrNoPartitions
	}

	h := xxh3.HashStringSeed(key, m.seed)

	return partitionIDs[h%uint64(len(partitionIDs))], nil
}
