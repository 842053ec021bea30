package types

// Partitioner selects the partition that owns a routing key.
//
// Implementations must be pure functions of their inputs: identical keys and
// identical ordered partition id sequences always produce the identical
// result, across calls and across process restarts. This determinism is what
// gives a single key its partition stickiness, which in turn is what the
// per-partition replication protocol's ordering guarantees are built on.
//
// Implementations must not retain or mutate the partition id slice.
type Partitioner interface {
	// Partition returns the partition owning key from the given ascending
	// ordered id sequence.
	Partition(key string, partitionIDs []PartitionID) (PartitionID, error)
}
