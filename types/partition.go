package types

import "strconv"

// PartitionID identifies one independently replicated partition of a
// primitive's keyspace.
//
// Partition ids are totally ordered. The client holds them in a fixed,
// ascending-sorted sequence established at construction; routing decisions
// are made against that canonical ordering so they are reproducible across
// calls and across processes.
type PartitionID int

// String returns the canonical string form of the partition id.
func (id PartitionID) String() string {
	return "partition-" + strconv.Itoa(int(id))
}
