package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the Atomix client library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap external errors with context using
// fmt.Errorf("...: %w", err).
var (
	// ErrInvalidConfig is returned when the client configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPartitionerRequired is returned when the partitioner is nil.
	ErrPartitionerRequired = errors.New("partitioner is required")

	// ErrNoSessions is returned when no partition sessions are provided.
	ErrNoSessions = errors.New("at least one partition session is required")

	// ErrDuplicatePartition is returned when two sessions report the same
	// partition id.
	ErrDuplicatePartition = errors.New("duplicate partition id")

	// ErrNoPartitions is returned by partitioners when the partition id
	// sequence is empty.
	ErrNoPartitions = errors.New("no partitions available")
)

// PartitionError records the failure of a single partition during a
// lifecycle fan-out operation.
//
// Fan-out operations aggregate one PartitionError per failing partition with
// errors.Join, so callers can recover the failing partition set:
//
//	var perr *types.PartitionError
//	if errors.As(err, &perr) {
//	    log.Printf("partition %s failed", perr.Partition)
//	}
type PartitionError struct {
	// Partition is the id of the failing partition.
	Partition PartitionID

	// Op is the lifecycle operation that failed ("connect", "close", "delete").
	Op string

	// Err is the underlying session error.
	Err error
}

// Error implements the error interface.
func (e *PartitionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Partition, e.Err)
}

// Unwrap returns the underlying session error.
func (e *PartitionError) Unwrap() error {
	return e.Err
}
