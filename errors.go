package atomix

import "github.com/woojoong88/atomix/types"

// Sentinel errors returned by the proxy client.
//
// These alias the canonical definitions in the types subpackage so that
// errors.Is works regardless of which package a caller imports.
var (
	// ErrInvalidConfig is returned when the client configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPartitionerRequired is returned when the partitioner is nil.
	ErrPartitionerRequired = types.ErrPartitionerRequired

	// ErrNoSessions is returned when no partition sessions are provided.
	ErrNoSessions = types.ErrNoSessions

	// ErrDuplicatePartition is returned when two sessions report the same
	// partition id.
	ErrDuplicatePartition = types.ErrDuplicatePartition
)
