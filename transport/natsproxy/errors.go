package natsproxy

import "errors"

// Sentinel errors returned by the NATS session transport.
var (
	// ErrConnRequired is returned when the NATS connection is nil.
	ErrConnRequired = errors.New("NATS connection is required")

	// ErrNoPartitionIDs is returned when no partition ids are provided.
	ErrNoPartitionIDs = errors.New("at least one partition id is required")
)
