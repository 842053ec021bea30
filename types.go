package atomix

import "github.com/woojoong88/atomix/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the `types`
// subpackage directly, avoiding import cycles, while users get convenient
// `atomix.State`, `atomix.PartitionID`, etc.
type (
	State          = types.State
	PartitionID    = types.PartitionID
	PartitionError = types.PartitionError
)

// Re-export interfaces from the types subpackage for convenience.
type (
	SessionClient    = types.SessionClient
	Partitioner      = types.Partitioner
	Serializer       = types.Serializer
	Logger           = types.Logger
	Hooks            = types.Hooks
	MetricsCollector = types.MetricsCollector
)

// Re-export State constants from the types subpackage.
const (
	StateClosed    = types.StateClosed
	StateConnected = types.StateConnected
	StateSuspended = types.StateSuspended
)
