package atomix

import "fmt"

// Config carries the identity of a partitioned primitive.
//
// All three fields are opaque to the client: they are accepted at
// construction, validated for presence, and returned verbatim by the
// corresponding accessors.
type Config struct {
	// Name is the primitive instance name (e.g., "orders").
	Name string `yaml:"name"`

	// Type is the primitive type name (e.g., "map", "counter").
	Type string `yaml:"type"`

	// Protocol is the replication protocol name the primitive runs on
	// (e.g., "multi-raft").
	Protocol string `yaml:"protocol"`
}

// Validate checks that all identity fields are present.
//
// Returns:
//   - error: ErrInvalidConfig-wrapped error naming the missing field, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Name == "" {
		return fmt.Errorf("%w: primitive name is required", ErrInvalidConfig)
	}
	if cfg.Type == "" {
		return fmt.Errorf("%w: primitive type is required", ErrInvalidConfig)
	}
	if cfg.Protocol == "" {
		return fmt.Errorf("%w: protocol is required", ErrInvalidConfig)
	}

	return nil
}
