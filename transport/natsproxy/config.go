package natsproxy

import "time"

// Config configures NATS-backed partition sessions.
type Config struct {
	// SubjectPrefix is the subject hierarchy under which partitions are
	// served; partition p's verbs live at "<SubjectPrefix>.<p>.<verb>".
	SubjectPrefix string `yaml:"subjectPrefix"`

	// RequestTimeout bounds lifecycle requests when the caller's context
	// carries no deadline of its own.
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SubjectPrefix:  "atomix.partition",
		RequestTimeout: 5 * time.Second,
	}
}

// setDefaults fills in missing configuration values.
func (cfg *Config) setDefaults() {
	defaults := DefaultConfig()

	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = defaults.SubjectPrefix
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
}
