package atomix

// Option configures a ProxyClient with optional dependencies.
type Option func(*clientOptions)

// clientOptions holds optional ProxyClient configuration.
type clientOptions struct {
	serializer Serializer
	hooks      *Hooks
	metrics    MetricsCollector
	logger     Logger
}

// WithSerializer sets the serializer used to canonicalize non-string
// routing keys.
//
// Defaults to the JSON serializer when not set.
//
// Parameters:
//   - s: Serializer implementation
//
// Returns:
//   - Option: Functional option for NewProxyClient
func WithSerializer(s Serializer) Option {
	return func(o *clientOptions) {
		o.serializer = s
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewProxyClient
//
// Example:
//
//	hooks := &atomix.Hooks{
//	    OnStateChanged: func(ctx context.Context, from, to atomix.State) error {
//	        return recordTransition(from, to)
//	    },
//	}
//	client, err := atomix.NewProxyClient(&cfg, sessions, p, atomix.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *clientOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewProxyClient
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *clientOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (slog and zap.SugaredLogger compatible)
//
// Returns:
//   - Option: Functional option for NewProxyClient
func WithLogger(logger Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
