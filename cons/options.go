package cons

import "github.com/go-logr/logr"

// Option configures a windowing adapter created by New or NewFunc.
type Option func(*config)

type config struct {
	monitor Monitor
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.monitor == nil {
		// Default to silent (Noop) to avoid polluting output in library code
		cfg.monitor = NoopMonitor{}
	}
	return cfg
}

// WithMonitor sets the monitor notified of produced windows and exhaustion.
func WithMonitor(m Monitor) Option {
	return func(cfg *config) {
		cfg.monitor = m
	}
}

// WithLogger is shorthand for WithMonitor(LogrMonitor{Logger: logger}).
func WithLogger(logger logr.Logger) Option {
	return func(cfg *config) {
		cfg.monitor = LogrMonitor{Logger: logger}
	}
}
