package mailbridge

import "log/slog"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig supplies both service settings at construction time. Values set
// later through the setters overwrite these.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		d.cfg = cfg
	}
}

// WithLogger sets the logger used for dispatch lifecycle events. Defaults to
// a no-op logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithRenderer sets the template renderer used by SendTemplate.
func WithRenderer(r *Renderer) Option {
	return func(d *Dispatcher) {
		d.renderer = r
	}
}
