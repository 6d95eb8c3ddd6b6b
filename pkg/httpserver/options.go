package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

// WithAddr sets the listen address. Empty keeps the default ":8080".
func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return durationOption(d, func(o *options) *time.Duration { return &o.readTimeout })
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(d time.Duration) Option {
	return durationOption(d, func(o *options) *time.Duration { return &o.writeTimeout })
}

// WithIdleTimeout sets how long keep-alive connections wait for the next request.
func WithIdleTimeout(d time.Duration) Option {
	return durationOption(d, func(o *options) *time.Duration { return &o.idleTimeout })
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return durationOption(d, func(o *options) *time.Duration { return &o.shutdownTimeout })
}

// durationOption ignores non-positive durations.
func durationOption(d time.Duration, field func(*options) *time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			*field(o) = d
		}
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers a callback that runs once the server is listening.
func WithStartHook(h func(*slog.Logger)) Option {
	return func(o *options) {
		if h != nil {
			o.startHooks = append(o.startHooks, h)
		}
	}
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func(*slog.Logger)) Option {
	return func(o *options) {
		if h != nil {
			o.stopHooks = append(o.stopHooks, h)
		}
	}
}
