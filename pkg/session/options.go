package session

import (
	"log/slog"

	"github.com/dmitrymomot/jwtsession/pkg/cookie"
	"github.com/dmitrymomot/jwtsession/pkg/logger"
)

// Option is a functional option for New and NewManager
type Option func(*options)

type options struct {
	logger        *slog.Logger
	cookies       *cookie.Manager
	transportOpts []TransportOption
}

// WithLogger sets the logger used for decode, sign and emit failures
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCookieManager sets the cookie manager used by the HTTP transport
func WithCookieManager(m *cookie.Manager) Option {
	return func(o *options) {
		if m != nil {
			o.cookies = m
		}
	}
}

// WithTransportOptions passes options to every HTTPTransport built by a Manager
func WithTransportOptions(opts ...TransportOption) Option {
	return func(o *options) {
		o.transportOpts = append(o.transportOpts, opts...)
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.cookies == nil {
		o.cookies = cookie.New()
	}
	return o
}
