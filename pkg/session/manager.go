package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jwtsession/pkg/cookie"
	"github.com/dmitrymomot/jwtsession/pkg/jwt"
)

// Manager builds request-scoped sessions from one validated configuration.
// It is immutable after construction and safe for concurrent use.
type Manager struct {
	cfg           Config
	signer        *jwt.Service
	cookies       *cookie.Manager
	transportOpts []TransportOption
	logger        *slog.Logger
}

// NewManager validates cfg and prepares the signer shared by all sessions.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	signer, err := newSigner(cfg)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	return &Manager{
		cfg:           cfg,
		signer:        signer,
		cookies:       o.cookies,
		transportOpts: o.transportOpts,
		logger:        o.logger,
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (m *Manager) Config() Config {
	return m.cfg
}

// Session returns a new, not yet started session bound to w and r.
func (m *Manager) Session(w http.ResponseWriter, r *http.Request) *Codec {
	t := NewHTTPTransport(w, r, m.cookies, m.transportOpts...)
	return newCodec(m.cfg, m.signer, t, m.logger)
}
