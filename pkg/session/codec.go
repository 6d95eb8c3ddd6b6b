package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/jwtsession/pkg/jwt"
	"github.com/dmitrymomot/jwtsession/pkg/logger"
)

// Codec keeps a session's claims in a signed token instead of a server-side
// store. One Codec serves one request and is not safe for concurrent use.
type Codec struct {
	cfg       Config
	signer    *jwt.Service
	transport Transport
	claims    *Claims
	logger    *slog.Logger

	status        Status
	authenticated bool
	destroyed     bool
	decodeErr     error
}

// New creates a Codec bound to a transport. It fails with ErrMissingKey when
// cfg has no key, before anything else is checked.
func New(cfg Config, t Transport, opts ...Option) (*Codec, error) {
	if cfg.Key == "" {
		return nil, ErrMissingKey
	}
	if t == nil {
		return nil, ErrNoTransport
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	signer, err := newSigner(cfg)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	return newCodec(cfg, signer, t, o.logger), nil
}

func newCodec(cfg Config, signer *jwt.Service, t Transport, l *slog.Logger) *Codec {
	return &Codec{
		cfg:       cfg,
		signer:    signer,
		transport: t,
		claims:    NewClaims(),
		logger:    l,
	}
}

func newSigner(cfg Config) (*jwt.Service, error) {
	signer, err := jwt.NewFromString(cfg.Key,
		jwt.WithAlgorithm(cfg.Algorithm),
		jwt.WithLeeway(cfg.Leeway),
	)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return signer, nil
}

// Start reads the inbound token and decodes it into the claim set.
//
// It returns false without doing anything when the response is already
// committed, the session is active or it was destroyed in this request, and
// false when no token was sent. When a
// token is present the session becomes active and Start returns true even if
// the token failed verification; check IsAuthenticated for that.
func (c *Codec) Start() bool {
	if c.transport.Committed() || c.status == StatusActive || c.destroyed {
		return false
	}

	raw, ok := c.transport.Token(c.cfg.TokenName)
	if !ok {
		return false
	}

	if err := c.decode(raw); err != nil {
		c.logger.Debug("session token rejected",
			logger.TokenName(c.cfg.TokenName),
			logger.Error(err),
		)
	}
	c.status = StatusActive

	return true
}

// decode verifies raw and copies its claims. On failure nothing changes
// except the recorded cause.
func (c *Codec) decode(raw string) error {
	claims, err := c.signer.Verify(raw)
	if err != nil {
		c.decodeErr = err
		return err
	}

	for name, value := range claims {
		c.claims.Set(name, value)
	}
	c.authenticated = true
	c.decodeErr = nil

	return nil
}

// Write stamps jti, iat, nbf, exp and iss, signs the non-empty claims and
// emits the token. It reports whether the transport accepted it.
func (c *Codec) Write() bool {
	now := time.Now().Unix()
	exp := now + int64(c.cfg.Lifetime/time.Second)

	c.claims.ID()
	c.claims.Set(ClaimIssuedAt, now)
	c.claims.Set(ClaimNotBefore, now)
	c.claims.Set(ClaimExpiresAt, exp)
	// empty issuer is dropped from the payload
	c.claims.Set(ClaimIssuer, c.issuer())

	token, err := c.signer.Sign(c.claims.Payload())
	if err != nil {
		c.logger.Error("failed to sign session token",
			logger.TokenID(c.claims.ID()),
			logger.Error(err),
		)
		return false
	}

	err = c.transport.SetToken(TokenCookie{
		Name:      c.cfg.TokenName,
		Value:     token,
		ExpiresAt: time.Unix(exp, 0),
		Path:      "/",
		Secure:    c.cfg.SecureCookie,
		HTTPOnly:  true,
	})
	if err != nil {
		c.logger.Error("failed to emit session token",
			logger.TokenName(c.cfg.TokenName),
			logger.Error(err),
		)
		return false
	}

	return true
}

// Destroy unsets every claim, drops authentication and expires the token on
// the client. It reports whether the transport accepted the removal.
//
// The inbound token is still present on the request, so Start refuses to run
// again until Close. Write may still issue a new token.
func (c *Codec) Destroy() bool {
	c.claims.Reset()
	c.authenticated = false
	c.status = StatusNone
	c.destroyed = true

	if err := c.transport.ClearToken(c.cfg.TokenName); err != nil {
		c.logger.Error("failed to clear session token",
			logger.TokenName(c.cfg.TokenName),
			logger.Error(err),
		)
		return false
	}

	return true
}

// Close ends the session instance. The status is reset to StatusNone so a
// reused instance never starts out active.
func (c *Codec) Close() {
	c.status = StatusNone
	c.destroyed = false
}

// Status returns the lifecycle state.
func (c *Codec) Status() Status { return c.status }

// IsAuthenticated reports whether the last decode succeeded.
func (c *Codec) IsAuthenticated() bool { return c.authenticated }

// DecodeErr returns why the inbound token was rejected, or nil. The error
// wraps one of the jwt package sentinels.
func (c *Codec) DecodeErr() error { return c.decodeErr }

// Name returns the token name.
func (c *Codec) Name() string { return c.cfg.TokenName }

// SetName changes the token name used for lookup and emission.
func (c *Codec) SetName(name string) { c.cfg.TokenName = name }

// Claims exposes the underlying claim set.
func (c *Codec) Claims() *Claims { return c.claims }

// Get returns a claim value, or def when the name was never declared.
func (c *Codec) Get(name string, def any) any { return c.claims.Get(name, def) }

// Pop returns a claim value like Get and removes the key.
func (c *Codec) Pop(name string, def any) any { return c.claims.Pop(name, def) }

// Set stores a claim value.
func (c *Codec) Set(name string, value any) { c.claims.Set(name, value) }

// Has reports whether a claim holds a non-empty value.
func (c *Codec) Has(name string) bool { return c.claims.Has(name) }

// Remove deletes a claim key.
func (c *Codec) Remove(name string) { c.claims.Remove(name) }

// ID returns the jti claim, generating it on first use.
func (c *Codec) ID() string { return c.claims.ID() }

// SetID overwrites the jti claim.
func (c *Codec) SetID(id string) { c.claims.SetID(id) }

func (c *Codec) issuer() string {
	if c.cfg.Issuer != "" {
		return c.cfg.Issuer
	}
	return c.transport.Host()
}
