package session

import (
	"fmt"
	"time"
)

const (
	DefaultAlgorithm = "HS256"
	DefaultLifetime  = 900 * time.Second
	DefaultTokenName = "X-Token"
)

// Config holds session configuration
type Config struct {
	// Key is the shared signing secret (required)
	Key string `env:"SESSION_KEY"`

	// Algorithm is the JWT signing algorithm: HS256, HS384 or HS512
	Algorithm string `env:"SESSION_ALGORITHM" envDefault:"HS256"`

	// Lifetime is added to the issue time to produce exp
	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"15m"`

	// TokenName is used as cookie, request parameter and header name
	TokenName string `env:"SESSION_TOKEN_NAME" envDefault:"X-Token"`

	// Issuer overrides the iss claim; empty means the request host
	Issuer string `env:"SESSION_ISSUER" envDefault:""`

	// Leeway tolerates clock skew when checking exp and nbf
	Leeway time.Duration `env:"SESSION_LEEWAY" envDefault:"0s"`

	// SecureCookie sets the Secure flag on the token cookie (recommended for production)
	SecureCookie bool `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
}

// DefaultConfig returns default session configuration. Key is left empty and
// must be provided.
func DefaultConfig() Config {
	return Config{
		Algorithm: DefaultAlgorithm,
		Lifetime:  DefaultLifetime,
		TokenName: DefaultTokenName,
	}
}

// Validate reports configuration errors. The key is checked first.
func (c Config) Validate() error {
	if c.Key == "" {
		return ErrMissingKey
	}
	if c.Lifetime != 0 && c.Lifetime < time.Second {
		return fmt.Errorf("%w: %s", ErrInvalidLifetime, c.Lifetime)
	}
	if c.Leeway < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLeeway, c.Leeway)
	}
	return nil
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if c.Lifetime == 0 {
		c.Lifetime = DefaultLifetime
	}
	if c.TokenName == "" {
		c.TokenName = DefaultTokenName
	}
	return c
}
