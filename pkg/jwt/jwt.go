package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "HS256"

// supportedAlgorithms lists the HMAC family: the signing key is a shared secret.
var supportedAlgorithms = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// Service signs claim sets and verifies tokens with a single shared key.
// It is immutable after construction and safe for concurrent use.
type Service struct {
	signingKey []byte
	method     jwt.SigningMethod
	leeway     time.Duration
}

// Option configures a Service.
type Option func(*Service) error

// WithAlgorithm selects the signing algorithm. Only HS256, HS384 and HS512 are accepted.
// An empty name keeps the default.
func WithAlgorithm(alg string) Option {
	return func(s *Service) error {
		if alg == "" {
			return nil
		}
		method, ok := supportedAlgorithms[alg]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
		}
		s.method = method
		return nil
	}
}

// WithLeeway tolerates clock skew when checking exp and nbf.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) error {
		if d < 0 {
			return fmt.Errorf("%w: negative leeway", ErrInvalidLeeway)
		}
		s.leeway = d
		return nil
	}
}

// New creates a Service for the given key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		method:     supportedAlgorithms[DefaultAlgorithm],
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NewFromString is a convenience wrapper around New for string keys.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Algorithm returns the configured algorithm name, e.g. "HS256".
func (s *Service) Algorithm() string {
	return s.method.Alg()
}

// Sign encodes claims as a signed compact JWT.
func (s *Service) Sign(claims map[string]any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token := jwt.NewWithClaims(s.method, jwt.MapClaims(claims))
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}

	return signed, nil
}

// Verify checks the signature, the algorithm and the temporal claims of a token
// and returns its claims. Only the configured algorithm is accepted. Integral
// numbers come back as int64, other numbers as float64.
//
// Every failure wraps exactly one of ErrExpiredToken, ErrTokenNotValidYet,
// ErrInvalidSignature, ErrUnexpectedSigningMethod or ErrInvalidToken.
func (s *Service) Verify(tokenString string) (map[string]any, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithStrictDecoding(), jwt.WithJSONNumber()}
	if s.leeway > 0 {
		opts = append(opts, jwt.WithLeeway(s.leeway))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// The allow-list is checked here instead of jwt.WithValidMethods so that a
		// foreign algorithm is reported as such rather than as a bad signature.
		if t.Method == nil || t.Method.Alg() != s.method.Alg() {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, errors.Join(classify(err), err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	for name, value := range claims {
		claims[name] = normalizeNumbers(value)
	}

	return map[string]any(claims), nil
}

// normalizeNumbers turns json.Number values into int64 when integral and
// float64 otherwise, descending into nested objects and arrays.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	default:
		return value
	}
}

// classify maps library errors onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrTokenNotValidYet
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		// header names an algorithm the library does not know
		return ErrUnexpectedSigningMethod
	default:
		return ErrInvalidToken
	}
}
