package session

import "errors"

var (
	// ErrMissingKey indicates the configuration has no signing key
	ErrMissingKey = errors.New("session.missing_key")

	// ErrInvalidLifetime indicates a token lifetime shorter than one second
	ErrInvalidLifetime = errors.New("session.invalid_lifetime")

	// ErrInvalidLeeway indicates a negative clock skew allowance
	ErrInvalidLeeway = errors.New("session.invalid_leeway")

	// ErrNoTransport indicates no transport was supplied
	ErrNoTransport = errors.New("session.no_transport")

	// ErrHeadersCommitted indicates the response has already started
	ErrHeadersCommitted = errors.New("session.headers_committed")
)
