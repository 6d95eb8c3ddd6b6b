package session

import "time"

// Transport carries the session token between client and server for one request.
type Transport interface {
	// Committed reports whether the response has already started, after which no
	// token can be emitted.
	Committed() bool

	// Host returns the identity of the serving host, or "" when unknown.
	Host() string

	// Token returns the inbound raw token stored under name.
	Token(name string) (string, bool)

	// SetToken emits a token to the client.
	SetToken(c TokenCookie) error

	// ClearToken instructs the client to drop the token immediately.
	ClearToken(name string) error
}

// TokenCookie describes an outgoing token and the attributes it is stored with.
type TokenCookie struct {
	Name      string
	Value     string
	ExpiresAt time.Time
	Path      string
	Domain    string
	Secure    bool
	HTTPOnly  bool
}
