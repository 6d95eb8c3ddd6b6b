package session

import (
	"net"
	"net/http"

	"github.com/dmitrymomot/jwtsession/pkg/cookie"
)

// HTTPTransport is a request-scoped Transport over net/http. Tokens are read
// from its sources in order and written as cookies.
type HTTPTransport struct {
	w       http.ResponseWriter
	r       *http.Request
	cookies *cookie.Manager
	sources []Source
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithSources replaces the default cookie → parameter → header lookup order.
func WithSources(sources ...Source) TransportOption {
	return func(t *HTTPTransport) {
		t.sources = sources
	}
}

// NewHTTPTransport binds a transport to one request/response pair. A nil
// cookie manager falls back to cookie.New().
func NewHTTPTransport(w http.ResponseWriter, r *http.Request, cookies *cookie.Manager, opts ...TransportOption) *HTTPTransport {
	if cookies == nil {
		cookies = cookie.New()
	}

	t := &HTTPTransport{
		w:       w,
		r:       r,
		cookies: cookies,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.sources == nil {
		t.sources = DefaultSources(cookies)
	}

	return t
}

// Committed reports whether the response headers were already sent. Only
// writers wrapped by Manager.Middleware (or implementing Committed() bool)
// can report it; other writers are assumed uncommitted.
func (t *HTTPTransport) Committed() bool {
	if c, ok := t.w.(interface{ Committed() bool }); ok {
		return c.Committed()
	}
	return false
}

// Host returns the request host without port.
func (t *HTTPTransport) Host() string {
	host := t.r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}

// Token returns the value of the first source that has one.
func (t *HTTPTransport) Token(name string) (string, bool) {
	for _, source := range t.sources {
		if value, ok := source(t.r, name); ok {
			return value, true
		}
	}
	return "", false
}

// SetToken writes the token cookie.
func (t *HTTPTransport) SetToken(c TokenCookie) error {
	if t.Committed() {
		return ErrHeadersCommitted
	}

	// the token's domain always wins over a COOKIE_DOMAIN default; the codec
	// leaves it empty so the cookie is host-only
	opts := []cookie.Option{
		cookie.WithPath(c.Path),
		cookie.WithDomain(c.Domain),
		cookie.WithExpires(c.ExpiresAt),
		cookie.WithHTTPOnly(c.HTTPOnly),
	}
	// never downgrade a Secure default of the cookie manager
	if c.Secure {
		opts = append(opts, cookie.WithSecure(true))
	}

	return t.cookies.Set(t.w, c.Name, c.Value, opts...)
}

// ClearToken expires the token cookie.
func (t *HTTPTransport) ClearToken(name string) error {
	if t.Committed() {
		return ErrHeadersCommitted
	}

	return t.cookies.Delete(t.w, name, cookie.WithPath("/"), cookie.WithDomain(""))
}
