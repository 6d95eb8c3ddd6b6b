package cookie

import (
	"errors"
	"net/http"
	"time"
)

// expiredAt is the instant written into cleared cookies.
var expiredAt = time.Unix(1, 0)

// Manager writes and reads plain cookies with a shared set of default attributes.
// Values are stored as given: callers that need integrity sign them first.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Defaults returns a copy of the manager's default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set writes a cookie. Per-call opts are applied on top of the defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		Expires:  options.Expires,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if err := c.Valid(); err != nil {
		return errors.Join(ErrInvalidCookie, err)
	}

	http.SetCookie(w, c)
	return nil
}

// Get returns the value of the named request cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie on the client. The path and domain must
// match the ones used when the cookie was set, so per-call opts are honoured.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  expiredAt,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}
