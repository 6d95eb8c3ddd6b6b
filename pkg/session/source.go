package session

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/jwtsession/pkg/cookie"
)

// Source looks up an inbound token under name.
type Source func(r *http.Request, name string) (string, bool)

const bearerPrefix = "Bearer "

// DefaultSources returns the lookup order used by HTTPTransport: cookie, then
// request parameter, then header.
func DefaultSources(cookies *cookie.Manager) []Source {
	return []Source{
		CookieSource(cookies),
		ParamSource(),
		HeaderSource(),
	}
}

// CookieSource reads the token from the request cookie called name.
func CookieSource(cookies *cookie.Manager) Source {
	return func(r *http.Request, name string) (string, bool) {
		value, err := cookies.Get(r, name)
		if err != nil || value == "" {
			return "", false
		}
		return value, true
	}
}

// ParamSource reads the token from the request parameters: the form body of
// POST/PUT/PATCH requests and the query string.
func ParamSource() Source {
	return func(r *http.Request, name string) (string, bool) {
		value := r.FormValue(name)
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// HeaderSource reads the token from the request header called name. A leading
// "Bearer " is stripped.
func HeaderSource() Source {
	return func(r *http.Request, name string) (string, bool) {
		value := strings.TrimSpace(r.Header.Get(name))
		value = strings.TrimSpace(strings.TrimPrefix(value, bearerPrefix))
		if value == "" {
			return "", false
		}
		return value, true
	}
}
