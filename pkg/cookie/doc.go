// Package cookie writes and reads HTTP cookies with a shared set of default
// attributes.
//
// A Manager carries defaults (Path "/", HttpOnly, SameSite=Lax) that every
// Set and Delete call starts from; functional options adjust them per call.
// Values are written verbatim. The session package stores already-signed
// tokens here, so the manager does not sign or encrypt on its own.
//
// # Usage
//
//	mgr := cookie.New(cookie.WithSecure(true))
//
//	_ = mgr.Set(w, "X-Token", token, cookie.WithExpires(exp))
//	value, err := mgr.Get(r, "X-Token")
//	_ = mgr.Delete(w, "X-Token")
//
// # Configuration
//
// Config mirrors Options with env tags (COOKIE_PATH, COOKIE_DOMAIN,
// COOKIE_SECURE, COOKIE_HTTP_ONLY, COOKIE_SAME_SITE) and NewFromConfig builds
// a Manager from it.
//
// # Error Handling
//
// Get returns ErrCookieNotFound when the request has no such cookie. Set
// rejects empty names with ErrEmptyName and malformed cookies with
// ErrInvalidCookie joined with the net/http validation error.
package cookie
