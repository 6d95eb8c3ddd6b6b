// Package httpapi is the HTTP surface of sessiond: JSON responses, the
// login/me/logout handlers and the chi router that mounts them behind the
// session middleware.
package httpapi
