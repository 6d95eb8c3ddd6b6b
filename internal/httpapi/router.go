package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/jwtsession/pkg/httpserver"
	"github.com/dmitrymomot/jwtsession/pkg/requestid"
	"github.com/dmitrymomot/jwtsession/pkg/session"
)

// NewRouter wires the session endpoints:
//
//	POST /login   issue a token for the posted sub
//	GET  /me      claims of the current session (401 without one)
//	POST /logout  destroy the session
//	GET  /health  liveness probe
func NewRouter(mgr *session.Manager, log *slog.Logger) http.Handler {
	h := NewHandlers(log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))

	r.Group(func(r chi.Router) {
		r.Use(mgr.Middleware)

		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.With(mgr.RequireAuth).Get("/me", h.Me)
	})

	return r
}
