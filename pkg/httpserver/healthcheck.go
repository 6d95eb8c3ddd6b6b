package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/jwtsession/pkg/logger"
)

// HealthCheck is a readiness probe for one dependency.
type HealthCheck func(ctx context.Context) error

// HealthCheckHandler serves liveness and readiness probes. Without checks it
// answers 200 "ALIVE". With checks it answers 200 "READY" when all pass and
// 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...HealthCheck) http.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
