package session

import (
	"net/http"

	"github.com/dmitrymomot/jwtsession/pkg/logger"
)

// Middleware starts a session for every request and stores it in the request
// context. The session is closed when the handler returns.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)
		sess := m.Session(rw, r)
		defer sess.Close()

		if sess.Start() {
			m.logger.DebugContext(r.Context(), "session started",
				logger.Authenticated(sess.IsAuthenticated()),
			)
		}

		next.ServeHTTP(rw, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireAuth rejects requests without an authenticated session with 401.
// It reuses the session stored by Middleware when present.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			rw := newResponseWriter(w)
			sess = m.Session(rw, r)
			defer sess.Close()
			sess.Start()
			w = rw
			r = r.WithContext(WithSession(r.Context(), sess))
		}

		if !sess.IsAuthenticated() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter records whether the response has started so the transport
// can refuse to emit a token afterwards.
type responseWriter struct {
	http.ResponseWriter
	committed bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(code int) {
	// 1xx responses do not finalise the header block
	if code >= http.StatusOK {
		w.committed = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		w.committed = true
		f.Flush()
	}
}

// Committed reports whether headers were sent.
func (w *responseWriter) Committed() bool {
	return w.committed
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
