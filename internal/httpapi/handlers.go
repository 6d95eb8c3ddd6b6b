package httpapi

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/jwtsession/pkg/logger"
	"github.com/dmitrymomot/jwtsession/pkg/session"
)

// loginClaims are the form fields copied into the session on login.
var loginClaims = []string{session.ClaimSubject, session.ClaimType, session.ClaimAudience}

// Handlers serves the session endpoints. They expect session.Manager.Middleware
// to run first.
type Handlers struct {
	log *slog.Logger
}

// NewHandlers returns handlers logging to log.
func NewHandlers(log *slog.Logger) *Handlers {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handlers{log: log}
}

// Login reads sub (required), typ and aud from an urlencoded form, stores
// them in the session and issues a token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		JSONError(w, err)
		return
	}

	sub := strings.TrimSpace(r.PostForm.Get(session.ClaimSubject))
	if sub == "" {
		JSONError(w, fmt.Errorf("%w: sub is required", ErrBadRequest))
		return
	}

	sess := session.MustFromContext(r.Context())
	for _, name := range loginClaims {
		if v := strings.TrimSpace(r.PostForm.Get(name)); v != "" {
			sess.Set(name, v)
		}
	}

	if !sess.Write() {
		JSONError(w, ErrInternalServerError)
		return
	}

	h.log.InfoContext(r.Context(), "session issued",
		logger.Subject(sub),
		logger.TokenID(sess.ID()),
	)

	JSON(w, "session_issued", map[string]any{
		session.ClaimSubject:   sub,
		session.ClaimID:        sess.ID(),
		session.ClaimExpiresAt: sess.Get(session.ClaimExpiresAt, nil),
	})
}

// Me returns the claims of the authenticated session.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok || !sess.IsAuthenticated() {
		JSONError(w, ErrUnauthorized)
		return
	}
	JSON(w, "session", sess.Claims().Payload())
}

// Logout clears the session and expires the token on the client.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())
	sub, _ := sess.Get(session.ClaimSubject, nil).(string)

	if !sess.Destroy() {
		JSONError(w, ErrInternalServerError)
		return
	}

	h.log.InfoContext(r.Context(), "session destroyed", logger.Subject(sub))
	w.WriteHeader(http.StatusNoContent)
}

func parseForm(r *http.Request) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrUnsupportedMediaType)
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}
