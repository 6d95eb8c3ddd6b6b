package session

import "context"

type sessionContextKey struct{}

// WithSession adds a session to the context
func WithSession(ctx context.Context, sess *Codec) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves a session from the context
func FromContext(ctx context.Context) (*Codec, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Codec)
	return sess, ok && sess != nil
}

// MustFromContext retrieves a session from the context or panics
func MustFromContext(ctx context.Context) *Codec {
	sess, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return sess
}

// SubjectFromContext returns the sub claim of an authenticated session in context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sess, ok := FromContext(ctx)
	if !ok || !sess.IsAuthenticated() {
		return "", false
	}
	sub, ok := sess.Get(ClaimSubject, nil).(string)
	return sub, ok && sub != ""
}
