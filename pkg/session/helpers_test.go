package session_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/dmitrymomot/jwtsession/pkg/session"
)

// fakeTransport records emitted tokens for assertions.
type fakeTransport struct {
	committed bool
	host      string
	tokens    map[string]string
	set       []session.TokenCookie
	cleared   []string
	setErr    error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{host: "example.com", tokens: map[string]string{}}
}

func (f *fakeTransport) Committed() bool { return f.committed }
func (f *fakeTransport) Host() string    { return f.host }

func (f *fakeTransport) Token(name string) (string, bool) {
	v, ok := f.tokens[name]
	return v, ok && v != ""
}

func (f *fakeTransport) SetToken(c session.TokenCookie) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.set = append(f.set, c)
	return nil
}

func (f *fakeTransport) ClearToken(name string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.cleared = append(f.cleared, name)
	return nil
}

func (f *fakeTransport) last() session.TokenCookie {
	return f.set[len(f.set)-1]
}

func randomKey(t *testing.T) string {
	t.Helper()
	b := make([]byte, 64)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func testConfig(t *testing.T) session.Config {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Key = randomKey(t)
	cfg.Lifetime = time.Hour
	return cfg
}
