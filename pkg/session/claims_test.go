package session_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtsession/pkg/session"
)

func TestNewClaims(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()
	assert.Equal(t, []string{"aud", "exp", "iat", "iss", "jti", "nbf", "sub", "typ"}, c.Keys())
	for _, k := range c.Keys() {
		assert.Nil(t, c.Get(k, "default"), k)
		assert.False(t, c.Has(k), k)
	}
	assert.Empty(t, c.Payload())
}

func TestClaimsGetSetHas(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()

	assert.Equal(t, "fallback", c.Get("custom", "fallback"))
	assert.Nil(t, c.Get(session.ClaimSubject, "fallback"), "declared key returns its nil value")

	c.Set("custom", "value")
	assert.Equal(t, "value", c.Get("custom", nil))
	assert.True(t, c.Has("custom"))

	tests := []struct {
		name  string
		value any
		has   bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"zero int", 0, false},
		{"false", false, false},
		{"empty slice", []string{}, false},
		{"empty map", map[string]any{}, false},
		{"string", "x", true},
		{"int", 7, true},
		{"true", true, true},
		{"slice", []string{"a"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := session.NewClaims()
			c.Set("k", tt.value)
			assert.Equal(t, tt.has, c.Has("k"))
			_, inPayload := c.Payload()["k"]
			assert.Equal(t, tt.has, inPayload)
		})
	}
}

func TestClaimsPopAndRemove(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()
	c.Set("flash", "saved")

	assert.Equal(t, "saved", c.Pop("flash", nil))
	assert.Equal(t, "gone", c.Get("flash", "gone"))
	assert.Equal(t, "gone", c.Pop("flash", "gone"))

	c.Set(session.ClaimSubject, "42")
	c.Remove(session.ClaimSubject)
	assert.NotContains(t, c.Keys(), session.ClaimSubject)
	assert.Equal(t, "def", c.Get(session.ClaimSubject, "def"))
}

func TestClaimsID(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()
	id := c.ID()
	require.Len(t, id, 44)
	raw, err := base64.StdEncoding.DecodeString(id)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.Equal(t, id, c.ID(), "id is stable")
	assert.Equal(t, id, c.Get(session.ClaimID, nil))

	other := session.NewClaims()
	assert.NotEqual(t, id, other.ID())

	c.SetID("fixed")
	assert.Equal(t, "fixed", c.ID())

	c.SetID("")
	assert.NotEqual(t, "", c.ID(), "empty id is regenerated")
}

func TestClaimsPayloadIsCopy(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()
	c.Set(session.ClaimSubject, "42")

	payload := c.Payload()
	assert.Equal(t, map[string]any{"sub": "42"}, payload)

	payload["sub"] = "changed"
	assert.Equal(t, "42", c.Get(session.ClaimSubject, nil))
}

func TestClaimsReset(t *testing.T) {
	t.Parallel()

	c := session.NewClaims()
	c.Set(session.ClaimSubject, "42")
	c.Set("custom", "v")
	keys := c.Keys()

	c.Reset()

	assert.Equal(t, keys, c.Keys())
	for _, k := range keys {
		assert.Nil(t, c.Get(k, "default"), k)
	}
	assert.Empty(t, c.Payload())
}
