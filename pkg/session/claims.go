package session

import (
	"crypto/rand"
	"encoding/base64"
	"maps"
	"reflect"
	"slices"
)

// Registered claim names carried by every session token.
const (
	ClaimIssuer    = "iss"
	ClaimSubject   = "sub"
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
	ClaimID        = "jti"
	ClaimType      = "typ"
)

// idSize is the number of random bytes behind a generated jti.
const idSize = 32

var registeredClaims = []string{
	ClaimIssuer,
	ClaimSubject,
	ClaimAudience,
	ClaimExpiresAt,
	ClaimNotBefore,
	ClaimIssuedAt,
	ClaimID,
	ClaimType,
}

// Claims holds the claim set of one session. A name is "declared" once it has a
// key in the set, even when its value is nil; the registered claims are declared
// from the start.
//
// Claims is not safe for concurrent use. It belongs to a single request.
type Claims struct {
	values map[string]any
}

// NewClaims returns a claim set with every registered claim declared and unset.
func NewClaims() *Claims {
	values := make(map[string]any, len(registeredClaims))
	for _, name := range registeredClaims {
		values[name] = nil
	}
	return &Claims{values: values}
}

// Set stores value under name. Any name is accepted.
func (c *Claims) Set(name string, value any) {
	c.values[name] = value
}

// Get returns the value of a declared claim, nil included, or def when the
// name was never declared.
func (c *Claims) Get(name string, def any) any {
	if value, ok := c.values[name]; ok {
		return value
	}
	return def
}

// Pop works like Get and then deletes the key. Unlike Reset, the name is no
// longer declared afterwards.
func (c *Claims) Pop(name string, def any) any {
	value, ok := c.values[name]
	if !ok {
		return def
	}
	delete(c.values, name)
	return value
}

// Has reports whether the claim holds a non-empty value.
func (c *Claims) Has(name string) bool {
	return !isEmpty(c.values[name])
}

// Remove deletes the key.
func (c *Claims) Remove(name string) {
	delete(c.values, name)
}

// ID returns the jti claim, generating one on first use when it is unset.
func (c *Claims) ID() string {
	id, _ := c.values[ClaimID].(string)
	if id == "" {
		id = newID()
		c.values[ClaimID] = id
	}
	return id
}

// SetID overwrites the jti claim.
func (c *Claims) SetID(id string) {
	c.values[ClaimID] = id
}

// Payload returns a copy of the non-empty claims, ready to be signed.
func (c *Claims) Payload() map[string]any {
	payload := make(map[string]any, len(c.values))
	for name, value := range c.values {
		if !isEmpty(value) {
			payload[name] = value
		}
	}
	return payload
}

// Keys returns the declared claim names in sorted order.
func (c *Claims) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Reset unsets every declared claim without removing the keys.
func (c *Claims) Reset() {
	for name := range c.values {
		c.values[name] = nil
	}
}

// isEmpty treats nil, zero values and empty strings, slices and maps as unset.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// newID returns 32 random bytes in standard base64 (44 characters).
func newID() string {
	b := make([]byte, idSize)
	// crypto/rand.Read never returns an error; it aborts the program instead.
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
