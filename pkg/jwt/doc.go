// Package jwt signs and verifies compact JSON Web Tokens with a shared secret.
//
// It is a thin layer over github.com/golang-jwt/jwt/v5 that fixes the pieces
// a session codec cares about: one configured HMAC algorithm (HS256 by
// default, HS384 and HS512 on request), map-shaped claims, strict base64
// decoding and a small set of sentinel errors describing why a token was
// rejected.
//
// # Usage
//
//	svc, err := jwt.NewFromString(secret, jwt.WithAlgorithm("HS256"))
//	if err != nil {
//		// missing key or unsupported algorithm
//	}
//
//	token, err := svc.Sign(map[string]any{
//		"sub": "42",
//		"exp": time.Now().Add(15 * time.Minute).Unix(),
//	})
//
//	claims, err := svc.Verify(token)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//	case errors.Is(err, jwt.ErrInvalidSignature):
//	}
//
// # Error Handling
//
// Verify wraps exactly one of ErrExpiredToken, ErrTokenNotValidYet,
// ErrInvalidSignature, ErrUnexpectedSigningMethod or ErrInvalidToken, joined
// with the underlying library error so the cause stays available for logs.
//
// Numeric claims are decoded without precision loss: integral values come
// back as int64 (exp, iat and nbf included), everything else as float64.
package jwt
