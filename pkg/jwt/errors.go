package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrTokenNotValidYet        = errors.New("jwt: token is not valid yet")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrUnsupportedAlgorithm    = errors.New("jwt: unsupported algorithm")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrInvalidLeeway           = errors.New("jwt: invalid leeway")
	ErrMissingClaims           = errors.New("jwt: missing claims")
	ErrSigningFailed           = errors.New("jwt: signing failed")
)
