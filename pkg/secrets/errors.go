package secrets

import "errors"

var (
	ErrInvalidMasterKey = errors.New("invalid master key: must be at least 32 bytes")
	ErrEmptyPurpose     = errors.New("key purpose must not be empty")

	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrKeyGenerationFailed = errors.New("key generation failed")
)
