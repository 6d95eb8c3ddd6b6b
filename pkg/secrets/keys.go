package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of generated and derived keys (256 bits).
	KeySize = 32

	// MinMasterKeySize is the shortest master key DeriveKey accepts.
	MinMasterKeySize = 32

	// salt separates keys derived here from other HKDF users of the same master.
	salt = "jwtsession-keys-v1"
)

// ValidateKey checks that a master key is long enough to derive from.
func ValidateKey(key []byte) error {
	if len(key) < MinMasterKeySize {
		return ErrInvalidMasterKey
	}
	return nil
}

// DeriveKey derives a KeySize-byte subkey for purpose from master using
// HKDF-SHA256. The same master and purpose always yield the same key;
// different purposes yield unrelated keys.
func DeriveKey(master []byte, purpose string) ([]byte, error) {
	if err := ValidateKey(master); err != nil {
		return nil, err
	}
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}

	r := hkdf.New(sha256.New, master, []byte(salt), []byte(purpose))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return key, nil
}

// DeriveHexKey is DeriveKey with hex output, the form expected by string
// typed settings such as session.Config.Key.
func DeriveHexKey(master []byte, purpose string) (string, error) {
	key, err := DeriveKey(master, purpose)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// GenerateKey returns KeySize random bytes.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}
