// Package secrets generates and derives symmetric keys.
//
// An application keeps one master key (APP_KEY) and derives a subkey per
// purpose with HKDF-SHA256, so rotating or leaking one subkey does not expose
// the others and no second secret has to be provisioned.
//
// # Usage
//
//	master, _ := hex.DecodeString(os.Getenv("APP_KEY"))
//	key, err := secrets.DeriveHexKey(master, "session")
//	if err != nil {
//		// master key shorter than 32 bytes
//	}
//	cfg.Key = key
//
// GenerateKey returns fresh random bytes suitable as a master key.
package secrets
