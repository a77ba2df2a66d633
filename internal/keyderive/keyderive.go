// Package keyderive turns a user passphrase into an AES key via PBKDF2,
// the key-derivation helper the core cipher's out-of-scope boundary
// (spec section 1: "key-exchange derivation of AES keys... not part of
// the core") leaves to its callers.
package keyderive

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/sshaes/aescipher/internal/consts"
)

const (
	// SaltSize is the length in bytes of a freshly generated salt.
	SaltSize = 16

	// Iterations is the PBKDF2 work factor.
	Iterations = 200_000
)

// NewSalt generates a random salt suitable for Derive.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keyderive: generate salt: %w", err)
	}
	return salt, nil
}

// Derive stretches passphrase into a key of the size bits requires.
func Derive(passphrase, salt []byte, bits consts.KeyBits) []byte {
	return pbkdf2.Key(passphrase, salt, Iterations, bits.KeyBytes(), sha256.New)
}
