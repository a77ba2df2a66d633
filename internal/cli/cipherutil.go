package cli

import (
	"fmt"

	"github.com/sshaes/aescipher"
)

// newKeyedCipher builds a Cipher for algorithm, installs key and iv, and
// returns it ready for a block operation.
func newKeyedCipher(algorithm string, key, iv []byte) (*aescipher.Cipher, error) {
	c, err := aescipher.New(algorithm)
	if err != nil {
		return nil, err
	}
	if err := c.SetKey(key); err != nil {
		return nil, fmt.Errorf("aescryptctl: set key: %w", err)
	}
	if err := c.SetIV(iv); err != nil {
		return nil, fmt.Errorf("aescryptctl: set iv: %w", err)
	}
	return c, nil
}
