package cli

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/sshaes/aescipher/internal/consts"
)

// flagHasSalt marks that a passphrase-derived salt immediately follows
// the flags byte in the header.
const flagHasSalt byte = 0x01

// writeHeader writes the one-byte flags field, the optional salt, and a
// freshly generated IV, returning the IV so the caller can install it
// on the Cipher.
func writeHeader(w io.Writer, salt []byte) (iv []byte, err error) {
	flags := byte(0)
	if salt != nil {
		flags |= flagHasSalt
	}
	if _, err := w.Write([]byte{flags}); err != nil {
		return nil, fmt.Errorf("aescryptctl: write header flags: %w", err)
	}
	if salt != nil {
		if _, err := w.Write(salt); err != nil {
			return nil, fmt.Errorf("aescryptctl: write header salt: %w", err)
		}
	}

	iv = make([]byte, consts.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("aescryptctl: generate iv: %w", err)
	}
	if _, err := w.Write(iv); err != nil {
		return nil, fmt.Errorf("aescryptctl: write iv: %w", err)
	}
	return iv, nil
}

// readHeader reads the flags byte, the optional salt, and the IV back
// from r.
func readHeader(r io.Reader) (salt, iv []byte, err error) {
	var flagBuf [1]byte
	if _, err := io.ReadFull(r, flagBuf[:]); err != nil {
		return nil, nil, fmt.Errorf("aescryptctl: read header flags: %w", err)
	}

	if flagBuf[0]&flagHasSalt != 0 {
		salt = make([]byte, 16)
		if _, err := io.ReadFull(r, salt); err != nil {
			return nil, nil, fmt.Errorf("aescryptctl: read header salt: %w", err)
		}
	}

	iv = make([]byte, consts.IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, nil, fmt.Errorf("aescryptctl: read header iv: %w", err)
	}
	return salt, iv, nil
}
