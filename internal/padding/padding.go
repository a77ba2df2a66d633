// Package padding implements PKCS#7 padding, which the command-line
// front end uses to round file contents up to the core cipher's
// block-multiple input contract (spec section 3). The core itself never
// pads: padding is a caller concern, not part of the AES engine.
package padding

import (
	"errors"

	"github.com/sshaes/aescipher/internal/consts"
)

var errInvalidPadding = errors.New("padding: invalid PKCS#7 padding")

// PKCS7Pad rounds data up to a multiple of the block size, always
// appending at least one full block of padding so the last byte is
// unambiguous padding length on unpad.
func PKCS7Pad(data []byte) []byte {
	padLen := consts.BlockSize - len(data)%consts.BlockSize

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// PKCS7Unpad reverses PKCS7Pad. It returns an error if padded is empty
// or its trailing padding is malformed, rather than silently truncating
// garbage.
func PKCS7Unpad(padded []byte) ([]byte, error) {
	if len(padded) == 0 || len(padded)%consts.BlockSize != 0 {
		return nil, errInvalidPadding
	}

	padLen := int(padded[len(padded)-1])
	if padLen == 0 || padLen > consts.BlockSize || padLen > len(padded) {
		return nil, errInvalidPadding
	}
	for _, b := range padded[len(padded)-padLen:] {
		if int(b) != padLen {
			return nil, errInvalidPadding
		}
	}
	return padded[:len(padded)-padLen], nil
}
