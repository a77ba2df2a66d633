// Package modes wraps the ECB block primitive into the three bulk modes
// the SSH transport layer needs: CBC encrypt, CBC decrypt, and SDCTR
// (counter) mode. Every operation processes its span in place and leaves
// the caller's IV/counter slice holding the next block operation's
// starting state, per spec section 4.4.
package modes

import (
	"errors"

	"github.com/sshaes/aescipher/internal/block"
	"github.com/sshaes/aescipher/internal/consts"
	"github.com/sshaes/aescipher/internal/ctrmode"
)

// ErrSpanLength is the caller-contract violation from spec section 3:
// block operations require a positive multiple of 16 bytes.
var ErrSpanLength = errors.New("modes: span length must be a positive multiple of 16")

// ErrIVLength is returned when the IV/counter slice is not exactly one
// block long.
var ErrIVLength = errors.New("modes: iv must be 16 bytes")

func checkSpan(data []byte) error {
	if len(data) == 0 || len(data)%consts.BlockSize != 0 {
		return ErrSpanLength
	}
	return nil
}

func checkIV(iv []byte) error {
	if len(iv) != consts.IVSize {
		return ErrIVLength
	}
	return nil
}

func xorBlock(dst, a, b []byte) {
	for i := 0; i < consts.BlockSize; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// CBCEncrypt runs CBC encryption over data in place: C = Ek(B xor chain),
// chain = C. iv is both the starting chain value and, on return, the
// last ciphertext block produced.
func CBCEncrypt(forward []uint32, nr int, impl block.Impl, iv, data []byte) error {
	if err := checkSpan(data); err != nil {
		return err
	}
	if err := checkIV(iv); err != nil {
		return err
	}

	chain := make([]byte, consts.BlockSize)
	copy(chain, iv)

	var masked [consts.BlockSize]byte
	for off := 0; off < len(data); off += consts.BlockSize {
		block_ := data[off : off+consts.BlockSize]
		xorBlock(masked[:], block_, chain)
		block.Encrypt(block_, masked[:], forward, nr, impl)
		copy(chain, block_)
	}

	copy(iv, chain)
	return nil
}

// CBCDecrypt runs CBC decryption over data in place: P = Dk(C) xor chain,
// chain = C (captured before decrypting, since decryption is in place).
func CBCDecrypt(inverse []uint32, nr int, impl block.Impl, iv, data []byte) error {
	if err := checkSpan(data); err != nil {
		return err
	}
	if err := checkIV(iv); err != nil {
		return err
	}

	chain := make([]byte, consts.BlockSize)
	copy(chain, iv)

	var decrypted [consts.BlockSize]byte
	var nextChain [consts.BlockSize]byte
	for off := 0; off < len(data); off += consts.BlockSize {
		ciphertextBlock := data[off : off+consts.BlockSize]
		copy(nextChain[:], ciphertextBlock)

		block.Decrypt(decrypted[:], ciphertextBlock, inverse, nr, impl)
		xorBlock(ciphertextBlock, decrypted[:], chain)

		copy(chain, nextChain[:])
	}

	copy(iv, chain)
	return nil
}

// CTR runs SDCTR mode over data in place. It is its own inverse: the same
// call encrypts or decrypts, XORing each block against Ek(counter) and
// then advancing counter by one, wrapping modulo 2^128.
func CTR(forward []uint32, nr int, impl block.Impl, iv, data []byte) error {
	if err := checkSpan(data); err != nil {
		return err
	}
	if err := checkIV(iv); err != nil {
		return err
	}

	counter := ctrmode.New(iv)

	var keystream [consts.BlockSize]byte
	for off := 0; off < len(data); off += consts.BlockSize {
		block.Encrypt(keystream[:], counter.Bytes[:], forward, nr, impl)

		dataBlock := data[off : off+consts.BlockSize]
		xorBlock(dataBlock, dataBlock, keystream[:])

		counter.Increment()
	}

	copy(iv, counter.Bytes[:])
	return nil
}
