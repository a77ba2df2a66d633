// Package tables builds the AES T-tables: four tables (E0-E3) that fuse
// SubBytes+ShiftRows+MixColumns for the forward round, and four (D0-D3)
// that fuse InvSubBytes+InvMixColumns for the inverse round. Each table
// collapses a per-byte round step into a single 32-bit XOR term, the
// classic table-based AES round (the same shape as the standard
// library's crypto/aes te0-te3/td0-td3 tables).
package tables

import (
	"github.com/sshaes/aescipher/internal/galois"
	"github.com/sshaes/aescipher/internal/sbox"
)

var (
	E0, E1, E2, E3 [256]uint32
	D0, D1, D2, D3 [256]uint32
)

func word(a, b, c, d byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

// rotr8 rotates a 32-bit word right by one byte.
func rotr8(w uint32) uint32 {
	return (w >> 8) | (w << 24)
}

func init() {
	for x := 0; x < 256; x++ {
		s := sbox.Sbox[x]
		s2 := galois.Gmul(s, 2)
		s3 := galois.Gmul(s, 3)

		e0 := word(s2, s, s, s3)
		E0[x] = e0
		E1[x] = rotr8(e0)
		E2[x] = rotr8(E1[x])
		E3[x] = rotr8(E2[x])

		si := sbox.SboxInv[x]
		d0 := word(
			galois.Gmul(si, 0x0e),
			galois.Gmul(si, 0x09),
			galois.Gmul(si, 0x0d),
			galois.Gmul(si, 0x0b),
		)
		D0[x] = d0
		D1[x] = rotr8(d0)
		D2[x] = rotr8(D1[x])
		D3[x] = rotr8(D2[x])
	}
}
