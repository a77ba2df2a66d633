// Package block implements the ECB-level AES primitive: one 16-byte block
// in, one 16-byte block out, no chaining. EncryptPortable/DecryptPortable
// are the T-table engine that every architecture can run; Encrypt/Decrypt
// dispatch to a hardware-accelerated path when one is available.
package block

import (
	"encoding/binary"

	"github.com/sshaes/aescipher/internal/sbox"
	"github.com/sshaes/aescipher/internal/tables"
)

// EncryptPortable runs one forward AES round sequence over src into dst
// using the T-table engine, for round key schedule rk (nr+1 round keys,
// (nr+1)*4 words) and round count nr.
func EncryptPortable(dst, src []byte, rk []uint32, nr int) {
	var s [4]uint32
	for i := range s {
		s[i] = binary.BigEndian.Uint32(src[4*i : 4*i+4])
	}

	keyPtr := 0
	for i := range s {
		s[i] ^= rk[keyPtr+i]
	}
	keyPtr += 4

	var n [4]uint32
	for round := 1; round < nr; round++ {
		for i := 0; i < 4; i++ {
			n[i] = tables.E0[byte(s[i]>>24)] ^
				tables.E1[byte(s[(i+1)%4]>>16)] ^
				tables.E2[byte(s[(i+2)%4]>>8)] ^
				tables.E3[byte(s[(i+3)%4])]
		}
		s = n
		for i := range s {
			s[i] ^= rk[keyPtr+i]
		}
		keyPtr += 4
	}

	for i := 0; i < 4; i++ {
		n[i] = uint32(sbox.Sbox[byte(s[i]>>24)])<<24 |
			uint32(sbox.Sbox[byte(s[(i+1)%4]>>16)])<<16 |
			uint32(sbox.Sbox[byte(s[(i+2)%4]>>8)])<<8 |
			uint32(sbox.Sbox[byte(s[(i+3)%4])])
	}
	s = n
	for i := range s {
		s[i] ^= rk[keyPtr+i]
	}

	for i := range s {
		binary.BigEndian.PutUint32(dst[4*i:4*i+4], s[i])
	}
}

// DecryptPortable is the inverse of EncryptPortable: rk must be the
// inverse key schedule produced by keyschedule.Expand.
func DecryptPortable(dst, src []byte, rk []uint32, nr int) {
	var s [4]uint32
	for i := range s {
		s[i] = binary.BigEndian.Uint32(src[4*i : 4*i+4])
	}

	keyPtr := 0
	for i := range s {
		s[i] ^= rk[keyPtr+i]
	}
	keyPtr += 4

	var n [4]uint32
	for round := 1; round < nr; round++ {
		for i := 0; i < 4; i++ {
			n[i] = tables.D0[byte(s[i]>>24)] ^
				tables.D1[byte(s[(i+3)%4]>>16)] ^
				tables.D2[byte(s[(i+2)%4]>>8)] ^
				tables.D3[byte(s[(i+1)%4])]
		}
		s = n
		for i := range s {
			s[i] ^= rk[keyPtr+i]
		}
		keyPtr += 4
	}

	for i := 0; i < 4; i++ {
		n[i] = uint32(sbox.SboxInv[byte(s[i]>>24)])<<24 |
			uint32(sbox.SboxInv[byte(s[(i+3)%4]>>16)])<<16 |
			uint32(sbox.SboxInv[byte(s[(i+2)%4]>>8)])<<8 |
			uint32(sbox.SboxInv[byte(s[(i+1)%4])])
	}
	s = n
	for i := range s {
		s[i] ^= rk[keyPtr+i]
	}

	for i := range s {
		binary.BigEndian.PutUint32(dst[4*i:4*i+4], s[i])
	}
}
