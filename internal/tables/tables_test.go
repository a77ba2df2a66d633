package tables

import (
	"testing"

	"github.com/sshaes/aescipher/internal/galois"
	"github.com/sshaes/aescipher/internal/sbox"
)

// naiveMixColumn mixes a single state column the textbook way, used here
// only to check the E/D tables against a from-scratch computation.
func naiveMixColumn(a, b, c, d byte) (byte, byte, byte, byte) {
	r0 := galois.Gmul(2, a) ^ galois.Gmul(3, b) ^ c ^ d
	r1 := a ^ galois.Gmul(2, b) ^ galois.Gmul(3, c) ^ d
	r2 := a ^ b ^ galois.Gmul(2, c) ^ galois.Gmul(3, d)
	r3 := galois.Gmul(3, a) ^ b ^ c ^ galois.Gmul(2, d)
	return r0, r1, r2, r3
}

func TestE0MatchesSubByteMixColumn(t *testing.T) {
	for x := 0; x < 256; x++ {
		s := sbox.Sbox[x]
		r0, r1, r2, r3 := naiveMixColumn(s, 0, 0, 0)
		want := uint32(r0)<<24 | uint32(r1)<<16 | uint32(r2)<<8 | uint32(r3)
		if E0[x] != want {
			t.Fatalf("E0[%#02x] = %#08x, want %#08x", x, E0[x], want)
		}
	}
}

func TestERotationsConsistent(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := E1[x]
		want := (E0[x] >> 8) | (E0[x] << 24)
		if got != want {
			t.Fatalf("E1[%#02x] = %#08x, want rotr8(E0) = %#08x", x, got, want)
		}
	}
}

func TestD0IsInvMixColumnOfInvSbox(t *testing.T) {
	for x := 0; x < 256; x++ {
		si := sbox.SboxInv[x]
		r0, r1, r2, r3 := naiveInvMixColumn(si, 0, 0, 0)
		want := uint32(r0)<<24 | uint32(r1)<<16 | uint32(r2)<<8 | uint32(r3)
		if D0[x] != want {
			t.Fatalf("D0[%#02x] = %#08x, want %#08x", x, D0[x], want)
		}
	}
}

func naiveInvMixColumn(a, b, c, d byte) (byte, byte, byte, byte) {
	r0 := galois.Gmul(0x0e, a) ^ galois.Gmul(0x0b, b) ^ galois.Gmul(0x0d, c) ^ galois.Gmul(0x09, d)
	r1 := galois.Gmul(0x09, a) ^ galois.Gmul(0x0e, b) ^ galois.Gmul(0x0b, c) ^ galois.Gmul(0x0d, d)
	r2 := galois.Gmul(0x0d, a) ^ galois.Gmul(0x09, b) ^ galois.Gmul(0x0e, c) ^ galois.Gmul(0x0b, d)
	r3 := galois.Gmul(0x0b, a) ^ galois.Gmul(0x0d, b) ^ galois.Gmul(0x09, c) ^ galois.Gmul(0x0e, d)
	return r0, r1, r2, r3
}
