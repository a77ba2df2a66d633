package sbox

import "testing"

func TestSboxKnownValues(t *testing.T) {
	cases := map[byte]byte{
		0x00: 0x63,
		0x01: 0x7c,
		0x53: 0xed,
		0xff: 0x16,
	}

	for in, want := range cases {
		if got := Sbox[in]; got != want {
			t.Errorf("Sbox[%#02x] = %#02x, want %#02x", in, got, want)
		}
	}
}

func TestSboxInvIsInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if got := SboxInv[Sbox[i]]; got != byte(i) {
			t.Fatalf("SboxInv[Sbox[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestSboxIsBijective(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := Sbox[i]
		if seen[v] {
			t.Fatalf("Sbox is not injective: value %#02x repeats", v)
		}
		seen[v] = true
	}
}
