package block

import (
	"encoding/hex"
	"testing"

	"github.com/sshaes/aescipher/internal/keyschedule"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// These are the single-block known-answer vectors from FIPS-197,
// exercised as one ECB block (CBC with a zero IV, one block).
func TestEncryptPortableKnownAnswers(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		plain  string
		cipher string
	}{
		{
			"aes128",
			"000102030405060708090a0b0c0d0e0f",
			"00112233445566778899aabbccddeeff",
			"69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			"aes192",
			"000102030405060708090a0b0c0d0e0f1011121314151617",
			"00112233445566778899aabbccddeeff",
			"dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			"aes256",
			"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			"00112233445566778899aabbccddeeff",
			"8ea2b7ca516745bfeafc49904b496089",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sched, err := keyschedule.Expand(mustHex(t, c.key))
			if err != nil {
				t.Fatalf("Expand: %v", err)
			}

			plain := mustHex(t, c.plain)
			want := mustHex(t, c.cipher)
			nr := sched.Bits.Nr()

			got := make([]byte, 16)
			EncryptPortable(got, plain, sched.Forward, nr)
			if hex.EncodeToString(got) != hex.EncodeToString(want) {
				t.Fatalf("encrypt = %x, want %x", got, want)
			}

			back := make([]byte, 16)
			DecryptPortable(back, got, sched.Inverse, nr)
			if hex.EncodeToString(back) != hex.EncodeToString(plain) {
				t.Fatalf("decrypt(encrypt(p)) = %x, want %x", back, plain)
			}
		})
	}
}
