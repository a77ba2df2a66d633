// Package consts defines constant values shared by the AES implementation.
package consts

const (
	// BlockSize is the size of an AES block in bytes, fixed regardless of key size.
	BlockSize = 16

	// WordSize is the size in bytes of one word of the key schedule.
	WordSize = 4

	// IVSize is the size of the initialization vector / counter in bytes.
	IVSize = BlockSize
)

// KeyBits enumerates the three supported AES key sizes.
type KeyBits int

const (
	Bits128 KeyBits = 128
	Bits192 KeyBits = 192
	Bits256 KeyBits = 256
)

// Nk returns the number of 32-bit words in the user key.
func (b KeyBits) Nk() int {
	return int(b) / 32
}

// Nr returns the number of AES rounds for the given key size.
func (b KeyBits) Nr() int {
	return b.Nk() + 6
}

// KeyBytes returns the size of the raw key in bytes.
func (b KeyBits) KeyBytes() int {
	return int(b) / 8
}

// Valid reports whether b is one of the three supported key sizes.
func (b KeyBits) Valid() bool {
	switch b {
	case Bits128, Bits192, Bits256:
		return true
	default:
		return false
	}
}

// KeyBitsFromLen maps a raw key length in bytes to the matching KeyBits,
// per section 3: 16->128, 24->192, 32->256.
func KeyBitsFromLen(n int) (KeyBits, bool) {
	switch n {
	case 16:
		return Bits128, true
	case 24:
		return Bits192, true
	case 32:
		return Bits256, true
	default:
		return 0, false
	}
}

// ScheduleWords returns the number of 32-bit words in the forward (and
// inverse) key schedule: (Nr+1)*4.
func (b KeyBits) ScheduleWords() int {
	return (b.Nr() + 1) * 4
}
