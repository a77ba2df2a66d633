// Package keyschedule derives the forward and inverse AES round-key
// sequences from a raw key, per FIPS-197 section 5.2 and spec section 4.2.
package keyschedule

import (
	"encoding/binary"
	"errors"
	"runtime"

	"github.com/sshaes/aescipher/internal/consts"
	"github.com/sshaes/aescipher/internal/sbox"
	"github.com/sshaes/aescipher/internal/tables"
)

// ErrInvalidKeyLength is returned when the caller's key is not 16, 24, or
// 32 bytes.
var ErrInvalidKeyLength = errors.New("keyschedule: invalid key length")

// Schedule holds both round-key sequences for one key. Both slices are
// (Nr+1)*4 words long, one word per column of one round key.
type Schedule struct {
	Bits    consts.KeyBits
	Forward []uint32
	Inverse []uint32
}

func subWord(w uint32) uint32 {
	return uint32(sbox.Sbox[w>>24])<<24 |
		uint32(sbox.Sbox[(w>>16)&0xff])<<16 |
		uint32(sbox.Sbox[(w>>8)&0xff])<<8 |
		uint32(sbox.Sbox[w&0xff])
}

func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

// Expand derives both round-key sequences from a raw AES key of 16, 24,
// or 32 bytes.
func Expand(key []byte) (*Schedule, error) {
	bits, ok := consts.KeyBitsFromLen(len(key))
	if !ok {
		return nil, ErrInvalidKeyLength
	}

	nk := bits.Nk()
	total := bits.ScheduleWords()

	w := make([]uint32, total)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i : 4*i+4])
	}

	var rcon byte = 0x01
	for i := nk; i < total; i++ {
		temp := w[i-1]

		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ (uint32(rcon) << 24)
			rcon = xtime(rcon)
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}

		w[i] = w[i-nk] ^ temp
	}

	inv := invertSchedule(w, bits.Nr())

	return &Schedule{Bits: bits, Forward: w, Inverse: inv}, nil
}

func xtime(x byte) byte {
	if x&0x80 != 0 {
		return (x << 1) ^ 0x1b
	}
	return x << 1
}

// invertSchedule builds the decryption key schedule by reversing the
// round-key order and applying InvMixColumns to every round key except
// the first and last, per spec section 4.2. The D-tables already fuse
// InvSubBytes with InvMixColumns, so feeding them the forward S-box of a
// raw key byte (D0[S[a]]) yields InvMixColumn(a) directly.
func invertSchedule(forward []uint32, nr int) []uint32 {
	inv := make([]uint32, len(forward))

	for r := 0; r <= nr; r++ {
		for j := 0; j < 4; j++ {
			t := forward[(nr-r)*4+j]

			if r == 0 || r == nr {
				inv[r*4+j] = t
				continue
			}

			a := byte(t >> 24)
			b := byte(t >> 16)
			c := byte(t >> 8)
			d := byte(t)

			inv[r*4+j] = tables.D0[sbox.Sbox[a]] ^
				tables.D1[sbox.Sbox[b]] ^
				tables.D2[sbox.Sbox[c]] ^
				tables.D3[sbox.Sbox[d]]
		}
	}

	return inv
}

// Wipe zeroes both round-key sequences so the schedule can no longer be
// recovered from the backing arrays.
func (s *Schedule) Wipe() {
	for i := range s.Forward {
		s.Forward[i] = 0
	}
	runtime.KeepAlive(s.Forward)

	for i := range s.Inverse {
		s.Inverse[i] = 0
	}
	runtime.KeepAlive(s.Inverse)
}
