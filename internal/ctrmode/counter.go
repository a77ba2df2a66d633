// Package ctrmode implements the 128-bit big-endian block counter used by
// SDCTR mode (spec section 4.4).
package ctrmode

import "github.com/sshaes/aescipher/internal/consts"

// Counter holds the 128-bit counter state as big-endian bytes, the same
// representation the IV is carried in between block operations.
type Counter struct {
	Bytes [consts.BlockSize]byte
}

// New copies a 16-byte IV into a fresh counter.
func New(iv []byte) Counter {
	var c Counter
	copy(c.Bytes[:], iv)
	return c
}

// Increment adds 1 modulo 2^128, carrying from the least significant byte
// toward the most significant one. It never errors and never refuses to
// wrap: the spec treats wrap-around as routine, not exceptional.
func (c *Counter) Increment() {
	for i := len(c.Bytes) - 1; i >= 0; i-- {
		c.Bytes[i]++
		if c.Bytes[i] != 0 {
			return
		}
	}
}
