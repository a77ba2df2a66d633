package block

import "sync"

// Impl tags which block engine a Cipher has committed to for its
// lifetime (spec section 4.6: the implementation is chosen once at
// set_key and never hot-switched).
type Impl int

const (
	ImplPortable Impl = iota
	ImplHardware
)

func (i Impl) String() string {
	if i == ImplHardware {
		return "hardware"
	}
	return "portable"
}

// hwAvailable caches the CPU feature probe for the lifetime of the
// process, per spec section 4.5/9: detection "may be performed once per
// context or once per process"; this module does it once per process.
var hwAvailable = sync.OnceValue(detectHardware)

// HardwareAvailable reports whether the current CPU and build support the
// AES-NI round instructions this package's hardware path requires.
func HardwareAvailable() bool {
	return hwAvailable()
}

// Select picks the implementation a new Cipher should commit to.
func Select() Impl {
	if HardwareAvailable() {
		return ImplHardware
	}
	return ImplPortable
}

// packRoundKeys flattens a (nr+1)*4-word schedule into (nr+1) 16-byte
// round keys in the same big-endian byte layout EncryptPortable uses, so
// the hardware path consumes byte-identical round key material to the
// portable path — the two engines differ only in how they run the round
// function, never in what key bytes they add.
func packRoundKeys(rk []uint32, nr int) []byte {
	out := make([]byte, (nr+1)*16)
	for i, w := range rk[:(nr+1)*4] {
		out[4*i+0] = byte(w >> 24)
		out[4*i+1] = byte(w >> 16)
		out[4*i+2] = byte(w >> 8)
		out[4*i+3] = byte(w)
	}
	return out
}

// Encrypt runs one ECB block through the engine selected by impl.
func Encrypt(dst, src []byte, rk []uint32, nr int, impl Impl) {
	if impl == ImplHardware && HardwareAvailable() {
		encryptHardware(dst, src, packRoundKeys(rk, nr), nr)
		return
	}
	EncryptPortable(dst, src, rk, nr)
}

// Decrypt runs one inverse ECB block through the engine selected by impl.
// rk must be the inverse schedule (keyschedule.Schedule.Inverse).
func Decrypt(dst, src []byte, rk []uint32, nr int, impl Impl) {
	if impl == ImplHardware && HardwareAvailable() {
		decryptHardware(dst, src, packRoundKeys(rk, nr), nr)
		return
	}
	DecryptPortable(dst, src, rk, nr)
}
