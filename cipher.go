// Package aescipher implements the AES block cipher (FIPS-197) with a
// stateful cipher object exposing the three bulk modes the SSH transport
// layer needs: CBC encryption, CBC decryption, and SDCTR (counter) mode.
//
// A Cipher is constructed from one of the algorithm names in the
// registry (see Lookup), keyed with SetKey, given a starting IV with
// SetIV, and then driven block-span by block-span with EncryptInPlace
// and DecryptInPlace (for CTR algorithms both run the same counter-mode
// operation). The IV/counter state is mutated in
// place by every call so a Cipher can be fed a stream one span at a
// time without the caller tracking chaining state itself.
package aescipher

import (
	"runtime"

	"github.com/sshaes/aescipher/internal/block"
	"github.com/sshaes/aescipher/internal/consts"
	"github.com/sshaes/aescipher/internal/keyschedule"
	"github.com/sshaes/aescipher/internal/modes"
)

const blockSize = consts.BlockSize

// Mode selects which bulk construction a Cipher wraps the raw ECB
// primitive in.
type Mode int

const (
	ModeCBC Mode = iota
	ModeCTR
)

func (m Mode) String() string {
	if m == ModeCTR {
		return "ctr"
	}
	return "cbc"
}

// AlgorithmInfo is one row of the SSH algorithm-name registry (spec
// section 6): a key size and a mode, both block size and IV size always
// being 16 bytes.
type AlgorithmInfo struct {
	Name    string
	KeyBits consts.KeyBits
	Mode    Mode
}

// registry lists the seven externally visible SSH transport cipher
// names, each bound to one (key-size, mode) pair.
var registry = map[string]AlgorithmInfo{
	"aes128-cbc":                  {Name: "aes128-cbc", KeyBits: consts.Bits128, Mode: ModeCBC},
	"aes192-cbc":                  {Name: "aes192-cbc", KeyBits: consts.Bits192, Mode: ModeCBC},
	"aes256-cbc":                  {Name: "aes256-cbc", KeyBits: consts.Bits256, Mode: ModeCBC},
	"rijndael-cbc@lysator.liu.se": {Name: "rijndael-cbc@lysator.liu.se", KeyBits: consts.Bits256, Mode: ModeCBC},
	"aes128-ctr":                  {Name: "aes128-ctr", KeyBits: consts.Bits128, Mode: ModeCTR},
	"aes192-ctr":                  {Name: "aes192-ctr", KeyBits: consts.Bits192, Mode: ModeCTR},
	"aes256-ctr":                  {Name: "aes256-ctr", KeyBits: consts.Bits256, Mode: ModeCTR},
}

// Lookup resolves an SSH algorithm name to its key size and mode.
func Lookup(name string) (AlgorithmInfo, error) {
	info, ok := registry[name]
	if !ok {
		return AlgorithmInfo{}, UnknownAlgorithmError{Name: name}
	}
	return info, nil
}

// Algorithms returns the names of every registered algorithm, in no
// particular order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Cipher is a stateful handle over one key and one running IV/counter,
// matching the CipherContext data model in spec section 3. It is not
// safe for concurrent use by multiple goroutines; independent Ciphers
// are fully independent.
type Cipher struct {
	info AlgorithmInfo

	schedule *keyschedule.Schedule
	impl     block.Impl

	iv    [consts.IVSize]byte
	ready bool
}

// New allocates a Cipher bound to the named algorithm. The returned
// Cipher is uninitialized until SetKey is called.
func New(algorithm string) (*Cipher, error) {
	info, err := Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return &Cipher{info: info}, nil
}

// SetKey derives both round-key schedules from key and selects the
// block implementation (portable or hardware) for the lifetime of the
// Cipher. key's length must match the algorithm's declared key size.
func (c *Cipher) SetKey(key []byte) error {
	if len(key) != c.info.KeyBits.KeyBytes() {
		return KeySizeError{Len: len(key)}
	}

	sched, err := keyschedule.Expand(key)
	if err != nil {
		return KeySizeError{Len: len(key)}
	}

	if c.schedule != nil {
		c.schedule.Wipe()
	}
	c.schedule = sched
	c.impl = block.Select()
	c.ready = true
	return nil
}

// SetIV installs a 16-byte starting IV (CBC) or counter (CTR). It may be
// called at any time, including between block operations, per spec
// section 3's lifecycle.
func (c *Cipher) SetIV(iv []byte) error {
	if len(iv) != consts.IVSize {
		return IVSizeError{Len: len(iv)}
	}
	copy(c.iv[:], iv)
	return nil
}

func (c *Cipher) checkReady() error {
	if !c.ready {
		return UninitializedCipherError{}
	}
	return nil
}

func checkSpan(span []byte) error {
	if len(span) == 0 || len(span)%blockSize != 0 {
		return BlockLengthError{Len: len(span)}
	}
	return nil
}

// EncryptInPlace transforms span in place under CBC or CTR (whichever
// the bound algorithm selects) and advances the IV/counter state. span's
// length must be a positive multiple of the block size.
func (c *Cipher) EncryptInPlace(span []byte) error {
	if err := c.checkReady(); err != nil {
		return err
	}
	if err := checkSpan(span); err != nil {
		return err
	}

	nr := c.info.KeyBits.Nr()
	switch c.info.Mode {
	case ModeCTR:
		return modes.CTR(c.schedule.Forward, nr, c.impl, c.iv[:], span)
	default:
		return modes.CBCEncrypt(c.schedule.Forward, nr, c.impl, c.iv[:], span)
	}
}

// DecryptInPlace transforms span in place, the inverse of
// EncryptInPlace. For CTR algorithms this is the identical operation to
// EncryptInPlace (CTR is its own inverse); CBC decrypt requires the
// distinct inverse schedule and chaining rule.
func (c *Cipher) DecryptInPlace(span []byte) error {
	if err := c.checkReady(); err != nil {
		return err
	}
	if err := checkSpan(span); err != nil {
		return err
	}

	nr := c.info.KeyBits.Nr()
	switch c.info.Mode {
	case ModeCTR:
		return modes.CTR(c.schedule.Forward, nr, c.impl, c.iv[:], span)
	default:
		return modes.CBCDecrypt(c.schedule.Inverse, nr, c.impl, c.iv[:], span)
	}
}

// Free scrubs all secret material held by the Cipher: both round-key
// schedules and the running IV/counter. It must be called exactly once,
// after which the Cipher is no longer usable.
func (c *Cipher) Free() {
	if c.schedule != nil {
		c.schedule.Wipe()
		c.schedule = nil
	}
	wipe(c.iv[:])
	c.ready = false
}

// wipe overwrites b with zeros. runtime.KeepAlive pins b past the final
// write so the compiler cannot prove the store is dead and eliminate it,
// per spec section 5/9's requirement that the wipe survive dead-store
// elimination.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
