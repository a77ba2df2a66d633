// Package seekfs layers random-access CTR-mode encryption over an
// absfs.FileSystem backing store. Unlike the core Cipher's CTR-mode
// EncryptInPlace/DecryptInPlace, which only ever advance the counter by
// one block at a time over a
// sequential span, a seekable file needs to jump straight to the
// counter value for an arbitrary byte offset — so this package derives
// that counter directly from the offset instead of replaying
// Increment. It is confidentiality-only: spec.md's Non-goals exclude
// authenticated modes, so there is no integrity tag here, and a
// corrupted backing file decrypts to corrupted plaintext silently.
package seekfs

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/absfs/absfs"
	"github.com/google/uuid"

	"github.com/sshaes/aescipher/internal/block"
	"github.com/sshaes/aescipher/internal/consts"
	"github.com/sshaes/aescipher/internal/keyschedule"
)

// headerSize is the length of the per-file base-counter prefix stored at
// the start of the backing file, ahead of the ciphertext payload.
const headerSize = consts.IVSize

// ErrShortHeader is returned when an existing backing file is too short
// to hold the base-counter header.
var ErrShortHeader = errors.New("seekfs: backing file too short for a header")

// backingFile is the subset of absfs.File this package needs; any
// absfs.File satisfies it structurally.
type backingFile interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Truncate(size int64) error
}

// File is a CTR-mode encrypted view over a backing file. Reads and
// writes may occur at any offset; Seek never needs to replay earlier
// block operations to reposition.
type File struct {
	base        backingFile
	schedule    *keyschedule.Schedule
	impl        block.Impl
	nr          int
	baseCounter [consts.IVSize]byte
	offset      int64
}

// Create opens name on fs for encrypted read/write, generating a fresh
// random base counter (from a version-4 UUID, which is exactly 16
// bytes) and writing it as the file's header. Any existing content is
// truncated, matching os.O_TRUNC semantics.
func Create(fs absfs.FileSystem, name string, sched *keyschedule.Schedule, impl block.Impl) (*File, error) {
	base, err := fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("seekfs: create %s: %w", name, err)
	}

	var counter [consts.IVSize]byte
	copy(counter[:], uuid.New()[:])

	if _, err := base.Write(counter[:]); err != nil {
		base.Close()
		return nil, fmt.Errorf("seekfs: write header: %w", err)
	}

	return &File{
		base:        base,
		schedule:    sched,
		impl:        impl,
		nr:          sched.Bits.Nr(),
		baseCounter: counter,
	}, nil
}

// Open opens an existing encrypted file on fs for read/write, reading
// back its base-counter header.
func Open(fs absfs.FileSystem, name string, sched *keyschedule.Schedule, impl block.Impl) (*File, error) {
	base, err := fs.OpenFile(name, os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("seekfs: open %s: %w", name, err)
	}

	var counter [consts.IVSize]byte
	if _, err := io.ReadFull(base, counter[:]); err != nil {
		base.Close()
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrShortHeader
		}
		return nil, fmt.Errorf("seekfs: read header: %w", err)
	}

	return &File{
		base:        base,
		schedule:    sched,
		impl:        impl,
		nr:          sched.Bits.Nr(),
		baseCounter: counter,
	}, nil
}

// counterAt derives the 128-bit big-endian counter value for block number
// blockIndex by adding it to the file's base counter, wrapping modulo
// 2^128 per spec section 4.4's counter-wrap policy.
func counterAt(base [consts.IVSize]byte, blockIndex int64) [consts.IVSize]byte {
	modulus := new(big.Int).Lsh(big.NewInt(1), 128)

	v := new(big.Int).SetBytes(base[:])
	v.Add(v, big.NewInt(blockIndex))
	v.Mod(v, modulus)

	var out [consts.IVSize]byte
	raw := v.Bytes()
	copy(out[consts.IVSize-len(raw):], raw)
	return out
}

// keystreamAt computes Ek(counterAt(base, blockIndex)).
func (f *File) keystreamAt(blockIndex int64) [consts.BlockSize]byte {
	counter := counterAt(f.baseCounter, blockIndex)
	var ks [consts.BlockSize]byte
	block.Encrypt(ks[:], counter[:], f.schedule.Forward, f.nr, f.impl)
	return ks
}

// transform XORs p, which starts at absolute plaintext offset off,
// against the keystream for each block p spans.
func (f *File) transform(p []byte, off int64) {
	for i := 0; i < len(p); {
		blockIndex := (off + int64(i)) / consts.BlockSize
		withinBlock := int((off + int64(i)) % consts.BlockSize)

		ks := f.keystreamAt(blockIndex)
		n := consts.BlockSize - withinBlock
		if n > len(p)-i {
			n = len(p) - i
		}
		for j := 0; j < n; j++ {
			p[i+j] ^= ks[withinBlock+j]
		}
		i += n
	}
}

// Read decrypts len(p) bytes starting at the current offset.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.base.Read(p)
	if n > 0 {
		f.transform(p[:n], f.offset)
		f.offset += int64(n)
	}
	return n, err
}

// ReadAt decrypts len(p) bytes starting at the given plaintext offset,
// without disturbing the file's current offset.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	seeker, ok := f.base.(io.ReaderAt)
	if !ok {
		return 0, errors.New("seekfs: backing file does not support ReadAt")
	}
	n, err := seeker.ReadAt(p, off+headerSize)
	if n > 0 {
		f.transform(p[:n], off)
	}
	return n, err
}

// Write encrypts p and writes it at the current offset.
func (f *File) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)
	f.transform(buf, f.offset)

	n, err := f.base.Write(buf)
	f.offset += int64(n)
	return n, err
}

// Seek repositions the plaintext offset, delegating to the backing
// file with the header length added in.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var headerAdjusted int64
	switch whence {
	case io.SeekStart:
		headerAdjusted = offset + headerSize
	default:
		headerAdjusted = offset
	}

	pos, err := f.base.Seek(headerAdjusted, whence)
	if err != nil {
		return 0, err
	}

	f.offset = pos - headerSize
	return f.offset, nil
}

// Truncate resizes the plaintext content to size bytes.
func (f *File) Truncate(size int64) error {
	return f.base.Truncate(size + headerSize)
}

// Close closes the backing file.
func (f *File) Close() error {
	return f.base.Close()
}
