package aescipher

import "fmt"

// KeySizeError is returned by SetKey when the key length does not match
// the key size of the Cipher's algorithm. Its message lists the three
// supported AES key sizes.
type KeySizeError struct {
	Len int
}

func (e KeySizeError) Error() string {
	return fmt.Sprintf("aescipher: invalid key length %d bytes, want 16, 24, or 32", e.Len)
}

// IVSizeError is returned by SetIV when the supplied IV is not exactly
// one block long.
type IVSizeError struct {
	Len int
}

func (e IVSizeError) Error() string {
	return fmt.Sprintf("aescipher: invalid iv length %d bytes, want %d", e.Len, blockSize)
}

// BlockLengthError is returned by the block operations when the span is
// not a positive multiple of the block size.
type BlockLengthError struct {
	Len int
}

func (e BlockLengthError) Error() string {
	return fmt.Sprintf("aescipher: span length %d is not a positive multiple of %d", e.Len, blockSize)
}

// UnknownAlgorithmError is returned by Lookup and New when the algorithm
// name does not appear in the registry.
type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("aescipher: unknown algorithm %q", e.Name)
}

// UninitializedCipherError is returned when a block operation is
// attempted before SetKey has completed successfully. SetIV does not
// return it: an IV may be installed before the key.
type UninitializedCipherError struct{}

func (e UninitializedCipherError) Error() string {
	return "aescipher: cipher used before SetKey"
}
