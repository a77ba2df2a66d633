package aescipher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownAlgorithms(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
	}{
		{"aes128-cbc", ModeCBC},
		{"aes192-cbc", ModeCBC},
		{"aes256-cbc", ModeCBC},
		{"rijndael-cbc@lysator.liu.se", ModeCBC},
		{"aes128-ctr", ModeCTR},
		{"aes192-ctr", ModeCTR},
		{"aes256-ctr", ModeCTR},
	}
	for _, tc := range cases {
		info, err := Lookup(tc.name)
		require.NoError(t, err, "Lookup(%q)", tc.name)
		require.Equal(t, tc.mode, info.Mode, "Lookup(%q).Mode", tc.name)
	}
}

func TestLookupUnknownAlgorithm(t *testing.T) {
	_, err := Lookup("aes128-gcm")
	require.Error(t, err, "GCM is out of scope")
}

func TestCBCRoundTripThroughCipher(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plain, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51")
	plain = append(plain, make([]byte, 16-len(plain)%16)...)

	enc, err := New("aes128-cbc")
	require.NoError(t, err)
	require.NoError(t, enc.SetKey(key))
	require.NoError(t, enc.SetIV(iv))
	defer enc.Free()

	ciphertext := append([]byte{}, plain...)
	require.NoError(t, enc.EncryptInPlace(ciphertext))

	dec, err := New("aes128-cbc")
	require.NoError(t, err)
	require.NoError(t, dec.SetKey(key))
	require.NoError(t, dec.SetIV(iv))
	defer dec.Free()

	recovered := append([]byte{}, ciphertext...)
	require.NoError(t, dec.DecryptInPlace(recovered))
	require.Equal(t, plain, recovered)
}

func TestCTRRoundTripThroughCipher(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	iv, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	plain, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")

	c, err := New("aes128-ctr")
	require.NoError(t, err)
	require.NoError(t, c.SetKey(key))
	require.NoError(t, c.SetIV(iv))
	defer c.Free()

	ciphertext := append([]byte{}, plain...)
	require.NoError(t, c.EncryptInPlace(ciphertext))
	wantCipher, _ := hex.DecodeString("874d6191b620e3261bef6864990db6ce")
	require.Equal(t, wantCipher, ciphertext)

	// CTR is its own inverse: resetting the IV and running
	// DecryptInPlace over the ciphertext recovers the plaintext.
	require.NoError(t, c.SetIV(iv))
	require.NoError(t, c.DecryptInPlace(ciphertext))
	require.Equal(t, plain, ciphertext)
}

func TestSetKeyRejectsWrongLength(t *testing.T) {
	c, err := New("aes128-cbc")
	require.NoError(t, err)

	err = c.SetKey(make([]byte, 10))
	require.Error(t, err, "10-byte key should fail for aes128-cbc")
}

func TestBlockOperationBeforeSetKeyFails(t *testing.T) {
	c, err := New("aes128-cbc")
	require.NoError(t, err)
	require.NoError(t, c.SetIV(make([]byte, 16)))

	span := make([]byte, 16)
	err = c.EncryptInPlace(span)
	require.Error(t, err, "EncryptInPlace before SetKey should fail")
}

func TestFreeWipesSchedule(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	c, err := New("aes128-cbc")
	require.NoError(t, err)
	require.NoError(t, c.SetKey(key))

	sched := c.schedule
	c.Free()

	for _, w := range sched.Forward {
		require.Zero(t, w, "Free did not wipe the forward schedule")
	}
	require.False(t, c.ready, "Free should leave the cipher not ready")
}

func TestRejectsNonMultipleOf16(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	c, err := New("aes128-cbc")
	require.NoError(t, err)
	require.NoError(t, c.SetKey(key))
	require.NoError(t, c.SetIV(make([]byte, 16)))
	defer c.Free()

	err = c.EncryptInPlace(make([]byte, 17))
	require.Error(t, err, "17-byte span should fail")

	err = c.EncryptInPlace(nil)
	require.Error(t, err, "zero-length span should fail")
}
