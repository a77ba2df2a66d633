package cli

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/sshaes/aescipher"
	"github.com/sshaes/aescipher/internal/keyderive"
)

// resolveAlgorithm reads the --algorithm flag and validates it against
// the registry up front, so a typo fails before any I/O happens.
func resolveAlgorithm() (aescipher.AlgorithmInfo, error) {
	name := viper.GetString("algorithm")
	info, err := aescipher.Lookup(name)
	if err != nil {
		return aescipher.AlgorithmInfo{}, err
	}
	return info, nil
}

// resolveKeyForEncrypt produces the key to encrypt with, along with the
// salt to store alongside the ciphertext when the key came from a
// passphrase (nil when --key-hex was used directly).
func resolveKeyForEncrypt(info aescipher.AlgorithmInfo) (key, salt []byte, err error) {
	if viper.GetBool("passphrase") {
		passphrase, err := readPassphrase("Passphrase: ")
		if err != nil {
			return nil, nil, err
		}
		salt, err = keyderive.NewSalt()
		if err != nil {
			return nil, nil, err
		}
		return keyderive.Derive(passphrase, salt, info.KeyBits), salt, nil
	}

	keyHex := viper.GetString("key-hex")
	if keyHex == "" {
		return nil, nil, fmt.Errorf("aescryptctl: one of --passphrase or --key-hex is required")
	}
	key, err = hex.DecodeString(keyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("aescryptctl: --key-hex is not valid hex: %w", err)
	}
	return key, nil, nil
}

// resolveKeyForDecrypt mirrors resolveKeyForEncrypt, but derives the key
// from a passphrase using the salt that was stored in the file header.
func resolveKeyForDecrypt(info aescipher.AlgorithmInfo, salt []byte) ([]byte, error) {
	if viper.GetBool("passphrase") {
		passphrase, err := readPassphrase("Passphrase: ")
		if err != nil {
			return nil, err
		}
		return keyderive.Derive(passphrase, salt, info.KeyBits), nil
	}

	keyHex := viper.GetString("key-hex")
	if keyHex == "" {
		return nil, fmt.Errorf("aescryptctl: one of --passphrase or --key-hex is required")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("aescryptctl: --key-hex is not valid hex: %w", err)
	}
	return key, nil
}

func readPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("aescryptctl: read passphrase: %w", err)
	}
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("aescryptctl: passphrase must not be empty")
	}
	return passphrase, nil
}
