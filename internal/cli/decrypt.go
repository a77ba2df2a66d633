package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sshaes/aescipher/internal/padding"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <in> <out>",
	Short: "Decrypt a file previously written by encrypt",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyDebugFlag()
		return runDecrypt(args[0], args[1])
	},
}

func runDecrypt(inPath, outPath string) error {
	info, err := resolveAlgorithm()
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("aescryptctl: open %s: %w", inPath, err)
	}
	defer in.Close()

	salt, iv, err := readHeader(in)
	if err != nil {
		return err
	}

	key, err := resolveKeyForDecrypt(info, salt)
	if err != nil {
		return err
	}

	ciphertext, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("aescryptctl: read ciphertext: %w", err)
	}

	c, err := newKeyedCipher(info.Name, key, iv)
	if err != nil {
		return err
	}
	defer c.Free()

	if err := c.DecryptInPlace(ciphertext); err != nil {
		return fmt.Errorf("aescryptctl: decrypt: %w", err)
	}

	plaintext, err := padding.PKCS7Unpad(ciphertext)
	if err != nil {
		return fmt.Errorf("aescryptctl: unpad (wrong key or corrupted file?): %w", err)
	}

	if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
		return fmt.Errorf("aescryptctl: write %s: %w", outPath, err)
	}

	slog.Info("decrypted file", "in", inPath, "out", outPath, "algorithm", info.Name, "bytes", len(plaintext))
	return nil
}
