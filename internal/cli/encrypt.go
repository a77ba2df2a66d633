package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/sshaes/aescipher/internal/padding"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <in> <out>",
	Short: "Encrypt a file under the configured algorithm and key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyDebugFlag()
		return runEncrypt(args[0], args[1])
	},
}

func init() {
	encryptCmd.Flags().Int("max-mbps", 0, "throttle ciphertext output to this many megabytes/sec (0 = unlimited)")
	viper.BindPFlag("max-mbps", encryptCmd.Flags().Lookup("max-mbps"))
}

func runEncrypt(inPath, outPath string) error {
	info, err := resolveAlgorithm()
	if err != nil {
		return err
	}

	key, salt, err := resolveKeyForEncrypt(info)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("aescryptctl: read %s: %w", inPath, err)
	}
	padded := padding.PKCS7Pad(plaintext)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("aescryptctl: create %s: %w", outPath, err)
	}
	defer out.Close()

	iv, err := writeHeader(out, salt)
	if err != nil {
		return err
	}

	c, err := newKeyedCipher(info.Name, key, iv)
	if err != nil {
		return err
	}
	defer c.Free()

	if err := c.EncryptInPlace(padded); err != nil {
		return fmt.Errorf("aescryptctl: encrypt: %w", err)
	}

	if err := throttledWrite(out, padded, viper.GetInt("max-mbps")); err != nil {
		return err
	}

	slog.Info("encrypted file", "in", inPath, "out", outPath, "algorithm", info.Name, "bytes", len(plaintext))
	return nil
}

// throttledWrite writes data to w in fixed-size chunks, pacing the
// writes through limiter.WaitN when a positive rate is requested. A
// non-positive mbps disables throttling entirely.
func throttledWrite(w io.Writer, data []byte, mbps int) error {
	if mbps <= 0 {
		_, err := w.Write(data)
		return err
	}

	const chunkSize = 64 * 1024
	limiter := rate.NewLimiter(rate.Limit(mbps*(1<<20)), chunkSize)
	ctx := context.Background()

	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		if err := limiter.WaitN(ctx, len(chunk)); err != nil {
			return fmt.Errorf("aescryptctl: rate limit: %w", err)
		}
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("aescryptctl: write ciphertext: %w", err)
		}
	}
	return nil
}
