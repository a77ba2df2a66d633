package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch [encrypt|decrypt] <in-dir> <out-dir>",
	Short: "Run encrypt or decrypt concurrently over every regular file in a directory",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyDebugFlag()
		return runBatch(args[0], args[1], args[2])
	},
}

func init() {
	batchCmd.Flags().Int("concurrency", 4, "maximum number of files processed at once")
}

func runBatch(operation, inDir, outDir string) error {
	var run func(in, out string) error
	switch operation {
	case "encrypt":
		run = runEncrypt
	case "decrypt":
		run = runDecrypt
	default:
		return fmt.Errorf("aescryptctl: batch operation must be \"encrypt\" or \"decrypt\", got %q", operation)
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("aescryptctl: read dir %s: %w", inDir, err)
	}
	if err := os.MkdirAll(outDir, 0o700); err != nil {
		return fmt.Errorf("aescryptctl: create dir %s: %w", outDir, err)
	}

	concurrency, _ := batchCmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)

	var mu sync.Mutex
	var combined error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		inPath := filepath.Join(inDir, name)
		outPath := filepath.Join(outDir, name)

		g.Go(func() error {
			if err := run(inPath, outPath); err != nil {
				mu.Lock()
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
			return nil
		})
	}

	// g never returns an error itself: per-file failures are collected
	// into combined instead of aborting the rest of the batch.
	_ = g.Wait()

	return combined
}
