package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sshaes/aescipher/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark independent-context throughput under the configured algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyDebugFlag()

		info, err := resolveAlgorithm()
		if err != nil {
			return err
		}

		workers, _ := cmd.Flags().GetInt("workers")
		blocks, _ := cmd.Flags().GetInt("blocks")

		result, err := bench.Run(info.Name, workers, blocks)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d workers x %d blocks = %d bytes in %s (%.2f MB/s)\n",
			result.Algorithm, result.Workers, result.BlocksPerWorker, result.BytesProcessed,
			result.Duration, result.ThroughputMBps())
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("workers", 4, "number of independent Cipher contexts run concurrently")
	benchCmd.Flags().Int("blocks", 100000, "number of 16-byte blocks each worker encrypts")
}
