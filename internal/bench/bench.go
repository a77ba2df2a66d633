// Package bench measures the independent-context throughput property
// from spec section 5: "Independent contexts are fully independent and
// may be used in parallel without coordination." Each worker owns its
// own Cipher end to end — no sharing, no locking.
package bench

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/atomic"

	"github.com/sshaes/aescipher"
)

// Result summarizes one benchmark run.
type Result struct {
	Algorithm       string
	Workers         int
	BlocksPerWorker int
	BytesProcessed  int64
	Duration        time.Duration
}

// ThroughputMBps returns the measured throughput in megabytes per second.
func (r Result) ThroughputMBps() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.BytesProcessed) / r.Duration.Seconds() / (1 << 20)
}

// Run spins up workers independent Ciphers, each encrypting
// blocksPerWorker blocks in place, and reports aggregate throughput.
func Run(algorithm string, workers, blocksPerWorker int) (Result, error) {
	if workers <= 0 || blocksPerWorker <= 0 {
		return Result{}, fmt.Errorf("bench: workers and blocksPerWorker must be positive")
	}

	info, err := aescipher.Lookup(algorithm)
	if err != nil {
		return Result{}, err
	}

	processed := atomic.NewInt64(0)
	p := pool.New().WithMaxGoroutines(workers).WithErrors()

	start := time.Now()
	for i := 0; i < workers; i++ {
		p.Go(func() error {
			return runWorker(algorithm, info.KeyBits.KeyBytes(), blocksPerWorker, processed)
		})
	}
	if err := p.Wait(); err != nil {
		return Result{}, fmt.Errorf("bench: worker failed: %w", err)
	}
	elapsed := time.Since(start)

	return Result{
		Algorithm:       algorithm,
		Workers:         workers,
		BlocksPerWorker: blocksPerWorker,
		BytesProcessed:  processed.Load(),
		Duration:        elapsed,
	}, nil
}

func runWorker(algorithm string, keyBytes, blocksPerWorker int, processed *atomic.Int64) error {
	c, err := aescipher.New(algorithm)
	if err != nil {
		return err
	}
	defer c.Free()

	key := make([]byte, keyBytes)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	if err := c.SetKey(key); err != nil {
		return err
	}

	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		return fmt.Errorf("generate iv: %w", err)
	}
	if err := c.SetIV(iv); err != nil {
		return err
	}

	span := make([]byte, 16)
	for b := 0; b < blocksPerWorker; b++ {
		if err := c.EncryptInPlace(span); err != nil {
			return err
		}
	}
	processed.Add(int64(blocksPerWorker) * 16)
	return nil
}
