package bench

import "testing"

func TestRunProducesExpectedByteCount(t *testing.T) {
	const workers = 4
	const blocksPerWorker = 8

	result, err := Run("aes128-ctr", workers, blocksPerWorker)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := int64(workers * blocksPerWorker * 16)
	if result.BytesProcessed != want {
		t.Fatalf("BytesProcessed = %d, want %d", result.BytesProcessed, want)
	}
	if result.Workers != workers {
		t.Fatalf("Workers = %d, want %d", result.Workers, workers)
	}
	if result.Duration <= 0 {
		t.Fatal("Duration should be positive after a completed run")
	}
	if result.ThroughputMBps() <= 0 {
		t.Fatal("ThroughputMBps should be positive for a nonzero run")
	}
}

func TestRunRejectsNonPositiveArguments(t *testing.T) {
	if _, err := Run("aes128-ctr", 0, 8); err == nil {
		t.Fatal("Run with zero workers should fail")
	}
	if _, err := Run("aes128-ctr", 4, 0); err == nil {
		t.Fatal("Run with zero blocksPerWorker should fail")
	}
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := Run("aes128-gcm", 2, 4); err == nil {
		t.Fatal("Run with an unregistered algorithm should fail")
	}
}
