package ctrmode

import (
	"encoding/hex"
	"testing"
)

func TestIncrementCarriesAcrossWholeCounter(t *testing.T) {
	iv, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	c := New(iv)
	c.Increment()
	got := hex.EncodeToString(c.Bytes[:])
	want := "f0f1f2f3f4f5f6f7f8f9fafbfcfdff00"
	if got != want {
		t.Fatalf("counter after increment = %s, want %s", got, want)
	}
}

func TestIncrementWrapsModulo2to128(t *testing.T) {
	iv, _ := hex.DecodeString("ffffffffffffffffffffffffffffffff")
	c := New(iv)
	c.Increment()
	want := "00000000000000000000000000000000"[:32]
	got := hex.EncodeToString(c.Bytes[:])
	if got != want {
		t.Fatalf("counter after wrap = %s, want %s", got, want)
	}
}
