package serialization

import (
	"errors"
	"testing"
)

// TestComputeChecksum verifies SHA-256 checksum computation.
func TestComputeChecksum(t *testing.T) {
	data := []byte("weight data")
	checksum1 := ComputeChecksum(data)
	checksum2 := ComputeChecksum(data)

	if checksum1 != checksum2 {
		t.Error("Checksums should match for identical data")
	}

	checksum3 := ComputeChecksum([]byte("other weight data"))
	if checksum1 == checksum3 {
		t.Error("Checksums should differ for different data")
	}
}

// TestValidateChecksum verifies checksum validation.
func TestValidateChecksum(t *testing.T) {
	a := ComputeChecksum([]byte{1, 2, 3})
	b := ComputeChecksum([]byte{1, 2, 4})

	if err := ValidateChecksum(a, a); err != nil {
		t.Errorf("Expected matching checksums to validate, got: %v", err)
	}
	if err := ValidateChecksum(a, b); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Expected ErrChecksumMismatch, got: %v", err)
	}
}
