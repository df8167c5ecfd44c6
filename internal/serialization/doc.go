// Package serialization provides the native .rgrs format for saving and
// loading regressors.
//
// The .rgrs format is a small, versioned binary format:
//
//	Format Structure:
//	  [0x00-0x03: Magic "RGRS"]
//	  [0x04-0x07: Version (uint32 LE)]
//	  [0x08-0x0B: Flags (uint32 LE)]
//	  [0x0C-0x0F: Reserved]
//	  [0x10-0x17: Header Size (uint64 LE)]
//	  [0x18-0x1F: Data Size (uint64 LE)]
//	  [0x20-0x3F: SHA-256 of the data section]
//	  [Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Data: float64 little-endian, weight.0..weight.L-2 then bias.0..bias.L-1]
//
// Values are stored as raw IEEE-754 bits, so a save/load round trip is exact.
// WriteFile writes to a temporary file in the destination directory and
// renames it into place, so a reader never sees a partially written model.
//
// Example usage:
//
//	// Save
//	if err := serialization.WriteFile("model.rgrs", checkpoint); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load
//	checkpoint, err := serialization.ReadFile("model.rgrs")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
