package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Write encodes a checkpoint in .rgrs format to w.
//
// The checkpoint is validated against its own topology first; nothing is
// written if validation fails.
func Write(w io.Writer, c *Checkpoint) error {
	if err := ValidateCheckpoint(c); err != nil {
		return err
	}

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	header := Header{
		FormatVersion: FormatVersion,
		ModelType:     ModelTypeRegress,
		CreatedAt:     createdAt,
		Topology:      c.Topology,
		Activations:   c.Activations,
		LearningRate:  c.LearningRate,
		Epoch:         c.Epoch,
		Tensors:       expectedTensors(c.Topology),
	}

	// Data section: weights then biases, raw IEEE-754 bits
	var data bytes.Buffer
	for _, values := range c.Weights {
		writeFloats(&data, values)
	}
	for _, values := range c.Biases {
		writeFloats(&data, values)
	}
	checksum := ComputeChecksum(data.Bytes())

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	fixedHeader := make([]byte, FixedHeaderSize)
	copy(fixedHeader[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))
	// 0x08-0x0F: flags and reserved, zero
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixedHeader[24:32], uint64(data.Len()))
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}
	if pad := padding(int64(FixedHeaderSize) + int64(len(headerJSON))); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}

	return nil
}

// WriteFile atomically writes a checkpoint to path.
//
// The file is written to a temporary name in the same directory, synced,
// and renamed over path. On any error the temporary file is removed and
// path is left as it was.
func WriteFile(path string, c *Checkpoint) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close() // Best effort, may already be closed
			_ = os.Remove(tmpName)
		}
	}()

	if err = Write(tmp, c); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

func writeFloats(buf *bytes.Buffer, values []float64) {
	var b [float64Size]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		buf.Write(b[:])
	}
}
