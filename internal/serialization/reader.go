package serialization

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Read decodes a .rgrs checkpoint from r.
//
// The checksum and the full schema are verified before anything is
// returned; a file that passes is complete.
func Read(r io.Reader) (*Checkpoint, error) {
	fixedHeader := make([]byte, FixedHeaderSize)
	if err := readFull(r, fixedHeader, "fixed header"); err != nil {
		return nil, err
	}

	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(fixedHeader[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixedHeader[16:24])
	dataSize := binary.LittleEndian.Uint64(fixedHeader[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > MaxDataSize {
		return nil, fmt.Errorf("%w: data section of %d bytes", ErrOutOfBounds, dataSize)
	}

	headerBytes := make([]byte, headerSize)
	if err := readFull(r, headerBytes, "header JSON"); err != nil {
		return nil, err
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	if pad := padding(int64(FixedHeaderSize) + int64(headerSize)); pad > 0 {
		if err := readFull(r, make([]byte, pad), "padding"); err != nil {
			return nil, err
		}
	}

	// The tensor table must account for every data byte before the data
	// section is allocated.
	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if err := ValidateHeader(&header, int64(dataSize)); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	data := make([]byte, dataSize)
	if err := readFull(r, data, "tensor data"); err != nil {
		return nil, err
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, err
	}

	c := &Checkpoint{
		Topology:     header.Topology,
		Activations:  header.Activations,
		LearningRate: header.LearningRate,
		Epoch:        header.Epoch,
		CreatedAt:    header.CreatedAt,
		Weights:      make([][]float64, len(header.Topology)-1),
		Biases:       make([][]float64, len(header.Topology)),
	}
	for l := range c.Weights {
		c.Weights[l] = readFloats(data, header.Tensors[l])
	}
	for l := range c.Biases {
		c.Biases[l] = readFloats(data, header.Tensors[len(c.Weights)+l])
	}

	return c, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*Checkpoint, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: reading %s", ErrTruncated, what)
		}
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	return nil
}

func readFloats(data []byte, meta TensorMeta) []float64 {
	values := make([]float64, meta.Size/float64Size)
	for i := range values {
		off := meta.Offset + int64(i)*float64Size
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+float64Size]))
	}
	return values
}
