package serialization

import (
	"fmt"
	"time"
)

// Format constants.
const (
	MagicBytes       = "RGRS"
	FormatVersion    = 1    // v1: fixed header with SHA-256, JSON schema, float64 data
	HeaderAlignment  = 64   // Data section starts on a 64-byte boundary
	FixedHeaderSize  = 64   // Fixed header size (0x40 bytes)
	ChecksumSize     = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset   = 0x20 // Checksum offset in the fixed header
	ModelTypeRegress = "Regressor"
	DTypeFloat64     = "float64"
	float64Size      = 8
)

// Header represents the JSON header in a .rgrs file.
//
// Field order is part of the schema: topology, activations, learning rate,
// epoch, then the tensor table.
type Header struct {
	FormatVersion int          `json:"format_version"` // Version of the .rgrs format
	ModelType     string       `json:"model_type"`     // Always "Regressor"
	CreatedAt     time.Time    `json:"created_at"`     // When the file was written
	Topology      []int        `json:"topology"`       // Layer sizes, input first
	Activations   []string     `json:"activations"`    // One activation name per layer
	LearningRate  float64      `json:"learning_rate"`  // SGD learning rate
	Epoch         int          `json:"epoch"`          // Completed training epochs
	Tensors       []TensorMeta `json:"tensors"`        // Tensor table for the data section
}

// TensorMeta describes a tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "weight.0", "bias.2")
	DType  string `json:"dtype"`  // Always "float64"
	Shape  []int  `json:"shape"`  // [rows, cols] for weights, [n] for biases
	Offset int64  `json:"offset"` // Bytes from start of the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// Checkpoint is the complete persisted state of a regressor.
//
// Weights[l] is row-major with Topology[l] rows and Topology[l+1] columns.
type Checkpoint struct {
	Topology     []int
	Activations  []string
	LearningRate float64
	Epoch        int
	Weights      [][]float64
	Biases       [][]float64
	CreatedAt    time.Time
}

func weightName(l int) string { return fmt.Sprintf("weight.%d", l) }

func biasName(l int) string { return fmt.Sprintf("bias.%d", l) }

// expectedTensors lists the tensors a topology requires, in data order.
func expectedTensors(topology []int) []TensorMeta {
	metas := make([]TensorMeta, 0, 2*len(topology)-1)
	var offset int64
	add := func(name string, shape ...int) {
		n := 1
		for _, d := range shape {
			n *= d
		}
		size := int64(n) * float64Size
		metas = append(metas, TensorMeta{Name: name, DType: DTypeFloat64, Shape: shape, Offset: offset, Size: size})
		offset += size
	}
	for l := 0; l+1 < len(topology); l++ {
		add(weightName(l), topology[l], topology[l+1])
	}
	for l, n := range topology {
		add(biasName(l), n)
	}
	return metas
}

func padding(pos int64) int64 {
	return (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
}
