package serialization

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize = 16 * 1024 * 1024 // 16MB - maximum JSON header size
	MaxDataSize   = 1 << 34          // 16GB - maximum data section size
	MaxLayers     = 4096             // Maximum number of layers
)

// ValidateTensorOffsets checks for overlapping tensor regions and regions
// that extend beyond the data section.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", t.Offset, t.Size),
				Err:     ErrOutOfBounds,
			}
		}

		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
					Err: ErrOffsetOverlap,
				}
			}
		}
	}

	return nil
}

// ValidateTopology checks the layer sizes stored in a header.
func ValidateTopology(topology []int) error {
	if len(topology) == 0 || len(topology) > MaxLayers {
		return &ValidationError{
			Type:    "invalid_topology",
			Details: fmt.Sprintf("%d layers, want 1..%d", len(topology), MaxLayers),
			Err:     ErrSchemaMismatch,
		}
	}
	for l, n := range topology {
		if n <= 0 {
			return &ValidationError{
				Type:    "invalid_topology",
				Details: fmt.Sprintf("layer %d has size %d", l, n),
				Err:     ErrSchemaMismatch,
			}
		}
	}
	return nil
}

// ValidateHeader checks that a header describes exactly the tensors its
// topology requires, and that they fit the data section.
func ValidateHeader(h *Header, dataSize int64) error {
	if h.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: header declares version %d", ErrUnsupportedVersion, h.FormatVersion)
	}
	if h.ModelType != ModelTypeRegress {
		return &ValidationError{
			Type:    "model_type",
			Details: fmt.Sprintf("got %q, want %q", h.ModelType, ModelTypeRegress),
			Err:     ErrSchemaMismatch,
		}
	}
	if err := ValidateTopology(h.Topology); err != nil {
		return err
	}
	if len(h.Activations) != len(h.Topology) {
		return &ValidationError{
			Type:    "activation_count",
			Details: fmt.Sprintf("%d activations for %d layers", len(h.Activations), len(h.Topology)),
			Err:     ErrSchemaMismatch,
		}
	}
	if math.IsNaN(h.LearningRate) || math.IsInf(h.LearningRate, 0) || h.Epoch < 0 {
		return &ValidationError{
			Type:    "hyperparameters",
			Details: fmt.Sprintf("learning_rate=%v epoch=%d", h.LearningRate, h.Epoch),
			Err:     ErrSchemaMismatch,
		}
	}

	want := expectedTensors(h.Topology)
	if len(h.Tensors) != len(want) {
		return &ValidationError{
			Type:    "tensor_count",
			Details: fmt.Sprintf("got %d tensors, want %d", len(h.Tensors), len(want)),
			Err:     ErrSchemaMismatch,
		}
	}
	for i, t := range h.Tensors {
		w := want[i]
		if t.Name != w.Name || t.DType != w.DType || !slices.Equal(t.Shape, w.Shape) || t.Size != w.Size {
			return &ValidationError{
				Type:   "shape_mismatch",
				Tensor: t.Name,
				Details: fmt.Sprintf("got %s %v (%d bytes), want %s %s %v (%d bytes)",
					t.DType, t.Shape, t.Size, w.Name, w.DType, w.Shape, w.Size),
				Err: ErrSchemaMismatch,
			}
		}
	}

	if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
		return err
	}

	var total int64
	for _, t := range h.Tensors {
		total += t.Size
	}
	if total != dataSize {
		return &ValidationError{
			Type:    "data_size",
			Details: fmt.Sprintf("tensors cover %d bytes, data section has %d", total, dataSize),
			Err:     ErrSchemaMismatch,
		}
	}

	return nil
}

// ValidateCheckpoint checks an in-memory checkpoint before it is written.
func ValidateCheckpoint(c *Checkpoint) error {
	if c == nil {
		return &ValidationError{Type: "nil_checkpoint", Details: "nothing to write", Err: ErrSchemaMismatch}
	}
	if err := ValidateTopology(c.Topology); err != nil {
		return err
	}
	if len(c.Activations) != len(c.Topology) {
		return &ValidationError{
			Type:    "activation_count",
			Details: fmt.Sprintf("%d activations for %d layers", len(c.Activations), len(c.Topology)),
			Err:     ErrSchemaMismatch,
		}
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.Epoch < 0 {
		return &ValidationError{
			Type:    "hyperparameters",
			Details: fmt.Sprintf("learning_rate=%v epoch=%d", c.LearningRate, c.Epoch),
			Err:     ErrSchemaMismatch,
		}
	}
	if len(c.Weights) != len(c.Topology)-1 || len(c.Biases) != len(c.Topology) {
		return &ValidationError{
			Type:    "tensor_count",
			Details: fmt.Sprintf("%d weight and %d bias tensors for %d layers", len(c.Weights), len(c.Biases), len(c.Topology)),
			Err:     ErrSchemaMismatch,
		}
	}
	for l, w := range c.Weights {
		if len(w) != c.Topology[l]*c.Topology[l+1] {
			return &ValidationError{
				Type:    "shape_mismatch",
				Tensor:  weightName(l),
				Details: fmt.Sprintf("%d values, want %dx%d", len(w), c.Topology[l], c.Topology[l+1]),
				Err:     ErrSchemaMismatch,
			}
		}
	}
	for l, b := range c.Biases {
		if len(b) != c.Topology[l] {
			return &ValidationError{
				Type:    "shape_mismatch",
				Tensor:  biasName(l),
				Details: fmt.Sprintf("%d values, want %d", len(b), c.Topology[l]),
				Err:     ErrSchemaMismatch,
			}
		}
	}
	return nil
}
