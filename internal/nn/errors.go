package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimension  = errors.New("dimensionality mismatch")
	ErrActivation = errors.New("activation function not implemented")
)

// dimensionError wraps ErrDimension with what was being checked.
func dimensionError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, expected %d", ErrDimension, what, got, want)
}
