package nn

// SquaredError computes the unaveraged sum of squared errors
// Σ (observed[i] - predicted[i])².
//
// Both vectors must have outputSize entries.
func SquaredError(predicted, observed []float64, outputSize int) (float64, error) {
	if len(predicted) != outputSize {
		return 0, dimensionError("predicted", len(predicted), outputSize)
	}
	if len(observed) != outputSize {
		return 0, dimensionError("observed", len(observed), outputSize)
	}

	var sum float64
	for i := range predicted {
		diff := observed[i] - predicted[i]
		sum += diff * diff
	}
	return sum, nil
}
