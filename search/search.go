package search

import "fmt"

// Search runs the chosen algorithm over s. The only error is
// ErrUnknownAlgorithm; an absent target is reported as NotFound with a nil
// error.
func Search[T Number](s []T, target T, algo Algorithm) (int, error) {
	switch algo {
	case AlgoLinear:
		return Linear(s, target), nil
	case AlgoBinaryIterative:
		return BinaryIterative(s, target), nil
	case AlgoBinaryRecursive:
		return BinaryRecursive(s, target), nil
	case AlgoInterpolation:
		return Interpolation(s, target), nil
	case AlgoExponential:
		return Exponential(s, target), nil
	case AlgoRotated:
		return Rotated(s, target), nil
	default:
		return NotFound, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
