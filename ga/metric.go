package ga

import (
	"errors"
	"fmt"
)

// MaxDim is the largest supported number of basis vectors; blade
// bitmaps are uint8.
const MaxDim = 8

// ErrOutOfRange indicates a basis vector index outside the configured metric.
var ErrOutOfRange = errors.New("ga: basis vector index out of range")

// Metric assigns a square value to each basis vector, in canonical order.
// Entries are +1, -1, or 0; a zero entry makes its basis vector null.
type Metric []float64

// Predeclared metrics. The conformal metrics append the auxiliary
// p (+1) and n (-1) vectors after the real axes.
var (
	Euclidean2 = Metric{1, 1}
	Euclidean3 = Metric{1, 1, 1}
	Conformal2 = Metric{1, 1, 1, -1}
	Conformal3 = Metric{1, 1, 1, 1, -1}
)

// NewMetric lays out positive squares first, then negative, then zero.
func NewMetric(positive, negative, zero int) (Metric, error) {
	n := positive + negative + zero
	if n > MaxDim {
		return nil, fmt.Errorf("ga: only up to %v dimensions are supported", MaxDim)
	}
	m := make(Metric, 0, n)
	for i := 0; i < positive; i++ {
		m = append(m, 1)
	}
	for i := 0; i < negative; i++ {
		m = append(m, -1)
	}
	for i := 0; i < zero; i++ {
		m = append(m, 0)
	}
	return m, nil
}

// Dim returns the number of basis vectors.
func (m Metric) Dim() int { return len(m) }

// Square returns the square of basis vector i under the geometric product.
func (m Metric) Square(i int) (float64, error) {
	if i < 0 || i >= len(m) {
		return 0, fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, i, len(m))
	}
	return m[i], nil
}
