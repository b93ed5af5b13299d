package ga

import (
	"fmt"
	"math"
)

// Algebra binds the product engine to a metric. The zero value is the
// trivial 0-dimensional algebra; Algebra values are cheap to copy and
// safe to share. Operands must be built over the algebra's basis
// vectors; BasisVector rejects indices the metric does not cover.
type Algebra struct {
	Metric Metric
}

// New returns an Algebra over m.
func New(m Metric) Algebra { return Algebra{Metric: m} }

// BasisVector returns basis vector i as a Multivector.
func (al Algebra) BasisVector(i int) (Multivector, error) {
	if i < 0 || i >= al.Metric.Dim() {
		return nil, fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, i, al.Metric.Dim())
	}
	return Multivector{{1, 1 << uint(i)}}, nil
}

// Mul returns the geometric product ab.
func (al Algebra) Mul(a, b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Mul(b1, al.Metric))
		}
	}
	return simplify(c)
}

// Wedge returns the outer product a^b.
func (al Algebra) Wedge(a, b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Wedge(b1))
		}
	}
	return simplify(c)
}

// Dot returns the inner product of a and b, keeping only the pair terms
// that collapse fully: result grade equals the pair's grade difference.
// For basis vectors this is the bilinear form of the metric.
func (al Algebra) Dot(a, b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			p := b0.Mul(b1, al.Metric)
			if k := b0.Grade() - b1.Grade(); p.Grade() == abs(k) {
				c = append(c, p)
			}
		}
	}
	return simplify(c)
}

// Sandwich applies the versor v to x, computing v x v~. Reflections,
// rotations, translations and inversions all take this form.
func (al Algebra) Sandwich(v, x Multivector) Multivector {
	return al.Mul(al.Mul(v, x), v.Rev())
}

// Rotor returns the even versor exp(-angle/2 basis) for a unit basis
// plane whose square is -1.
func (al Algebra) Rotor(angle float64, basis uint8) Multivector {
	return Multivector{
		{math.Cos(angle / 2), 0},
		{-math.Sin(angle / 2), basis},
	}
}

// Blades returns every blade bitmap of the algebra in grade-major order,
// from the scalar up to the pseudoscalar.
func (al Algebra) Blades() []uint8 {
	n := al.Metric.Dim()
	basis := make([]uint8, n)
	for i := range basis {
		basis[i] = 1 << uint(i)
	}
	var out []uint8
	for k := 0; k <= n; k++ {
		out = append(out, chooseBits(k, basis)...)
	}
	return out
}

func chooseBits(k int, choices []uint8) []uint8 {
	if k == 0 {
		return []uint8{0}
	}
	if len(choices) < k {
		return nil
	}
	var out []uint8
	for i, c := range choices {
		for _, rest := range chooseBits(k-1, choices[i+1:]) {
			out = append(out, c|rest)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
