// Package cga implements the conformal model of 2D and 3D geometry on top
// of package ga. The real axes are extended with two auxiliary vectors
// p (square +1) and n (square -1), recombined into the null vectors
// inf = n + p and o = (n - p)/2 that encode points, spheres and planes
// homogeneously: inf and o both square to 0 while inf . o = -1.
package cga

import (
	"fmt"

	"dasa.cc/conformal/ga"
)

// Space is a conformal algebra over 2 or 3 real dimensions. Spaces are
// cheap to copy and safe to share.
//
// Multivectors come in two codings over the same bitmaps. The low-level
// coding assigns the two auxiliary slots to p and n, where the metric is
// diagonal and products are computed. The high-level coding assigns the
// same slots to inf and o, where object encodings take their simple
// additive form. ToLowLevel and ToHighLevel convert between the two.
type Space struct {
	dim  int
	alg  ga.Algebra
	p, n uint8
}

// NewSpace returns the conformal space over dim real dimensions.
func NewSpace(dim int) (Space, error) {
	var m ga.Metric
	switch dim {
	case 2:
		m = ga.Conformal2
	case 3:
		m = ga.Conformal3
	default:
		return Space{}, fmt.Errorf("%w: %v", ErrDimension, dim)
	}
	return Space{
		dim: dim,
		alg: ga.New(m),
		p:   1 << uint(dim),
		n:   1 << uint(dim+1),
	}, nil
}

// Dim returns the number of real dimensions.
func (s Space) Dim() int { return s.dim }

// Algebra returns the underlying low-level algebra.
func (s Space) Algebra() ga.Algebra { return s.alg }

// BasisVector returns real axis i as a Multivector; the real axes read
// the same in both codings.
func (s Space) BasisVector(i int) (ga.Multivector, error) {
	if i < 0 || i >= s.dim {
		return nil, fmt.Errorf("%w: %v not in [0, %v)", ga.ErrOutOfRange, i, s.dim)
	}
	return s.alg.BasisVector(i)
}

// Infinity returns the null vector inf in the high-level coding.
func (s Space) Infinity() ga.Multivector { return ga.Multivector{{Scalar: 1, Basis: s.p}} }

// Origin returns the null vector o in the high-level coding.
func (s Space) Origin() ga.Multivector { return ga.Multivector{{Scalar: 1, Basis: s.n}} }

// ToLowLevel rewrites a high-level multivector over the p, n basis by
// substituting inf = n + p and o = (n - p)/2 into each blade.
func (s Space) ToLowLevel(v ga.Multivector) ga.Multivector {
	return s.substitute(v,
		ga.Multivector{{Scalar: 1, Basis: s.p}, {Scalar: 1, Basis: s.n}},
		ga.Multivector{{Scalar: -0.5, Basis: s.p}, {Scalar: 0.5, Basis: s.n}},
	)
}

// ToHighLevel rewrites a low-level multivector over the inf, o basis by
// substituting p = inf/2 - o and n = inf/2 + o into each blade. It is
// the exact inverse of ToLowLevel; the halves are binary fractions so
// round trips carry no residual.
func (s Space) ToHighLevel(v ga.Multivector) ga.Multivector {
	return s.substitute(v,
		ga.Multivector{{Scalar: 0.5, Basis: s.p}, {Scalar: -1, Basis: s.n}},
		ga.Multivector{{Scalar: 0.5, Basis: s.p}, {Scalar: 1, Basis: s.n}},
	)
}

// substitute maps the p slot to sp and the n slot to sn in every blade,
// wedging the substituted factors back together. The wedge needs no
// metric, which is what keeps basis change exact.
func (s Space) substitute(v ga.Multivector, sp, sn ga.Multivector) ga.Multivector {
	var out ga.Multivector
	for _, b := range v {
		term := ga.Multivector{{Scalar: b.Scalar, Basis: b.Basis &^ (s.p | s.n)}}
		if b.Basis&s.p != 0 {
			term = s.alg.Wedge(term, sp)
		}
		if b.Basis&s.n != 0 {
			term = s.alg.Wedge(term, sn)
		}
		out = out.Add(term)
	}
	return out
}

// Mul returns the geometric product of two high-level multivectors.
// The operands are taken to the low-level basis, where the metric is
// diagonal, and the result is brought back.
func (s Space) Mul(a, b ga.Multivector) ga.Multivector {
	return s.ToHighLevel(s.alg.Mul(s.ToLowLevel(a), s.ToLowLevel(b)))
}

// Wedge returns the outer product of two high-level multivectors. The
// outer product is metric-free so no basis change is needed.
func (s Space) Wedge(a, b ga.Multivector) ga.Multivector {
	return s.alg.Wedge(a, b)
}

// Dot returns the inner product of two high-level multivectors.
func (s Space) Dot(a, b ga.Multivector) ga.Multivector {
	return s.ToHighLevel(s.alg.Dot(s.ToLowLevel(a), s.ToLowLevel(b)))
}

// Sandwich applies the high-level versor v to x, computing v x v~.
func (s Space) Sandwich(v, x ga.Multivector) ga.Multivector {
	return s.ToHighLevel(s.alg.Sandwich(s.ToLowLevel(v), s.ToLowLevel(x)))
}

// SandwichAll applies the high-level versor v to every operand in xs,
// converting once per value and fanning the products across workers.
func (s Space) SandwichAll(v ga.Multivector, xs []ga.Multivector) []ga.Multivector {
	low := make([]ga.Multivector, len(xs))
	for i, x := range xs {
		low[i] = s.ToLowLevel(x)
	}
	out := s.alg.SandwichAll(s.ToLowLevel(v), low)
	for i, x := range out {
		out[i] = s.ToHighLevel(x)
	}
	return out
}

// Format renders a high-level multivector with x, y, z, inf, o labels.
func (s Space) Format(v ga.Multivector) string {
	labels := []string{"x", "y", "z", "inf", "o", "", "", ""}
	if s.dim == 2 {
		labels = []string{"x", "y", "inf", "o", "", "", "", ""}
	}
	return ga.Format(v, labels)
}
