package ga

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// Eps is the near-zero tolerance; terms with a smaller absolute
// coefficient are dropped during canonicalization.
var Eps = 1e-12

// Multivector is a weighted sum of blades. Arithmetic keeps results in
// canonical form: blades in ascending basis order, at most one blade per
// basis, no near-zero coefficients.
type Multivector []Blade

// Scalar returns a 0-grade Multivector.
func Scalar(x float64) Multivector {
	if math.Abs(x) <= Eps {
		return nil
	}
	return Multivector{{Scalar: x}}
}

// Add returns the sum of a and b.
func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, len(a))
	copy(c, a)
	return simplify(append(c, b...))
}

// Scale returns a with every coefficient multiplied by x.
func (a Multivector) Scale(x float64) Multivector {
	var b Multivector
	for _, v := range a {
		v.Scalar *= x
		b = append(b, v)
	}
	return simplify(b)
}

// Grade returns the projection of a onto grade k.
func (a Multivector) Grade(k int) Multivector {
	var b Multivector
	for _, v := range a {
		if v.Grade() == k {
			b = append(b, v)
		}
	}
	return simplify(b)
}

// Rev reverses each blade of a.
func (a Multivector) Rev() Multivector {
	var b Multivector
	for _, v := range a {
		b = append(b, v.Rev())
	}
	return simplify(b)
}

// Coeff returns the coefficient of the given basis bitmap, 0 if absent.
func (a Multivector) Coeff(basis uint8) float64 {
	var x float64
	for _, v := range a {
		if v.Basis == basis {
			x += v.Scalar
		}
	}
	return x
}

// Scalar returns the grade-0 coefficient.
func (a Multivector) Scalar() float64 { return a.Coeff(0) }

// IsZero reports whether every coefficient of a is within Eps of zero.
func (a Multivector) IsZero() bool {
	for _, v := range a {
		if math.Abs(v.Scalar) > Eps {
			return false
		}
	}
	return true
}

// Eq reports whether a and b agree blade-wise within Eps.
func (a Multivector) Eq(b Multivector) bool {
	x, y := simplify(a), simplify(b)
	if len(x) != len(y) {
		return false
	}
	for i, v := range x {
		if v.Basis != y[i].Basis || math.Abs(v.Scalar-y[i].Scalar) > Eps {
			return false
		}
	}
	return true
}

func (a Multivector) String() string {
	var terms []string
	for _, v := range simplify(a) {
		terms = append(terms, v.String())
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func simplify(a Multivector) Multivector {
	m := make(map[uint8]float64)
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}

	var b Multivector
	for k, v := range m {
		if math.Abs(v) > Eps {
			b = append(b, Blade{Scalar: v, Basis: k})
		}
	}
	slices.SortFunc(b, func(x, y Blade) bool { return x.Basis < y.Basis })
	return b
}
