// Package ga provides primitives for geometric algebra over a configurable
// metric signature.
package ga

import (
	"fmt"
	"math/bits"
)

// Blade is a weighted product of distinct basis vectors.
//
// Basis is a bitmap of independent vectors, if any; vectors must be in
// canonical ordering so account for sign changes of Scalar when specifying.
type Blade struct {
	Scalar float64
	Basis  uint8
}

// ZB is the zero blade.
var ZB = Blade{}

// Grade returns the number of independent vectors of Blade.
func (a Blade) Grade() int {
	return bits.OnesCount8(a.Basis)
}

// Mul returns the geometric product of ab under metric m; common basis
// vectors collapse to their metric square, which annihilates the product
// when that square is 0.
func (a Blade) Mul(b Blade, m Metric) Blade {
	s := signOf(a.Basis, b.Basis) * a.Scalar * b.Scalar
	for c := a.Basis & b.Basis; c != 0; c &= c - 1 {
		s *= m[bits.TrailingZeros8(c)]
	}
	return Blade{s, a.Basis ^ b.Basis}
}

// Wedge returns the outer product of a^b; a zero product if a and b are
// dependent. Wedge needs no metric since no vectors collapse.
func (a Blade) Wedge(b Blade) Blade {
	if a.Basis&b.Basis != 0 {
		return ZB
	}
	return Blade{signOf(a.Basis, b.Basis) * a.Scalar * b.Scalar, a.Basis ^ b.Basis}
}

// Rev reverses the order of the blade's vectors, negating Scalar for
// grades 2 and 3 mod 4.
func (a Blade) Rev() Blade {
	if a.Grade()%4 > 1 {
		a.Scalar *= -1
	}
	return a
}

// Invol returns the grade involution of a.
func (a Blade) Invol() Blade {
	if a.Grade()%2 == 1 {
		a.Scalar *= -1
	}
	return a
}

func (a Blade) String() string {
	return fmt.Sprintf("Blade(%v, %08b)", a.Scalar, a.Basis)
}

// signOf counts the adjacent swaps needed to interleave the vectors of b
// into a in ascending order; odd parity flips the sign.
func signOf(a, b uint8) float64 {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}
