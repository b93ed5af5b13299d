package cga

import (
	"fmt"
	"math"

	"dasa.cc/conformal/ga"
)

// Object is a geometric object with a conformal multivector encoding.
// The set of implementations is closed: Sphere, Plane, Point,
// OriginPoint and PointAtInfinity.
type Object interface {
	Encode(s Space) ga.Multivector
}

// Sphere is a round object with a real or imaginary radius; in a 2D
// space it is a circle. An imaginary radius enters the encoding as a
// negated radius square, never as a complex type. Center must carry one
// coordinate per real dimension of the Space it is encoded into.
type Sphere struct {
	Center    []float64
	Radius    float64
	Imaginary bool
}

// Encode returns center + (|center|^2 - r^2)/2 inf + o in the
// high-level coding.
func (v Sphere) Encode(s Space) ga.Multivector {
	r2 := v.Radius * v.Radius
	if v.Imaginary {
		r2 = -r2
	}
	m := vector(v.Center)
	m = append(m, ga.Blade{Scalar: (normSq(v.Center) - r2) / 2, Basis: s.p})
	m = append(m, ga.Blade{Scalar: 1, Basis: s.n})
	return m.Add(nil)
}

// Plane is a flat object: the locus at a fixed signed distance from the
// origin along its normal. Its encoding carries no origin term.
type Plane struct {
	Normal   []float64
	Distance float64
}

// Encode returns normal + distance inf in the high-level coding.
func (v Plane) Encode(s Space) ga.Multivector {
	m := vector(v.Normal)
	m = append(m, ga.Blade{Scalar: v.Distance, Basis: s.p})
	return m.Add(nil)
}

// Point is the radius-0 sphere at Location.
type Point struct {
	Location []float64
}

func (v Point) Encode(s Space) ga.Multivector {
	return Sphere{Center: v.Location}.Encode(s)
}

// OriginPoint is the point at the origin; it encodes to o exactly.
type OriginPoint struct{}

func (OriginPoint) Encode(s Space) ga.Multivector { return s.Origin() }

// PointAtInfinity is the ideal point shared by all planes; it encodes
// to inf exactly.
type PointAtInfinity struct{}

func (PointAtInfinity) Encode(s Space) ga.Multivector { return s.Infinity() }

// DecodeSphere reads center and radius back from a high-level
// multivector. The multivector is first normalized so its o coefficient
// is exactly 1; a zero o coefficient denotes a plane or point at
// infinity and fails with ErrDegenerateObject. A negative radius square
// reports an imaginary radius rather than failing.
func (s Space) DecodeSphere(v ga.Multivector) (Sphere, error) {
	w, err := s.normalize(v, s.n)
	if err != nil {
		return Sphere{}, fmt.Errorf("decode sphere: %w", err)
	}
	center := s.location(w)
	r2 := normSq(center) - 2*w.Coeff(s.p)
	if r2 < 0 {
		return Sphere{Center: center, Radius: math.Sqrt(-r2), Imaginary: true}, nil
	}
	return Sphere{Center: center, Radius: math.Sqrt(r2)}, nil
}

// DecodePlane reads normal and distance back from a high-level
// multivector. A nonzero o coefficient or an all-zero normal denotes a
// sphere or point, not a plane, and fails with ErrDegenerateObject.
func (s Space) DecodePlane(v ga.Multivector) (Plane, error) {
	if math.Abs(v.Coeff(s.n)) > ga.Eps {
		return Plane{}, fmt.Errorf("decode plane: origin coefficient is not zero: %w", ErrDegenerateObject)
	}
	normal := s.location(v)
	if normSq(normal) <= ga.Eps {
		return Plane{}, fmt.Errorf("decode plane: %w", ErrDegenerateObject)
	}
	return Plane{Normal: normal, Distance: v.Coeff(s.p)}, nil
}

// Decode classifies a high-level multivector as one of the closed set
// of objects, normalizing by the o coefficient when present and by the
// inf coefficient for points at infinity.
func (s Space) Decode(v ga.Multivector) (Object, error) {
	if math.Abs(v.Coeff(s.n)) <= ga.Eps {
		if _, err := s.normalize(v, s.p); err == nil && normSq(s.location(v)) <= ga.Eps {
			return PointAtInfinity{}, nil
		}
		return s.DecodePlane(v)
	}
	sp, err := s.DecodeSphere(v)
	if err != nil {
		return nil, err
	}
	if sp.Radius*sp.Radius <= ga.Eps && !sp.Imaginary {
		if normSq(sp.Center) <= ga.Eps {
			return OriginPoint{}, nil
		}
		return Point{Location: sp.Center}, nil
	}
	return sp, nil
}

// normalize scales v so the coefficient of the given blade is exactly 1.
func (s Space) normalize(v ga.Multivector, basis uint8) (ga.Multivector, error) {
	c := v.Coeff(basis)
	if math.Abs(c) <= ga.Eps {
		return nil, ErrDegenerateObject
	}
	return v.Scale(1 / c), nil
}

// location reads the real grade-1 part of v.
func (s Space) location(v ga.Multivector) []float64 {
	out := make([]float64, s.dim)
	for i := range out {
		out[i] = v.Coeff(1 << uint(i))
	}
	return out
}

func vector(coords []float64) ga.Multivector {
	var m ga.Multivector
	for i, x := range coords {
		m = append(m, ga.Blade{Scalar: x, Basis: 1 << uint(i)})
	}
	return m
}

func normSq(coords []float64) float64 {
	var n float64
	for _, x := range coords {
		n += x * x
	}
	return n
}
