package ga

import (
	"testing"
)

var (
	e1 = Blade{1, E1}
	e2 = Blade{1, E2}
	e3 = Blade{1, E3}
)

const (
	E1 = uint8(1)
	E2 = uint8(1 << 1)
	E3 = uint8(1 << 2)
)

func TestBladeGrade(t *testing.T) {
	A := e1.Wedge(e2)
	B := e3

	if A.Grade() != 2 {
		t.Errorf("grade(e1^e2) = %v, want 2", A.Grade())
	}
	if B.Grade() != 1 {
		t.Errorf("grade(e3) = %v, want 1", B.Grade())
	}
	t.Logf("e1^e2 = %08b", A.Basis)
}

func TestBladeMul(t *testing.T) {
	e11 := e1.Mul(e1, Euclidean3)
	if e11.Basis != 0 || e11.Scalar != 1 {
		t.Errorf("expected scalar 1, have %s", e11)
	}

	e12 := e1.Mul(e2, Euclidean3)
	if e12.Basis != 0x3 || e12.Scalar != 1 {
		t.Errorf("expected bivector, have %s", e12)
	}

	e12e12 := e12.Mul(e12, Euclidean3)
	if e12e12.Basis != 0 || e12e12.Scalar != -1 {
		t.Errorf("expected scalar -1, have %s", e12e12)
	}

	t.Logf("  e1e1 = %s", e11)
	t.Logf("  e1e2 = %s", e12)
	t.Logf("e12e12 = %s", e12e12)
	t.Logf(" e12e1 = %s", e12.Mul(e1, Euclidean3)) // multiple of e2
}

func TestBladeMulMetric(t *testing.T) {
	// basis vector squares come from the metric, not the blade
	m := Metric{1, -1, 0}
	for i, want := range m {
		a := Blade{1, 1 << uint(i)}
		aa := a.Mul(a, m)
		if aa.Basis != 0 || aa.Scalar != want {
			t.Errorf("%s squared to %s, want scalar %v", a, aa, want)
		}
	}

	// a null factor annihilates the whole product
	en := Blade{1, 1 << 2}
	p := e1.Wedge(en).Mul(e2.Wedge(en), m)
	if p.Scalar != 0 {
		t.Errorf("expected null collapse to 0, have %s", p)
	}
}

func TestBladeWedge(t *testing.T) {
	if v := e1.Wedge(e1); v != ZB {
		t.Errorf("expected zero blade, have %s", v)
	}

	ab := e1.Wedge(e2)
	ba := e2.Wedge(e1)
	if ab.Basis != ba.Basis || ab.Scalar != -ba.Scalar {
		t.Errorf("expected e1^e2 = -e2^e1, have %s and %s", ab, ba)
	}

	// for independent blades the wedge is the geometric product
	if gp := e1.Mul(e2, Euclidean3); ab != gp {
		t.Errorf("expected e1^e2 = e1e2, have %s and %s", ab, gp)
	}
}

func TestBladeRev(t *testing.T) {
	for _, tt := range []struct {
		blade Blade
		want  float64
	}{
		{Blade{1, 0}, 1},
		{e1, 1},
		{e1.Wedge(e2), -1},
		{e1.Wedge(e2).Wedge(e3), -1},
		{Blade{1, 0xf}, 1},
	} {
		if v := tt.blade.Rev(); v.Scalar != tt.want {
			t.Errorf("%s reversed to %s, want scalar %v", tt.blade, v, tt.want)
		}
	}
}

func TestSignOf(t *testing.T) {
	for _, tt := range []struct {
		a, b uint8
		want float64
	}{
		{E1, E2, 1},
		{E2, E1, -1},
		{E1 ^ E2, E3, 1},
		{E3, E1 ^ E2, 1},
		{E1 ^ E2, E1, -1},
		{E1, E1 ^ E2, 1},
	} {
		if v := signOf(tt.a, tt.b); v != tt.want {
			t.Errorf("signOf(%08b, %08b) = %v, want %v", tt.a, tt.b, v, tt.want)
		}
	}
}
