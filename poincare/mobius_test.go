package poincare_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/eak1mov/go-hypertiles/internal"
	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func sampleTransforms() []poincare.Mobius {
	return []poincare.Mobius{
		poincare.Mobius{A: complex(1.1, 0.2), B: complex(0.1, 0.3)}.Normalized(),
		poincare.Mobius{A: complex(1.3, -0.1), B: complex(0.2, 0.1)}.Normalized(),
		poincare.Mobius{A: complex(1.0, 0.4), B: complex(0.15, -0.2)}.Normalized(),
		poincare.Translation(1.5, 0.7),
		poincare.Rotation(2.1),
	}
}

func TestComplexHelpers(t *testing.T) {
	z := complex(3, 4)
	require.InDelta(t, 25.0, poincare.NormSq(z), eps)
	require.InDelta(t, 5.0, cmplx.Abs(z), eps)

	p := poincare.Polar(1, math.Pi/4)
	require.InDelta(t, math.Cos(math.Pi/4), real(p), eps)
	require.InDelta(t, math.Sin(math.Pi/4), imag(p), eps)

	// (1+2i)/(3+4i) = (11+2i)/25
	if diff := cmp.Diff(complex(11.0/25, 2.0/25), complex(1, 2)/complex(3, 4), internal.EquateComplex(eps)); diff != "" {
		t.Errorf("division mismatch (-want+got):\n%v", diff)
	}
}

func TestIdentity(t *testing.T) {
	id := poincare.Identity()
	for _, z := range []complex128{0, 0.3 - 0.2i, -0.9i} {
		if got := id.Apply(z); cmplx.Abs(got-z) > eps {
			t.Errorf("Identity().Apply(%v) = %v", z, got)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	z := complex(0.1, 0.2)
	for i, m := range sampleTransforms() {
		got := m.Inverse().Apply(m.Apply(z))
		if cmplx.Abs(got-z) > eps {
			t.Errorf("transform %d: Inverse().Apply(Apply(z)) = %v, want = %v", i, got, z)
		}
		require.InDelta(t, 1.0, m.Inverse().Det(), eps)
	}
}

func TestComposeAssociative(t *testing.T) {
	ms := sampleTransforms()
	z := complex(0.1, 0.05)
	for i := range ms {
		a, b, c := ms[i], ms[(i+1)%len(ms)], ms[(i+2)%len(ms)]
		abC := a.Compose(b).Compose(c)
		aBc := a.Compose(b.Compose(c))
		if diff := cmp.Diff(abC, aBc, internal.EquateMobius(eps)); diff != "" {
			t.Errorf("associativity %d mismatch (-want+got):\n%v", i, diff)
		}
		if got, want := abC.Apply(z), a.Apply(b.Apply(c.Apply(z))); cmplx.Abs(got-want) > eps {
			t.Errorf("compose %d: Apply = %v, want = %v", i, got, want)
		}
	}
}

func TestComposeKeepsDeterminant(t *testing.T) {
	ms := sampleTransforms()
	acc := poincare.Identity()
	for i := range 10_000 {
		m := ms[i%len(ms)]
		acc = acc.Compose(m)
		require.InDelta(t, 1.0, acc.Det(), eps)
		acc = acc.Compose(m.Inverse())
		if i%7 == 0 {
			acc = acc.Normalized()
		}
	}
	require.InDelta(t, 1.0, acc.Det(), eps)
	if diff := cmp.Diff(poincare.Identity(), acc, internal.EquateMobius(1e-6)); diff != "" {
		t.Errorf("back-and-forth chain drifted (-want+got):\n%v", diff)
	}
}

func TestNormalizedIdempotent(t *testing.T) {
	m := poincare.Mobius{A: complex(2.4, 0.6), B: complex(0.5, -1.1)}
	once := m.Normalized()
	twice := once.Normalized()
	require.InDelta(t, 1.0, once.Det(), eps)
	require.InDelta(t, real(once.A), real(twice.A), 1e-12)
	require.InDelta(t, imag(once.A), imag(twice.A), 1e-12)
	require.InDelta(t, real(once.B), real(twice.B), 1e-12)
	require.InDelta(t, imag(once.B), imag(twice.B), 1e-12)
}

func TestTranslation(t *testing.T) {
	m := poincare.Translation(1.2, math.Pi/3)
	require.InDelta(t, 1.0, m.Det(), eps)
	require.InDelta(t, 1.2, poincare.Distance(0, m.Center()), 1e-9)
	require.InDelta(t, math.Pi/3, cmplx.Phase(m.Center()), eps)
}

func TestMoveToOrigin(t *testing.T) {
	p := complex(0.4, -0.3)
	m := poincare.MoveToOrigin(p)
	require.InDelta(t, 1.0, m.Det(), eps)
	require.Less(t, cmplx.Abs(m.Apply(p)), eps)
}
