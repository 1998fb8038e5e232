package dual

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/dualquat"
	gquat "gonum.org/v1/gonum/num/quat"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func randomTransform(r *rand.Rand) rigid.Transform {
	rotation := quat.Normalize(quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64()))
	position := mgl64.Vec3{r.Float64()*20 - 10, r.Float64()*20 - 10, r.Float64()*20 - 10}
	return rigid.NewTransform(position, rotation)
}

func randomDual(r *rand.Rand) Quat {
	return FromTransform(randomTransform(r))
}

func toGonum(q Quat) dualquat.Number {
	convert := func(q mgl64.Quat) gquat.Number {
		return gquat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
	}
	return dualquat.Number{Real: convert(q.Real), Dual: convert(q.Dual)}
}

func fromGonum(n dualquat.Number) Quat {
	convert := func(n gquat.Number) mgl64.Quat {
		return quat.New(n.Imag, n.Jmag, n.Kmag, n.Real)
	}
	return Quat{Real: convert(n.Real), Dual: convert(n.Dual)}
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestIdentity_MultiplyItself(t *testing.T) {
	got := Multiply(Identity(), Identity())
	want := Quat{Real: quat.New(0, 0, 0, 1), Dual: quat.New(0, 0, 0, 0)}

	if got != want {
		t.Errorf("Identity∘Identity = %v, want %v", got, want)
	}
	if p := got.Position(); p != (mgl64.Vec3{}) {
		t.Errorf("Identity position = %v, want zero", p)
	}
}

func TestPosition_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))

	for range 500 {
		tr := randomTransform(r)
		q := FromTransform(tr)

		if got := q.Position(); !got.ApproxEqualThreshold(tr.Position, 1e-5) {
			t.Fatalf("Position() = %v, want %v", got, tr.Position)
		}
		if got := q.Transform(); !got.ApproxEqual(tr, 1e-5) {
			t.Fatalf("Transform() = %v, want %v", got, tr)
		}
		if !almostEqual(q.Real.Dot(q.Dual), 0, 1e-9) {
			t.Fatalf("FromTransform is not orthogonal: dot = %v", q.Real.Dot(q.Dual))
		}
	}
}

func TestTransformPoint(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))

	for range 100 {
		tr := randomTransform(r)
		p := mgl64.Vec3{r.NormFloat64(), r.NormFloat64(), r.NormFloat64()}
		q := FromTransform(tr)

		if got, want := q.TransformPoint(p), tr.TransformPoint(p); !got.ApproxEqualThreshold(want, 1e-9) {
			t.Fatalf("TransformPoint = %v, want %v", got, want)
		}
		if got, want := q.RotatePoint(p), tr.Rotation.Rotate(p); !got.ApproxEqualThreshold(want, 1e-12) {
			t.Fatalf("RotatePoint = %v, want %v", got, want)
		}
	}
}

// =============================================================================
// Normalize Tests
// =============================================================================

func TestNormalize(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))

	for range 500 {
		q := Quat{
			Real: quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64()),
			Dual: quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64()),
		}
		n := Normalize(q)

		if !almostEqual(n.Real.Len(), 1, 1e-6) {
			t.Fatalf("|real| = %v, want 1", n.Real.Len())
		}
		if !almostEqual(n.Real.Dot(n.Dual), 0, 1e-6) {
			t.Fatalf("dot(real, dual) = %v, want 0", n.Real.Dot(n.Dual))
		}
	}
}

func TestNormalize_KeepsUnit(t *testing.T) {
	r := rand.New(rand.NewPCG(4, 4))
	q := randomDual(r)

	if got := Normalize(q); !got.ApproxEqual(q, 1e-12) {
		t.Errorf("Normalize(unit) = %v, want %v", got, q)
	}
	if got := Normalize(Quat{}); got != Identity() {
		t.Errorf("Normalize(zero) = %v, want identity", got)
	}
}

// =============================================================================
// Algebra Tests
// =============================================================================

func TestMultiply_EncodesComposition(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))

	for range 200 {
		a, b := randomTransform(r), randomTransform(r)
		got := Multiply(FromTransform(a), FromTransform(b)).Transform()

		if want := a.Transform(b); !got.ApproxEqual(want, 1e-9) {
			t.Fatalf("Multiply = %v, want %v", got, want)
		}
	}
}

func TestMultiply_MatchesGonum(t *testing.T) {
	r := rand.New(rand.NewPCG(6, 6))

	for range 200 {
		a, b := randomDual(r), randomDual(r)
		got := Multiply(a, b)
		want := fromGonum(dualquat.Mul(toGonum(a), toGonum(b)))

		if !got.Real.ApproxEqualThreshold(want.Real, 1e-12) || !got.Dual.ApproxEqualThreshold(want.Dual, 1e-12) {
			t.Fatalf("Multiply = %v, gonum = %v", got, want)
		}
	}
}

func TestConjugate(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))

	for range 200 {
		a := randomDual(r)

		if got, want := Conjugate(a), fromGonum(dualquat.ConjQuat(toGonum(a))); got != want {
			t.Fatalf("Conjugate = %v, gonum = %v", got, want)
		}
		if got := Multiply(a, Conjugate(a)); !got.ApproxEqual(Identity(), 1e-9) {
			t.Fatalf("a∘a* = %v, want identity", got)
		}
		if got := Conjugate(a).Transform(); !got.ApproxEqual(a.Transform().Inverse(), 1e-9) {
			t.Fatalf("Conjugate(a) = %v, want inverse %v", got, a.Transform().Inverse())
		}
	}
}

func TestPow(t *testing.T) {
	r := rand.New(rand.NewPCG(8, 8))

	for range 200 {
		q := randomDual(r)

		if got := Pow(q, 0); !got.ApproxEqual(Identity(), 1e-12) {
			t.Fatalf("q^0 = %v, want identity", got)
		}
		if got := Pow(q, 1); !got.ApproxEqual(q, 1e-9) {
			t.Fatalf("q^1 = %v, want %v", got, q)
		}
		if got, want := Pow(q, 2), Multiply(q, q); !got.ApproxEqual(want, 1e-8) {
			t.Fatalf("q^2 = %v, want %v", got, want)
		}
		if got := Multiply(Pow(q, 0.5), Pow(q, 0.5)); !got.ApproxEqual(q, 1e-8) {
			t.Fatalf("q^½∘q^½ = %v, want %v", got, q)
		}
	}
}

func TestPow_PureTranslation(t *testing.T) {
	q := FromPositionRotation(mgl64.Vec3{4, -2, 0}, quat.Identity())

	got := Pow(q, 0.25)
	if p := got.Position(); !p.ApproxEqualThreshold(mgl64.Vec3{1, -0.5, 0}, 1e-12) {
		t.Errorf("position = %v, want (1, -0.5, 0)", p)
	}
	if got.Real != quat.Identity() {
		t.Errorf("rotation = %v, want identity", got.Real)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkMultiply(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 9))
	x, y := randomDual(r), randomDual(r)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = Multiply(x, y)
	}
}

func BenchmarkScrewInterpolate(b *testing.B) {
	r := rand.New(rand.NewPCG(10, 10))
	x, y := randomDual(r), randomDual(r)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ScrewInterpolate(x, y, 0.3)
	}
}
