// Package dual encodes rigid motions as unit dual quaternions.
//
// A motion rotating by r then translating by p is Real = r,
// Dual = ½(p, 0)∘r. For a valid motion Real has unit length and is
// orthogonal to Dual; Normalize restores both after arithmetic.
package dual

import (
	"math"

	"github.com/akmonengine/screw/internal/check"
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a dual quaternion Real + εDual, with ε² = 0.
type Quat struct {
	Real mgl64.Quat
	Dual mgl64.Quat
}

// Identity is the motion that moves nothing: Real is the identity rotation
// and Dual is zero.
func Identity() Quat {
	return Quat{Real: quat.Identity()}
}

func FromTransform(t rigid.Transform) Quat {
	check.Unit(t.Rotation, "dual.FromTransform")

	translation := mgl64.Quat{V: t.Position.Mul(0.5)}
	return Quat{Real: t.Rotation, Dual: translation.Mul(t.Rotation)}
}

func FromPositionRotation(position mgl64.Vec3, rotation mgl64.Quat) Quat {
	return FromTransform(rigid.NewTransform(position, rotation))
}

// Position extracts the translation 2·(Dual∘Real⁻¹).
func (q Quat) Position() mgl64.Vec3 {
	return q.Dual.Mul(quat.Inverse(q.Real)).V.Mul(2)
}

func (q Quat) Rotation() mgl64.Quat {
	return q.Real
}

// Transform converts q back to position and rotation.
func (q Quat) Transform() rigid.Transform {
	return rigid.NewTransform(q.Position(), q.Real)
}

func (q Quat) RotatePoint(p mgl64.Vec3) mgl64.Vec3 {
	return q.Real.Rotate(p)
}

func (q Quat) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return q.RotatePoint(p).Add(q.Position())
}

// Scale multiplies both parts by s.
func (q Quat) Scale(s float64) Quat {
	return Quat{Real: q.Real.Scale(s), Dual: q.Dual.Scale(s)}
}

func (q Quat) Add(a Quat) Quat {
	return Quat{Real: q.Real.Add(a.Real), Dual: q.Dual.Add(a.Dual)}
}

// Negate returns -q, the same rigid motion.
func (q Quat) Negate() Quat {
	return q.Scale(-1)
}

// ApproxEqual compares both parts, treating q and -q as equal.
func (q Quat) ApproxEqual(a Quat, epsilon float64) bool {
	same := func(b Quat) bool {
		return q.Real.ApproxEqualThreshold(b.Real, epsilon) && q.Dual.ApproxEqualThreshold(b.Dual, epsilon)
	}
	return same(a) || same(a.Negate())
}

// Dot returns the dot product of the real parts, the cosine of half the
// rotation between a and b.
func Dot(a, b Quat) float64 {
	return a.Real.Dot(b.Real)
}

// Normalize projects q onto the unit dual quaternions: Real is scaled to unit
// length, then the component of Dual along Real is removed. The zero
// quaternion normalizes to the identity.
func Normalize(q Quat) Quat {
	length := q.Real.Len()
	if length == 0 {
		return Identity()
	}

	r := q.Real.Scale(1 / length)
	d := q.Dual.Scale(1 / length)
	return Quat{Real: r, Dual: d.Sub(r.Scale(r.Dot(d)))}
}

// Multiply composes two motions: b first, then a. It encodes
// a.Transform().Transform(b.Transform()).
func Multiply(a, b Quat) Quat {
	return Quat{
		Real: a.Real.Mul(b.Real),
		Dual: a.Real.Mul(b.Dual).Add(a.Dual.Mul(b.Real)),
	}
}

// Conjugate takes the quaternion conjugate of both parts. For a unit dual
// quaternion it is the inverse motion: Multiply(a, Conjugate(a)) == Identity().
func Conjugate(a Quat) Quat {
	return Quat{Real: quat.Inverse(a.Real), Dual: quat.Inverse(a.Dual)}
}

// screwEpsilon is the sin(θ/2) under which a motion is treated as a pure
// translation with no defined screw axis.
const screwEpsilon = 1e-9

// Pow raises the unit dual quaternion q to the power t by scaling its screw
// parameters: t times the angle around the same axis, t times the slide
// along it.
func Pow(q Quat, t float64) Quat {
	check.Unit(q.Real, "dual.Pow")

	if q.Real.W < 0 {
		q = q.Negate()
	}

	sinHalfAngle := q.Real.V.Len()
	if sinHalfAngle < screwEpsilon {
		return Normalize(Quat{Real: quat.Slerp(quat.Identity(), q.Real, t), Dual: q.Dual.Scale(t)})
	}

	halfAngle := math.Atan2(sinHalfAngle, q.Real.W)
	axis := q.Real.V.Mul(1 / sinHalfAngle)
	translation := q.Dual.Mul(quat.Inverse(q.Real)).V.Mul(2)
	slide := translation.Dot(axis)
	moment := translation.Cross(axis).
		Add(translation.Sub(axis.Mul(slide)).Mul(q.Real.W / sinHalfAngle)).
		Mul(0.5)

	sinT, cosT := math.Sincos(t * halfAngle)
	slideT := 0.5 * t * slide
	return Quat{
		Real: mgl64.Quat{W: cosT, V: axis.Mul(sinT)},
		Dual: mgl64.Quat{W: -slideT * sinT, V: axis.Mul(slideT * cosT).Add(moment.Mul(sinT))},
	}
}
