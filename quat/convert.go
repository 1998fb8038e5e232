package quat

import (
	"math"

	"github.com/akmonengine/screw/scalar"
	"github.com/go-gl/mathgl/mgl64"
)

// ToMatrix3x3 returns the rotation matrix of q, with columns RightOf(q),
// UpOf(q) and ForwardOf(q).
func ToMatrix3x3(q mgl64.Quat) mgl64.Mat3 {
	return mgl64.Mat3FromCols(RightOf(q), UpOf(q), ForwardOf(q))
}

// FromMatrix3x3 extracts the unit quaternion of a rotation matrix.
//
// When the trace is positive w is the largest component and is solved first.
// Otherwise the largest diagonal entry picks which of x, y or z to solve
// first, keeping the divisor s well away from zero near 180° rotations.
func FromMatrix3x3(m mgl64.Mat3) mgl64.Quat {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		return New((m21-m12)/s, (m02-m20)/s, (m10-m01)/s, 0.25*s)
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		return New(0.25*s, (m10+m01)/s, (m02+m20)/s, (m21-m12)/s)
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		return New((m10+m01)/s, 0.25*s, (m21+m12)/s, (m02-m20)/s)
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		return New((m02+m20)/s, (m21+m12)/s, 0.25*s, (m10-m01)/s)
	}
}

// Euler builds a rotation from angles in degrees around X (pitch), Y (yaw)
// and Z (roll). Roll is applied first, then pitch, then yaw:
// yaw∘pitch∘roll.
func Euler(degrees mgl64.Vec3) mgl64.Quat {
	sx, cx := math.Sincos(0.5 * scalar.Radians(degrees[0]))
	sy, cy := math.Sincos(0.5 * scalar.Radians(degrees[1]))
	sz, cz := math.Sincos(0.5 * scalar.Radians(degrees[2]))

	pitch := New(sx, 0, 0, cx)
	yaw := New(0, sy, 0, cy)
	roll := New(0, 0, sz, cz)
	return yaw.Mul(pitch).Mul(roll)
}

// EulerXYZ is Euler with the angles passed separately.
func EulerXYZ(x, y, z float64) mgl64.Quat {
	return Euler(mgl64.Vec3{x, y, z})
}

// gimbalEpsilon bounds how close |sin(pitch)| may get to 1 before the
// decomposition drops roll and folds it into a single angle.
const gimbalEpsilon = 1e-6

// EulerAngles returns the pitch, yaw and roll, in degrees, that Euler turns
// back into q.
//
// Near ±90° of pitch yaw and roll rotate around the same axis and only their
// combination is defined. Within gimbalEpsilon of that pole yaw is reported as
// 0 and the combined angle as roll; asin's argument is clamped so drift never
// produces NaN.
func EulerAngles(q mgl64.Quat) mgl64.Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	cutoff := (1 - 2*gimbalEpsilon) * (1 - 2*gimbalEpsilon)

	// -sin(pitch), the (1,2) entry of the rotation matrix.
	y1 := 2 * (y*z - x*w)
	if y1*y1 < cutoff {
		pitch := -math.Asin(y1)
		yaw := math.Atan2(2*(x*z+y*w), z*z+w*w-x*x-y*y)
		roll := math.Atan2(2*(x*y+z*w), y*y+w*w-x*x-z*z)
		return mgl64.Vec3{scalar.Degrees(pitch), scalar.Degrees(yaw), scalar.Degrees(roll)}
	}

	y1 = scalar.Clamp(y1, -1, 1)
	a, b, c, d := 2*z*x, 2*y*w, 2*y*z, 2*x*w
	roll := math.Atan2(2*(a*d+b*c), -a*a+b*b-c*c+d*d)
	pitch := -math.Asin(y1)
	return mgl64.Vec3{scalar.Degrees(pitch), 0, scalar.Degrees(roll)}
}
