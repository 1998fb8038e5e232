// Package quat implements the quaternion algebra that rigid motion and
// springs are built on: matrix and Euler conversions, angle/axis
// decomposition, angular error and velocity, velocity integration and
// interpolation.
//
// Quaternions are mgl64.Quat values {W, V}. Composition a∘b (apply b, then a)
// is a.Mul(b). Every function expecting a rotation assumes a unit quaternion;
// this is asserted in screwdebug builds only (see internal/check).
//
// Conventions are left-handed, Y up, Z forward: Right = (1,0,0),
// Up = (0,1,0), Forward = (0,0,1). Angles are radians, except for Euler and
// EulerAngles which take and return degrees.
package quat

import (
	"math"

	"github.com/akmonengine/screw/internal/check"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// Identity is the quaternion of no rotation.
func Identity() mgl64.Quat {
	return mgl64.QuatIdent()
}

// New builds a quaternion from its x, y, z, w components.
func New(x, y, z, w float64) mgl64.Quat {
	return mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}
}

// Normalize returns q scaled to unit length. The zero quaternion normalizes to
// the identity so a degenerate input never yields NaN.
func Normalize(q mgl64.Quat) mgl64.Quat {
	squareMagnitude := q.Dot(q)
	if squareMagnitude == 0 {
		return Identity()
	}
	return q.Scale(1 / math.Sqrt(squareMagnitude))
}

// Inverse is the conjugate, which inverts unit quaternions without a division.
func Inverse(q mgl64.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: q.V.Mul(-1)}
}

func Negate(q mgl64.Quat) mgl64.Quat {
	return q.Scale(-1)
}

// InverseRotate rotates v by the inverse of q.
func InverseRotate(q mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 {
	return Inverse(q).Rotate(v)
}

// DeltaRotation returns the world-space rotation taking a to b:
// DeltaRotation(a, b).Mul(a) == b.
func DeltaRotation(a, b mgl64.Quat) mgl64.Quat {
	return b.Mul(Inverse(a))
}

// WorldToLocal expresses rotation b relative to a: a.Mul(WorldToLocal(a, b)) == b.
func WorldToLocal(a, b mgl64.Quat) mgl64.Quat {
	return Inverse(a).Mul(b)
}

// HalfAngle returns half the shortest angle between two rotations, in [0, π/2].
func HalfAngle(a, b mgl64.Quat) float64 {
	cosTheta := math.Abs(a.Dot(b))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	return math.Atan2(sinTheta, cosTheta)
}

// Angle returns the angle between two rotations, in radians.
func Angle(a, b mgl64.Quat) float64 {
	return 2 * HalfAngle(a, b)
}

// RightOf returns q applied to Right, the first column of q's rotation matrix.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	return mgl64.Vec3{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w)}
}

func UpOf(q mgl64.Quat) mgl64.Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	return mgl64.Vec3{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (x*w + y*z)}
}

func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	return mgl64.Vec3{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y)}
}

// FromAngleAxis builds the rotation of angle radians around a unit axis.
func FromAngleAxis(angle float64, axis mgl64.Vec3) mgl64.Quat {
	sinHalfAngle, cosHalfAngle := math.Sincos(0.5 * angle)
	return mgl64.Quat{W: cosHalfAngle, V: axis.Mul(sinHalfAngle)}
}

// ToAngleAxis decomposes q into a rotation angle in radians and a unit axis.
//
// A quaternion with no vector part has no defined axis; Right is returned
// with the angle, which is then 0 (or 2π for -identity).
func ToAngleAxis(q mgl64.Quat) (angle float64, axis mgl64.Vec3) {
	sinHalfTheta := q.V.Len()
	angle = 2 * math.Atan2(sinHalfTheta, q.W)
	if sinHalfTheta == 0 {
		return angle, Right
	}
	return angle, q.V.Mul(1 / sinHalfTheta)
}

// FromSpherical builds the rotation pointing Forward at the spherical
// coordinates theta (azimuth) and phi (elevation), in radians.
func FromSpherical(theta, phi float64) mgl64.Quat {
	sinTheta, cosTheta := math.Sincos(theta * 0.5)
	sinPhi, cosPhi := math.Sincos(phi * 0.5)
	return New(cosTheta*sinPhi, sinTheta*cosPhi, -sinTheta*sinPhi, cosTheta*cosPhi)
}

// Rotate composes a∘b after checking both are rotations.
func Rotate(a, b mgl64.Quat) mgl64.Quat {
	check.Unit(a, "quat.Rotate")
	check.Unit(b, "quat.Rotate")
	return a.Mul(b)
}

// RotateAround rotates point p around pivot.
func RotateAround(q mgl64.Quat, p, pivot mgl64.Vec3) mgl64.Vec3 {
	return q.Rotate(p.Sub(pivot)).Add(pivot)
}
