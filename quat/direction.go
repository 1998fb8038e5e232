package quat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the cross product length under which two unit vectors
// are treated as parallel.
const parallelEpsilon = 1e-9

// FromToRotation returns the shortest rotation turning direction a onto b.
func FromToRotation(a, b mgl64.Vec3) mgl64.Quat {
	return FromToRotationNormalized(a.Normalize(), b.Normalize())
}

// FromToRotationNormalized is FromToRotation for unit vectors.
//
// With cos(θ/2) = sqrt((1 + a·b) / 2), the rotation is
// (a×b / (2cos(θ/2)), cos(θ/2)). Opposite vectors have no unique shortest
// rotation; a half turn around an axis perpendicular to a is returned.
func FromToRotationNormalized(a, b mgl64.Vec3) mgl64.Quat {
	cosHalfAngle := math.Sqrt(math.Max(0, 0.5+0.5*a.Dot(b)))
	if cosHalfAngle < parallelEpsilon {
		return mgl64.Quat{W: 0, V: orthogonal(a)}
	}
	return mgl64.Quat{W: cosHalfAngle, V: a.Cross(b).Mul(1 / (2 * cosHalfAngle))}
}

// orthogonal returns a unit vector perpendicular to the unit vector v.
func orthogonal(v mgl64.Vec3) mgl64.Vec3 {
	axis := Right
	if math.Abs(v[0]) > 0.9 {
		axis = Up
	}
	return v.Cross(axis).Normalize()
}

// LookRotation returns the rotation whose ForwardOf is forward and whose UpOf
// lies in the plane of forward and up.
//
// The basis is right = up×forward, then up' = forward×right. When forward is
// parallel to up there is no such plane and the shortest rotation from Forward
// is returned instead.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	forward = forward.Normalize()
	right := up.Cross(forward)
	if right.Len() < parallelEpsilon {
		return FromToRotationNormalized(Forward, forward)
	}
	right = right.Normalize()
	return FromMatrix3x3(mgl64.Mat3FromCols(right, forward.Cross(right), forward))
}

// LookRotationUp is LookRotation with the world Up.
func LookRotationUp(forward mgl64.Vec3) mgl64.Quat {
	return LookRotation(forward, Up)
}
