package quat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Slerp spherically interpolates from a to b along the shortest arc.
//
// b is negated when the quaternions lie in opposite hemispheres. When the two
// are the same rotation sinθ is zero and a is returned as is.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	cosTheta := a.Dot(b)
	if cosTheta < 0 {
		b = Negate(b)
		cosTheta = -cosTheta
	}

	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	if sinTheta == 0 {
		return a
	}

	theta := math.Atan2(sinTheta, cosTheta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb))
}

// Lerp is a normalized linear interpolation along the shortest arc. Cheaper
// than Slerp, but its angular speed is not constant.
func Lerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = Negate(b)
	}
	return Normalize(a.Add(b.Sub(a).Scale(t)))
}
