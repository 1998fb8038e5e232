package dual

import (
	"math"

	"github.com/akmonengine/screw/quat"
)

// Dlerp slerps the real parts and lerps the dual parts along the shortest
// path, then normalizes. Cheaper than ScrewInterpolate but not constant speed.
func Dlerp(a, b Quat, t float64) Quat {
	if Dot(a, b) < 0 {
		b = b.Negate()
	}
	return Normalize(Quat{
		Real: quat.Slerp(a.Real, b.Real, t),
		Dual: a.Dual.Add(b.Dual.Sub(a.Dual).Scale(t)),
	})
}

// ScLERP blends both parts of a and b with the slerp weights of their real
// parts, sin((1-t)θ)/sinθ and sin(tθ)/sinθ, then normalizes.
//
// When the rotations are equal sinθ vanishes and the weights degrade to
// 1-t and t, so a pure translation still ends on b at t = 1.
func ScLERP(a, b Quat, t float64) Quat {
	cosTheta := Dot(a, b)
	if cosTheta < 0 {
		b = b.Negate()
		cosTheta = -cosTheta
	}

	theta := math.Acos(math.Min(1, cosTheta))
	sinTheta := math.Sin(theta)
	if sinTheta < screwEpsilon {
		return Normalize(a.Scale(1 - t).Add(b.Scale(t)))
	}

	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Normalize(a.Scale(wa).Add(b.Scale(wb)))
}

// ScrewInterpolate moves from a to b along the screw joining them, at
// constant angular and linear speed: a ∘ (a* ∘ b)^t.
func ScrewInterpolate(a, b Quat, t float64) Quat {
	return Multiply(a, Pow(Multiply(Conjugate(a), b), t))
}
