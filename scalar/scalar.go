// Package scalar holds the float64 helpers every other package builds on:
// angle conversion, clamping, interpolation, angle wrapping, trig identities
// and a quadratic solver.
//
// Angles are radians everywhere except Radians/Degrees, which are the only
// conversion points.
package scalar

import "math"

const (
	Tau       = 2 * math.Pi
	HalfPi    = 0.5 * math.Pi
	QuarterPi = 0.25 * math.Pi
)

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return math.Pi / 180 * degrees
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return 180 / math.Pi * radians
}

// Sign returns -1 for negative x, 1 otherwise (including zero).
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Flip negates x when flip is set.
func Flip(x float64, flip bool) float64 {
	if flip {
		return -x
	}
	return x
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

func Square(x float64) float64 {
	return x * x
}

// Rcp returns 1/x.
func Rcp(x float64) float64 {
	return 1 / x
}

// Rsqrt returns 1/sqrt(x).
func Rsqrt(x float64) float64 {
	return 1 / math.Sqrt(x)
}

// Snap rounds value down to a multiple of cellSize.
func Snap(value, cellSize float64) float64 {
	return math.Floor(value/cellSize) * cellSize
}

// Mod is a floored modulo: the result has the sign of y.
func Mod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}

// WrapAngle maps an angle in radians to [0, 2π).
func WrapAngle(x float64) float64 {
	return Mod(x, Tau)
}

// DeltaAngle returns the signed shortest angle from current to target, in (-π, π].
func DeltaAngle(current, target float64) float64 {
	angle := WrapAngle(target - current)
	if angle <= math.Pi {
		return angle
	}
	return angle - Tau
}

// MoveTowards moves a towards b by at most speed, never passing b.
func MoveTowards(a, b, speed float64) float64 {
	delta := b - a
	if math.Abs(delta) <= speed {
		return b
	}
	return a + Sign(delta)*speed
}

// MoveTowardsAngle is MoveTowards for angles, taking the shortest way around.
func MoveTowardsAngle(a, b, speed float64) float64 {
	delta := DeltaAngle(a, b)
	if -speed < delta && delta < speed {
		return b
	}
	return MoveTowards(a, a+delta, speed)
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InvLerp returns the t for which Lerp(a, b, t) == x.
func InvLerp(x, a, b float64) float64 {
	return (x - a) * Rcp(b-a)
}

// RemapScaleOffset returns the scale and offset that map [prevMin, prevMax]
// onto [newMin, newMax] as x*scale + offset.
func RemapScaleOffset(prevMin, prevMax, newMin, newMax float64) (scale, offset float64) {
	scale = Rcp(prevMax-prevMin) * (newMax - newMin)
	offset = newMin - prevMin*scale
	return scale, offset
}

func Remap(x, prevMin, prevMax, newMin, newMax float64) float64 {
	scale, offset := RemapScaleOffset(prevMin, prevMax, newMin, newMax)
	return x*scale + offset
}

func RemapClamped(x, prevMin, prevMax, newMin, newMax float64) float64 {
	return Lerp(newMin, newMax, Saturate(InvLerp(x, prevMin, prevMax)))
}

// Damp moves a towards b with exponential decay at the given rate, framerate independent.
func Damp(a, b, rate, dt float64) float64 {
	return Lerp(a, b, 1-math.Exp(-rate*dt))
}

// Quadratic solves a*x² + b*x + c = 0. ok is false when the roots are complex,
// in which case r0 and r1 are NaN. r0 <= r1 for a > 0.
func Quadratic(a, b, c float64) (r0, r1 float64, ok bool) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.NaN(), math.NaN(), false
	}

	sqrtDiscriminant := math.Sqrt(discriminant)
	r0 = (-b - sqrtDiscriminant) / (2 * a)
	r1 = (-b + sqrtDiscriminant) / (2 * a)
	return r0, r1, true
}
