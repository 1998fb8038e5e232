package scalar

import "math"

// SinFromCos returns sin(θ) for θ in [0, π] given cos(θ).
// The argument is clamped so floating point drift past ±1 never produces NaN.
func SinFromCos(cosTheta float64) float64 {
	return math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
}

// SafeAcos is math.Acos with its argument clamped to [-1, 1].
func SafeAcos(x float64) float64 {
	return math.Acos(Clamp(x, -1, 1))
}

// SafeAsin is math.Asin with its argument clamped to [-1, 1].
func SafeAsin(x float64) float64 {
	return math.Asin(Clamp(x, -1, 1))
}

// SineAddition computes sin(A + B).
func SineAddition(cosA, sinA, cosB, sinB float64) float64 {
	return sinA*cosB + cosA*sinB
}

// SineDifference computes sin(A - B).
func SineDifference(cosA, sinA, cosB, sinB float64) float64 {
	return sinA*cosB - cosA*sinB
}

// CosineAddition computes cos(A + B).
func CosineAddition(cosA, sinA, cosB, sinB float64) float64 {
	return cosA*cosB - sinA*sinB
}

// CosineDifference computes cos(A - B).
func CosineDifference(cosA, sinA, cosB, sinB float64) float64 {
	return cosA*cosB + sinA*sinB
}

// AngularDiameterToConeCosAngle returns the cosine of the half angle of a cone
// with the given full angular diameter.
func AngularDiameterToConeCosAngle(angularDiameter float64) float64 {
	return math.Cos(0.5 * angularDiameter)
}

// ConeCosAngleToSolidAngle returns the solid angle in steradians of a cone.
func ConeCosAngleToSolidAngle(coneCosAngle float64) float64 {
	return Tau * (1 - coneCosAngle)
}

func AngularDiameterToSolidAngle(angularDiameter float64) float64 {
	return ConeCosAngleToSolidAngle(AngularDiameterToConeCosAngle(angularDiameter))
}
