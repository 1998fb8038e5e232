package scalar

// Velocity after accelerating from v0 at a for t seconds.
func Velocity(v0, a, t float64) float64 {
	return v0 + a*t
}

// Displacement of a body starting at x0 with velocity v0 under constant acceleration a.
func Displacement(x0, v0, t, a float64) float64 {
	return x0 + v0*t + 0.5*a*t*t
}

// StoppingDistance is the distance needed to stop from velocity under a constant deceleration.
func StoppingDistance(velocity, acceleration float64) float64 {
	return velocity * velocity / (2 * acceleration)
}

// LinearDrag returns the drag coefficient d that makes velocity a fixed point of
// the discrete update v' = (v + a*dt) * (1 - d*dt).
func LinearDrag(acceleration, velocity, dt float64) float64 {
	return acceleration / (velocity + acceleration*dt)
}

// DragAcceleration is the inverse of LinearDrag: the acceleration that holds
// velocity steady under drag.
func DragAcceleration(velocity, drag, dt float64) float64 {
	return -(drag * velocity) / (drag*dt - 1)
}
