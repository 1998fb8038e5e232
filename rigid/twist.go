package rigid

import "github.com/go-gl/mathgl/mgl64"

// Twist is the instantaneous velocity of a rigid body.
// Nothing decays it: the simulation loop owning it decides when to reset.
type Twist struct {
	LinearVelocity  mgl64.Vec3 // m/s
	AngularVelocity mgl64.Vec3 // rad/s, world space
}

func NewTwist(linearVelocity, angularVelocity mgl64.Vec3) Twist {
	return Twist{LinearVelocity: linearVelocity, AngularVelocity: angularVelocity}
}

// AddForce adds force to the linear velocity. Mass is left to the caller.
func (t Twist) AddForce(force mgl64.Vec3) Twist {
	return Twist{LinearVelocity: t.LinearVelocity.Add(force), AngularVelocity: t.AngularVelocity}
}

// AddTorque adds torque to the angular velocity.
func (t Twist) AddTorque(torque mgl64.Vec3) Twist {
	return Twist{LinearVelocity: t.LinearVelocity, AngularVelocity: t.AngularVelocity.Add(torque)}
}

func (t Twist) AddTwist(a Twist) Twist {
	return t.AddForce(a.LinearVelocity).AddTorque(a.AngularVelocity)
}

// AddForceAtPoint applies force at a world point: the force itself plus the
// torque (point - centerOfMass) × force.
func (t Twist) AddForceAtPoint(force, point, centerOfMass mgl64.Vec3) Twist {
	return t.AddForce(force).AddTorque(point.Sub(centerOfMass).Cross(force))
}

func (t Twist) Scale(s float64) Twist {
	return Twist{LinearVelocity: t.LinearVelocity.Mul(s), AngularVelocity: t.AngularVelocity.Mul(s)}
}

// IsZero reports whether both velocities are exactly zero.
func (t Twist) IsZero() bool {
	return t.LinearVelocity == mgl64.Vec3{} && t.AngularVelocity == mgl64.Vec3{}
}
