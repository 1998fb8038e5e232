package motion

import (
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

// RotationSpring is a ScrewState without position: an orientation that
// wobbles back to rest, such as a camera shake or a hanging sign.
type RotationSpring struct {
	Rotation        mgl64.Quat
	AngularVelocity mgl64.Vec3
}

func IdentityRotation() RotationSpring {
	return RotationSpring{Rotation: quat.Identity()}
}

// AddImpulse kicks the angular velocity by impulse, in rad/s.
func (r RotationSpring) AddImpulse(impulse mgl64.Vec3) RotationSpring {
	return RotationSpring{Rotation: r.Rotation, AngularVelocity: r.AngularVelocity.Add(impulse)}
}

// Update springs the rotation one step back towards the identity.
func (r RotationSpring) Update(cfg spring.Config, dt float64) RotationSpring {
	rotation, velocity := quat.SpringDampIdentity(r.Rotation, r.AngularVelocity, cfg, dt)
	return RotationSpring{Rotation: rotation, AngularVelocity: velocity}
}

// UpdateTowards springs the rotation one step towards target.
func (r RotationSpring) UpdateTowards(target mgl64.Quat, cfg spring.Config, dt float64) RotationSpring {
	rotation, velocity := quat.SpringDamp(r.Rotation, target, r.AngularVelocity, cfg, dt)
	return RotationSpring{Rotation: rotation, AngularVelocity: velocity}
}
