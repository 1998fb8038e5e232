package quat

import (
	"math"

	"github.com/akmonengine/screw/internal/check"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

// AngularError returns the rotation from a to b as a world-space rotation
// vector: axis * angle, with the angle in [0, π].
//
// q and -q are the same rotation. The delta is flipped onto the w >= 0
// hemisphere before decomposing, otherwise the error could point the long way
// around and spring torques would spike near 180°.
func AngularError(a, b mgl64.Quat) mgl64.Vec3 {
	angle, axis := AngularErrorAngleAxis(a, b)
	return axis.Mul(angle)
}

// AngularErrorAngleAxis is AngularError split into angle and unit axis.
func AngularErrorAngleAxis(a, b mgl64.Quat) (float64, mgl64.Vec3) {
	check.Unit(a, "quat.AngularError")
	check.Unit(b, "quat.AngularError")

	delta := DeltaRotation(a, b)
	if delta.W < 0 {
		delta = Negate(delta)
	}
	return ToAngleAxis(delta)
}

// AngularErrorIdentity is AngularError from a to the identity.
func AngularErrorIdentity(a mgl64.Quat) mgl64.Vec3 {
	delta := Inverse(a)
	if delta.W < 0 {
		delta = Negate(delta)
	}
	angle, axis := ToAngleAxis(delta)
	return axis.Mul(angle)
}

// AngularVelocity returns the constant angular velocity, in rad/s, that turns
// a into b in dt seconds. dt == 0 yields zero velocity.
func AngularVelocity(a, b mgl64.Quat, dt float64) mgl64.Vec3 {
	if dt == 0 {
		return mgl64.Vec3{}
	}
	return AngularError(a, b).Mul(1 / dt)
}

// IntegrateVelocity advances current by a world-space angular velocity over dt.
//
// It is the first-order step q' = normalize((0.5*dt*ω, 1) ∘ q): cheap, and
// accurate while |ω|*dt stays small. IntegrateVelocityExact follows the exact
// exponential map for large steps.
func IntegrateVelocity(current mgl64.Quat, velocity mgl64.Vec3, dt float64) mgl64.Quat {
	step := mgl64.Quat{W: 1, V: velocity.Mul(0.5 * dt)}
	return Normalize(step.Mul(current))
}

// IntegrateVelocityExact advances current by rotating |ω|*dt radians around ω.
func IntegrateVelocityExact(current mgl64.Quat, velocity mgl64.Vec3, dt float64) mgl64.Quat {
	speed := velocity.Len()
	if speed == 0 {
		return current
	}
	step := FromAngleAxis(speed*dt, velocity.Mul(1/speed))
	return Normalize(step.Mul(current))
}

// SpringDamp springs current towards target by one step and returns the new
// rotation and angular velocity. velocity is in world space, rad/s.
func SpringDamp(current, target mgl64.Quat, velocity mgl64.Vec3, cfg spring.Config, dt float64) (mgl64.Quat, mgl64.Vec3) {
	velocity = spring.VelocityVec3(AngularError(current, target), velocity, cfg, dt)
	return IntegrateVelocity(current, velocity, dt), velocity
}

// SpringDampIdentity is SpringDamp with the identity as target.
func SpringDampIdentity(current mgl64.Quat, velocity mgl64.Vec3, cfg spring.Config, dt float64) (mgl64.Quat, mgl64.Vec3) {
	velocity = spring.VelocityVec3(AngularErrorIdentity(current), velocity, cfg, dt)
	return IntegrateVelocity(current, velocity, dt), velocity
}

// RotateTowards rotates a towards b by at most maxDelta radians.
func RotateTowards(a, b mgl64.Quat, maxDelta float64) mgl64.Quat {
	angle := Angle(a, b)
	if angle == 0 {
		return b
	}
	return Slerp(a, b, math.Min(1, maxDelta/angle))
}
