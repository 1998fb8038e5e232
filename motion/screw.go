// Package motion holds the per-object states that springs drive: ScrewState
// for a full pose and RotationSpring for an orientation alone.
//
// States are values. Every method returns the next state and leaves its
// receiver untouched, so a simulation loop writes
//
//	state = state.SpringDamp(target, linear, angular, dt)
package motion

import (
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

// ScrewState is a pose with its velocity.
type ScrewState struct {
	Pose  rigid.Transform
	Twist rigid.Twist
}

// Identity is at rest at the origin.
func Identity() ScrewState {
	return ScrewState{Pose: rigid.Identity()}
}

func NewScrewState(pose rigid.Transform, twist rigid.Twist) ScrewState {
	return ScrewState{Pose: pose, Twist: twist}
}

// SpringDamp moves the state one step towards target. Position and rotation
// are independent springs.
func (s ScrewState) SpringDamp(target rigid.Transform, linear, angular spring.Config, dt float64) ScrewState {
	pose, twist := rigid.SpringDamp(s.Pose, target, s.Twist, linear, angular, dt)
	return ScrewState{Pose: pose, Twist: twist}
}

// Integrate lets the state coast for dt under its current twist.
func (s ScrewState) Integrate(dt float64) ScrewState {
	return ScrewState{
		Pose: rigid.NewTransform(
			s.Pose.Position.Add(s.Twist.LinearVelocity.Mul(dt)),
			quat.IntegrateVelocity(s.Pose.Rotation, s.Twist.AngularVelocity, dt),
		),
		Twist: s.Twist,
	}
}

func (s ScrewState) AddForce(force mgl64.Vec3) ScrewState {
	return ScrewState{Pose: s.Pose, Twist: s.Twist.AddForce(force)}
}

func (s ScrewState) AddTorque(torque mgl64.Vec3) ScrewState {
	return ScrewState{Pose: s.Pose, Twist: s.Twist.AddTorque(torque)}
}

// AddForceAtPoint applies force at a world point, relative to centerOfMass.
func (s ScrewState) AddForceAtPoint(force, point, centerOfMass mgl64.Vec3) ScrewState {
	return ScrewState{Pose: s.Pose, Twist: s.Twist.AddForceAtPoint(force, point, centerOfMass)}
}

// TransformPoint maps a local point to world space.
func (s ScrewState) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	return s.Pose.TransformPoint(point)
}

// RotatePoint rotates a local point by the pose rotation, ignoring position.
func (s ScrewState) RotatePoint(point mgl64.Vec3) mgl64.Vec3 {
	return s.Pose.Rotation.Rotate(point)
}
