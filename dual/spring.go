package dual

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/akmonengine/screw/scalar"
	"github.com/akmonengine/screw/spring"
)

var ErrNegativeDamping = errors.New("dual: negative damping")

// DlerpSpring tunes SpringDampDlerp.
type DlerpSpring struct {
	Stiffness float64
	Damping   float64
	// Clamp bounds the per-step interpolation parameter to [0, 1] so the
	// pose never passes the target in a single step. Off by default.
	Clamp bool
}

func (s DlerpSpring) Validate() error {
	switch {
	case math.IsNaN(s.Stiffness) || math.IsNaN(s.Damping):
		return spring.ErrNaN
	case s.Stiffness < 0:
		return fmt.Errorf("%w: %v", spring.ErrNegativeStiffness, s.Stiffness)
	case s.Damping < 0:
		return fmt.Errorf("%w: %v", ErrNegativeDamping, s.Damping)
	}
	return nil
}

// SpringDamp springs position and rotation independently towards target and
// returns the new pose with the updated twist.
func SpringDamp(current, target Quat, twist rigid.Twist, linear, angular spring.Config, dt float64) (Quat, rigid.Twist) {
	pose, twist := rigid.SpringDamp(current.Transform(), target.Transform(), twist, linear, angular, dt)
	return FromTransform(pose), twist
}

// SpringDampDlerp springs the interpolation parameter rather than the pose.
//
// The error is 1 - |dot| of the real parts, driving lerpVelocity with a
// spring of the given stiffness and damping. The pose then moves
// lerpVelocity*dt of the way to target with Dlerp. Without Clamp that
// fraction may exceed 1 and overshoot the target.
func SpringDampDlerp(current, target Quat, lerpVelocity float64, s DlerpSpring, dt float64) (Quat, float64) {
	err := scalar.Saturate(1 - math.Abs(Dot(current, target)))

	springForce := s.Stiffness * err
	dampingForce := -s.Damping * lerpVelocity
	lerpVelocity += (springForce + dampingForce) * dt

	t := lerpVelocity * dt
	if s.Clamp {
		t = scalar.Saturate(t)
	}
	return Dlerp(current, target, t), lerpVelocity
}

// Integrate advances q by twist over dt: the position moves along the linear
// velocity and the rotation along the world-space angular velocity.
func Integrate(q Quat, twist rigid.Twist, dt float64) Quat {
	position := q.Position().Add(twist.LinearVelocity.Mul(dt))
	rotation := quat.IntegrateVelocity(q.Real, twist.AngularVelocity, dt)
	return FromPositionRotation(position, rotation)
}
