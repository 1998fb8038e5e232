// Package spring integrates critically damped springs.
//
// The integrator is the implicit (backward Euler) form of the damped spring
//
//	x'' = k*(target - x) - c*x'
//
// solved for the next velocity:
//
//	v' = (v + k*delta*dt) / (1 + c*dt + k*dt²)
//	x' = x + v'*dt
//
// with c = 2*(1-overshoot)*sqrt(k). Unlike explicit Euler it cannot diverge,
// whatever the stiffness or the step size. Overshoot 0 is critically damped;
// values in (0, 1) let the spring oscillate a little before settling.
// Overshoot >= 1 removes all damping and is a caller error.
//
// Harmonic provides the exact closed-form solution of the same spring when a
// fixed step size is known up front.
package spring

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/screw/internal/check"
	"github.com/akmonengine/screw/scalar"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNegativeStiffness = errors.New("spring: negative stiffness")
	ErrUnstableOvershoot = errors.New("spring: overshoot must be below 1")
	ErrNaN               = errors.New("spring: NaN parameter")
)

// Config is the tuning of one spring channel.
// The zero value is a spring with no stiffness, which never moves.
type Config struct {
	// Stiffness k, in 1/s². The natural angular frequency is sqrt(k).
	Stiffness float64
	// Overshoot in [0, 1): 0 is critically damped.
	Overshoot float64
}

// Validate reports whether the config yields a stable spring.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Stiffness) || math.IsNaN(c.Overshoot):
		return ErrNaN
	case c.Stiffness < 0:
		return fmt.Errorf("%w: %v", ErrNegativeStiffness, c.Stiffness)
	case c.Overshoot >= 1:
		return fmt.Errorf("%w: %v", ErrUnstableOvershoot, c.Overshoot)
	}
	return nil
}

// DampingCoefficient returns c = 2*(1-overshoot)*sqrt(k).
func (c Config) DampingCoefficient() float64 {
	return 2 * (1 - c.Overshoot) * math.Sqrt(c.Stiffness)
}

// Velocity returns the spring velocity after one step, given the offset
// delta = target - current.
func Velocity(delta, velocity float64, cfg Config, dt float64) float64 {
	check.Stiffness(cfg.Stiffness, "spring.Velocity")
	check.Overshoot(cfg.Overshoot, "spring.Velocity")

	k := cfg.Stiffness
	c := cfg.DampingCoefficient()
	return (velocity + k*delta*dt) / (1 + c*dt + k*dt*dt)
}

// Damp advances current towards target by one step and returns the new
// position and velocity.
func Damp(current, target, velocity float64, cfg Config, dt float64) (float64, float64) {
	velocity = Velocity(target-current, velocity, cfg, dt)
	return current + velocity*dt, velocity
}

// DampAngle is Damp for angles in radians, springing the shortest way around.
func DampAngle(current, target, velocity float64, cfg Config, dt float64) (float64, float64) {
	target = current + scalar.DeltaAngle(current, target)
	return Damp(current, target, velocity, cfg, dt)
}

// VelocityVec3 applies Velocity to each component.
func VelocityVec3(delta, velocity mgl64.Vec3, cfg Config, dt float64) mgl64.Vec3 {
	check.Stiffness(cfg.Stiffness, "spring.VelocityVec3")
	check.Overshoot(cfg.Overshoot, "spring.VelocityVec3")

	k := cfg.Stiffness
	c := cfg.DampingCoefficient()
	denominator := 1 + c*dt + k*dt*dt
	return velocity.Add(delta.Mul(k * dt)).Mul(1 / denominator)
}

// DampVec3 advances current towards target by one step.
func DampVec3(current, target, velocity mgl64.Vec3, cfg Config, dt float64) (mgl64.Vec3, mgl64.Vec3) {
	velocity = VelocityVec3(target.Sub(current), velocity, cfg, dt)
	return current.Add(velocity.Mul(dt)), velocity
}
