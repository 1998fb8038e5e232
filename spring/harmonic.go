package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// Harmonic is the exact solution of the damped spring for a fixed step.
// Coefficients are computed once in NewHarmonic, so each update is a handful
// of multiplies. Use it when dt is constant, e.g. a fixed-rate animation
// loop; use Damp when dt varies from frame to frame.
type Harmonic struct {
	spring harmonica.Spring
	dt     float64
}

// NewHarmonic precomputes a spring with angular frequency sqrt(k) and damping
// ratio 1-overshoot, stepping dt seconds per update.
func NewHarmonic(cfg Config, dt float64) Harmonic {
	return Harmonic{
		spring: harmonica.NewSpring(dt, math.Sqrt(cfg.Stiffness), 1-cfg.Overshoot),
		dt:     dt,
	}
}

// NewHarmonicFPS is NewHarmonic with dt = 1/fps.
func NewHarmonicFPS(cfg Config, fps int) Harmonic {
	return NewHarmonic(cfg, harmonica.FPS(fps))
}

func (h Harmonic) DeltaTime() float64 {
	return h.dt
}

// Update advances current towards target and returns the new position and velocity.
func (h Harmonic) Update(current, target, velocity float64) (float64, float64) {
	return h.spring.Update(current, velocity, target)
}

// UpdateVec3 runs Update on each component.
func (h Harmonic) UpdateVec3(current, target, velocity mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var position mgl64.Vec3
	for i := range 3 {
		position[i], velocity[i] = h.spring.Update(current[i], velocity[i], target[i])
	}
	return position, velocity
}
