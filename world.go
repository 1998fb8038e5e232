// Package screw steps many spring-driven rigid bodies at once.
//
// Each Body carries its own ScrewState and target; bodies never interact, so
// a World spreads them across worker goroutines and every body is advanced by
// exactly one goroutine per substep. The math itself lives in the quat, rigid,
// dual, spring and motion packages and can be used without a World.
package screw

import (
	"github.com/akmonengine/screw/motion"
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_WORKERS  = 1
	DEFAULT_SUBSTEPS = 1

	// DEFAULT_SLEEP_THRESHOLD bounds both the speed (m/s and rad/s) and the
	// distance to target under which a body counts as settled.
	DEFAULT_SLEEP_THRESHOLD = 1e-3
)

// Body is a pose sprung towards Target.
type Body struct {
	Id any

	State   motion.ScrewState
	Target  rigid.Transform
	Linear  spring.Config
	Angular spring.Config

	IsSleeping bool
	SleepTimer float64
}

// NewBody creates a body at rest on pose.
func NewBody(pose rigid.Transform, linear, angular spring.Config) *Body {
	return &Body{
		State:   motion.NewScrewState(pose, rigid.Twist{}),
		Target:  pose,
		Linear:  linear,
		Angular: angular,
	}
}

// SetTarget moves the target and wakes the body.
func (b *Body) SetTarget(target rigid.Transform) {
	b.Target = target
	b.Awake()
}

func (b *Body) AddForce(force mgl64.Vec3) {
	b.Awake()
	b.State = b.State.AddForce(force)
}

func (b *Body) AddTorque(torque mgl64.Vec3) {
	b.Awake()
	b.State = b.State.AddTorque(torque)
}

// Integrate advances the body by one substep of h seconds.
func (b *Body) Integrate(h float64) {
	if b.IsSleeping {
		return
	}
	b.State = b.State.SpringDamp(b.Target, b.Linear, b.Angular, h)
}

// Settled reports whether the body is slower than threshold and closer than
// threshold to its target, both linearly and angularly.
func (b *Body) Settled(threshold float64) bool {
	twist := b.State.Twist
	if twist.LinearVelocity.Len() >= threshold || twist.AngularVelocity.Len() >= threshold {
		return false
	}

	delta := b.State.Pose.Position.Sub(b.Target.Position).Len()
	angle := quat.Angle(b.State.Pose.Rotation, b.Target.Rotation)
	return delta < threshold && angle < threshold
}

// TrySleep puts the body to sleep once it stayed settled for timeThreshold seconds.
func (b *Body) TrySleep(dt float64, timeThreshold float64, threshold float64) {
	if b.Settled(threshold) {
		b.SleepTimer += dt
		if b.SleepTimer >= timeThreshold {
			b.Sleep()
		}
	} else {
		b.Awake()
	}
}

func (b *Body) Sleep() {
	b.IsSleeping = true
	b.SleepTimer = 0.0
	b.State = motion.NewScrewState(b.State.Pose, rigid.Twist{})
}

func (b *Body) Awake() {
	b.IsSleeping = false
	b.SleepTimer = 0.0
}

type World struct {
	// List of all bodies in the world
	Bodies   []*Body
	Substeps int
	Workers  int

	// SleepTime is how long a body must stay settled before it sleeps.
	// Zero disables sleeping.
	SleepTime float64
	// SleepThreshold overrides DEFAULT_SLEEP_THRESHOLD when positive.
	SleepThreshold float64

	Events Events
}

// AddBody adds a body to the world
func (w *World) AddBody(body *Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	delete(w.Events.sleepStates, body)
}

// Step advances every body by dt seconds, split in Substeps equal substeps.
func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	w.Substeps = max(DEFAULT_SUBSTEPS, w.Substeps)
	h := dt / float64(w.Substeps)

	for range w.Substeps {
		w.integrate(h)

		if w.SleepTime > 0 {
			w.trySleep(h)
		}
	}

	w.Events.processSleepEvents(w.Bodies)
	w.Events.flush()
}

func (w *World) integrate(h float64) {
	task(w.Workers, w.Bodies, func(body *Body) {
		body.Integrate(h)
	})
}

// trySleep is too cheap per body to be worth a task
func (w *World) trySleep(h float64) {
	threshold := w.SleepThreshold
	if threshold <= 0 {
		threshold = DEFAULT_SLEEP_THRESHOLD
	}

	for _, body := range w.Bodies {
		if body.IsSleeping {
			continue
		}
		body.TrySleep(h, w.SleepTime, threshold)
	}
}
