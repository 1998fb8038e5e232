package main

import (
	"fmt"

	"github.com/akmonengine/screw"
	"github.com/akmonengine/screw/dual"
	"github.com/akmonengine/screw/motion"
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a world with a stiff critically damped cube and a soft
// bouncy one, both chasing the same target.
func SetupScene() (*screw.World, *screw.Body, *screw.Body) {
	world := &screw.World{
		Substeps:  2,
		Workers:   2,
		SleepTime: 0.5,
		Events:    screw.NewEvents(),
	}

	target := rigid.NewTransform(mgl64.Vec3{5, 1, 0}, quat.Euler(mgl64.Vec3{0, 90, 0}))

	stiff := screw.NewBody(rigid.Identity(), spring.Config{Stiffness: 200}, spring.Config{Stiffness: 200})
	stiff.Id = "stiff"
	stiff.SetTarget(target)

	bouncy := screw.NewBody(rigid.Identity(), spring.Config{Stiffness: 40, Overshoot: 0.6}, spring.Config{Stiffness: 40, Overshoot: 0.6})
	bouncy.Id = "bouncy"
	bouncy.SetTarget(target)

	world.AddBody(stiff)
	world.AddBody(bouncy)

	world.Events.Subscribe(screw.ON_SLEEP, func(event screw.Event) {
		fmt.Printf("  💤 %v settled at %v\n", event.(screw.SleepEvent).Body.Id, event.(screw.SleepEvent).Body.State.Pose.Position)
	})
	world.Events.Subscribe(screw.ON_WAKE, func(event screw.Event) {
		fmt.Printf("  ⏰ %v woke up\n", event.(screw.WakeEvent).Body.Id)
	})

	return world, stiff, bouncy
}

// SpringWorld steps both cubes until they sleep, then moves the target.
func SpringWorld() {
	fmt.Println("🧪 Spring world: two cubes chasing a target")
	fmt.Println("==================================================")

	world, stiff, bouncy := SetupScene()

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 600

	for step := 0; step < maxSteps; step++ {
		world.Step(dt)

		if step%30 == 0 {
			fmt.Printf("t=%.2fs\n", float64(step+1)*dt)
			for _, body := range []*screw.Body{stiff, bouncy} {
				fmt.Printf("  %-6v position %v yaw %.1f°\n",
					body.Id,
					body.State.Pose.Position,
					quat.EulerAngles(body.State.Pose.Rotation)[1])
			}
		}

		if step == maxSteps/2 {
			fmt.Println("Moving the target back to the origin")
			stiff.SetTarget(rigid.Identity())
			bouncy.SetTarget(rigid.Identity())
		}
	}
	fmt.Println()
}

// ScrewPath prints the screw motion between two poses next to the straight
// position lerp, which cuts the corner.
func ScrewPath() {
	fmt.Println("🔩 Screw interpolation vs. lerp")
	fmt.Println("==================================================")

	pivot := mgl64.Vec3{1, 0, 0}
	from := rigid.Identity()
	to := rigid.RotateAroundPivot(quat.FromAngleAxis(mgl64.DegToRad(180), quat.Up), pivot)

	a, b := dual.FromTransform(from), dual.FromTransform(to)
	for i := 0; i <= 4; i++ {
		t := float64(i) / 4
		screwed := dual.ScrewInterpolate(a, b, t).Position()
		lerped := from.Lerp(to, t).Position
		fmt.Printf("  t=%.2f screw %v (r=%.3f)  lerp %v (r=%.3f)\n",
			t, screwed, screwed.Sub(pivot).Len(), lerped, lerped.Sub(pivot).Len())
	}
	fmt.Println()
}

// CameraShake kicks a rotation spring and prints it settling back.
func CameraShake() {
	fmt.Println("📷 Camera shake")
	fmt.Println("==================================================")

	shake := motion.IdentityRotation().AddImpulse(mgl64.Vec3{2, 0, 1})
	cfg := spring.Config{Stiffness: 150, Overshoot: 0.5}

	const dt float64 = 1.0 / 60.0
	for step := 0; step < 60; step++ {
		shake = shake.Update(cfg, dt)
		if step%10 == 0 {
			angle, axis := quat.ToAngleAxis(shake.Rotation)
			fmt.Printf("  t=%.2fs angle %.4f rad around %v\n", float64(step+1)*dt, angle, axis)
		}
	}
	fmt.Println()
}

func main() {
	SpringWorld()
	ScrewPath()
	CameraShake()
}
