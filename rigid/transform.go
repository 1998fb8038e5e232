// Package rigid holds the two value types of rigid motion: Transform, a pose
// made of a position and a rotation, and Twist, the linear and angular
// velocity of that pose.
//
// Composition reads right to left like quaternion products: a.Transform(b)
// applies b first, then a.
package rigid

import (
	"github.com/akmonengine/screw/internal/check"
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/spring"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a rigid motion: rotate by Rotation, then translate by
// Position. Rotation must be a unit quaternion.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the transform that moves nothing.
func Identity() Transform {
	return Transform{Rotation: quat.Identity()}
}

// NewTransform creates a transform from a position and a rotation.
func NewTransform(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	return Transform{Position: position, Rotation: rotation}
}

// FromPosition is a pure translation.
func FromPosition(position mgl64.Vec3) Transform {
	return Transform{Position: position, Rotation: quat.Identity()}
}

// FromRotation is a pure rotation around the origin.
func FromRotation(rotation mgl64.Quat) Transform {
	return Transform{Rotation: rotation}
}

// RotateAroundPivot returns the transform rotating by rotation around pivot
// instead of the origin.
func RotateAroundPivot(rotation mgl64.Quat, pivot mgl64.Vec3) Transform {
	return Transform{Position: pivot.Sub(rotation.Rotate(pivot)), Rotation: rotation}
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	check.Unit(t.Rotation, "rigid.Transform.Inverse")

	inverse := quat.Inverse(t.Rotation)
	return Transform{Position: inverse.Rotate(t.Position).Mul(-1), Rotation: inverse}
}

// Rotate applies rotation after t, around the origin.
func (t Transform) Rotate(rotation mgl64.Quat) Transform {
	return Transform{Position: rotation.Rotate(t.Position), Rotation: rotation.Mul(t.Rotation)}
}

// Translate applies translation after t.
func (t Transform) Translate(translation mgl64.Vec3) Transform {
	return Transform{Position: t.Position.Add(translation), Rotation: t.Rotation}
}

// Transform applies t to a: a first, then t.
func (t Transform) Transform(a Transform) Transform {
	return a.Rotate(t.Rotation).Translate(t.Position)
}

func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

func (t Transform) TransformRotation(q mgl64.Quat) mgl64.Quat {
	return t.Rotation.Mul(q)
}

// InverseTransform applies the inverse of t to a. It equals
// t.Inverse().Transform(a) without building the inverse.
func (t Transform) InverseTransform(a Transform) Transform {
	return Transform{
		Position: quat.InverseRotate(t.Rotation, a.Position.Sub(t.Position)),
		Rotation: quat.WorldToLocal(t.Rotation, a.Rotation),
	}
}

func (t Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return quat.InverseRotate(t.Rotation, p.Sub(t.Position))
}

func (t Transform) InverseTransformRotation(q mgl64.Quat) mgl64.Quat {
	return quat.WorldToLocal(t.Rotation, q)
}

// DeltaTransform returns the transform D moving t onto a when applied after
// it: D.Transform(t) == a.
func (t Transform) DeltaTransform(a Transform) Transform {
	return a.Transform(t.Inverse())
}

// LocalDeltaTransform returns the transform D expressed in t's frame:
// t.Transform(D) == a.
func (t Transform) LocalDeltaTransform(a Transform) Transform {
	return t.InverseTransform(a)
}

// RotateAround applies rotation around pivot after t.
func (t Transform) RotateAround(rotation mgl64.Quat, pivot mgl64.Vec3) Transform {
	return RotateAroundPivot(rotation, pivot).Transform(t)
}

// Lerp interpolates the position on a straight line and slerps the rotation.
// The path is not a rigid motion: use dual.ScLERP for a constant velocity
// screw between two poses.
func (t Transform) Lerp(a Transform, f float64) Transform {
	return Transform{
		Position: t.Position.Add(a.Position.Sub(t.Position).Mul(f)),
		Rotation: quat.Slerp(t.Rotation, a.Rotation, f),
	}
}

// ApproxEqual compares positions component-wise and rotations up to sign.
func (t Transform) ApproxEqual(a Transform, epsilon float64) bool {
	if !t.Position.ApproxEqualThreshold(a.Position, epsilon) {
		return false
	}
	return t.Rotation.ApproxEqualThreshold(a.Rotation, epsilon) ||
		t.Rotation.ApproxEqualThreshold(quat.Negate(a.Rotation), epsilon)
}

// Mat4 returns the homogeneous matrix of t, translation times rotation.
func (t Transform) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).Mul4(t.Rotation.Mat4())
}

// SpringDamp moves current one step towards target. The linear and angular
// channels are independent springs sharing twist.
func SpringDamp(current, target Transform, twist Twist, linear, angular spring.Config, dt float64) (Transform, Twist) {
	position, linearVelocity := spring.DampVec3(current.Position, target.Position, twist.LinearVelocity, linear, dt)
	rotation, angularVelocity := quat.SpringDamp(current.Rotation, target.Rotation, twist.AngularVelocity, angular, dt)

	return Transform{Position: position, Rotation: rotation},
		Twist{LinearVelocity: linearVelocity, AngularVelocity: angularVelocity}
}
