// Package engine converts between this module's float64 types and the types
// of the engines and libraries it is used with: mathgl float32 vectors,
// gonum quaternions, golang/geo vectors and glTF nodes.
//
// Conversions only happen here. The math packages never see a foreign type.
package engine

import (
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func Vec3From32(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func Vec3To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// QuatFrom32 widens q. float32 rounding leaves it a few ulps off unit
// length; callers chaining many conversions should renormalize.
func QuatFrom32(q mgl32.Quat) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: Vec3From32(q.V)}
}

func QuatTo32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: Vec3To32(q.V)}
}

// TransformFrom32 builds a transform from a float32 position and rotation.
func TransformFrom32(position mgl32.Vec3, rotation mgl32.Quat) rigid.Transform {
	return rigid.NewTransform(Vec3From32(position), QuatFrom32(rotation).Normalize())
}

func TransformTo32(t rigid.Transform) (mgl32.Vec3, mgl32.Quat) {
	return Vec3To32(t.Position), QuatTo32(t.Rotation)
}

// TransformToMat4 returns the float32 model matrix of t.
func TransformToMat4(t rigid.Transform) mgl32.Mat4 {
	m := t.Mat4()
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
