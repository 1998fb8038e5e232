package engine

import (
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// glTF is right-handed with +Z towards the viewer; this module is left-handed
// with +Z forward. Mirroring Z converts one into the other: positions negate
// z, rotations negate their x and y parts.

func mirrorPosition(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], -v[2]}
}

func mirrorRotation(q mgl64.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{-q.V[0], -q.V[1], q.V[2]}}
}

// NodeTransform returns the pose of a glTF node in left-handed space.
//
// A node with a non-identity Matrix is decomposed from it, dividing out any
// scale, otherwise Translation and Rotation are used. A zero Rotation is the unset default
// and reads as the identity. Scale is dropped: rigid transforms carry none.
func NodeTransform(n *gltf.Node) rigid.Transform {
	m := mgl64.Mat4(n.Matrix)
	if m != (mgl64.Mat4{}) && m != mgl64.Ident4() {
		position := m.Col(3).Vec3()
		r := m.Mat3()
		rotation := quat.FromMatrix3x3(mgl64.Mat3FromCols(r.Col(0).Normalize(), r.Col(1).Normalize(), r.Col(2).Normalize()))
		return rigid.NewTransform(mirrorPosition(position), mirrorRotation(quat.Normalize(rotation)))
	}

	position := mgl64.Vec3(n.Translation)
	rotation := quat.New(n.Rotation[0], n.Rotation[1], n.Rotation[2], n.Rotation[3])
	return rigid.NewTransform(mirrorPosition(position), mirrorRotation(quat.Normalize(rotation)))
}

// SetNodeTransform writes t into n's Translation and Rotation in glTF
// handedness. Matrix is reset so the TRS fields take effect; Scale is kept.
func SetNodeTransform(n *gltf.Node, t rigid.Transform) {
	position := mirrorPosition(t.Position)
	rotation := mirrorRotation(t.Rotation)

	n.Matrix = [16]float64(mgl64.Ident4())
	n.Translation = [3]float64(position)
	n.Rotation = [4]float64{rotation.V[0], rotation.V[1], rotation.V[2], rotation.W}
}
