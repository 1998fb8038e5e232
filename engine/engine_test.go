package engine

import (
	"math"
	"testing"

	"github.com/akmonengine/screw/dual"
	"github.com/akmonengine/screw/quat"
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dualquat"
)

var sample = rigid.NewTransform(
	mgl64.Vec3{1.5, -2.25, 3},
	quat.FromAngleAxis(0.9, mgl64.Vec3{1, 2, 2}.Normalize()),
)

func requireTransform(t *testing.T, want, got rigid.Transform, epsilon float64) {
	t.Helper()
	require.True(t, got.ApproxEqual(want, epsilon), "got %v, want %v", got, want)
}

// =============================================================================
// mathgl float32
// =============================================================================

func TestMgl32_RoundTrip(t *testing.T) {
	position, rotation := TransformTo32(sample)
	require.Equal(t, mgl32.Vec3{1.5, -2.25, 3}, position)

	requireTransform(t, sample, TransformFrom32(position, rotation), 1e-6)
}

func TestMgl32_Vec3IsExactForFloat32Values(t *testing.T) {
	v := mgl32.Vec3{0.5, -1e3, 7.25}
	require.Equal(t, v, Vec3To32(Vec3From32(v)))
}

func TestTransformToMat4(t *testing.T) {
	m := TransformToMat4(sample)
	p := mgl64.Vec3{0.3, 0.2, -0.7}

	got := mgl32.TransformCoordinate(Vec3To32(p), m)
	want := Vec3To32(sample.TransformPoint(p))
	require.True(t, got.ApproxEqualThreshold(want, 1e-5), "got %v, want %v", got, want)
}

// =============================================================================
// gonum
// =============================================================================

func TestGonum_QuatRoundTrip(t *testing.T) {
	q := sample.Rotation
	n := QuatToGonum(q)

	require.Equal(t, q.W, n.Real)
	require.Equal(t, q.V[0], n.Imag)
	require.Equal(t, q, QuatFromGonum(n))
}

func TestGonum_DualAgreesOnComposition(t *testing.T) {
	a := dual.FromTransform(sample)
	b := dual.FromTransform(rigid.NewTransform(mgl64.Vec3{0, 4, 0}, quat.FromAngleAxis(-1.2, quat.Forward)))

	require.Equal(t, a, DualFromGonum(DualToGonum(a)))

	got := DualFromGonum(dualquat.Mul(DualToGonum(a), DualToGonum(b)))
	require.True(t, got.ApproxEqual(dual.Multiply(a, b), 1e-12))
	requireTransform(t, sample.Transform(b.Transform()), got.Transform(), 1e-9)
}

// =============================================================================
// golang/geo r3
// =============================================================================

func TestR3_RoundTrip(t *testing.T) {
	v := mgl64.Vec3{1, -2, 3.5}
	require.Equal(t, r3.Vector{X: 1, Y: -2, Z: 3.5}, Vec3ToR3(v))
	require.Equal(t, v, Vec3FromR3(Vec3ToR3(v)))
}

func TestTwistFromR3(t *testing.T) {
	linear := r3.Vector{X: 1, Y: 0, Z: 0}
	angular := r3.Vector{X: 0, Y: 0, Z: math.Pi}

	twist := TwistFromR3(linear, angular)
	require.Equal(t, rigid.NewTwist(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, math.Pi}), twist)

	gotLinear, gotAngular := TwistToR3(twist)
	require.Equal(t, linear, gotLinear)
	require.Equal(t, angular, gotAngular)
}

// =============================================================================
// glTF
// =============================================================================

func TestGLTF_RoundTrip(t *testing.T) {
	node := &gltf.Node{Scale: [3]float64{2, 2, 2}}
	SetNodeTransform(node, sample)

	requireTransform(t, sample, NodeTransform(node), 1e-12)
	require.Equal(t, [3]float64{2, 2, 2}, node.Scale, "Scale must be kept")
}

func TestGLTF_MirrorsZ(t *testing.T) {
	// Quarter turn about +Y in glTF space.
	s := math.Sqrt2 / 2
	node := &gltf.Node{
		Translation: [3]float64{1, 2, 3},
		Rotation:    [4]float64{0, s, 0, s},
	}

	got := NodeTransform(node)
	require.True(t, got.Position.ApproxEqualThreshold(mgl64.Vec3{1, 2, -3}, 1e-12))

	// In glTF the turn takes +X to -Z; mirrored, +X goes to +Z.
	dir := got.Rotation.Rotate(quat.Right)
	require.True(t, dir.ApproxEqualThreshold(quat.Forward, 1e-12), "Right rotates to %v", dir)
}

func TestGLTF_ZeroRotationIsIdentity(t *testing.T) {
	got := NodeTransform(&gltf.Node{Translation: [3]float64{0, 1, 0}})
	requireTransform(t, rigid.FromPosition(mgl64.Vec3{0, 1, 0}), got, 1e-12)
}

func TestGLTF_Matrix(t *testing.T) {
	// A right-handed pose with a uniform scale of 3, stored as a matrix.
	rotation := quat.FromAngleAxis(0.6, mgl64.Vec3{0, 1, 1}.Normalize())
	translation := mgl64.Vec3{4, 5, 6}
	m := mgl64.Translate3D(translation[0], translation[1], translation[2]).
		Mul4(rotation.Mat4()).
		Mul4(mgl64.Scale3D(3, 3, 3))

	got := NodeTransform(&gltf.Node{Matrix: [16]float64(m)})

	mirrored := &gltf.Node{
		Translation: [3]float64(translation),
		Rotation:    [4]float64{rotation.V[0], rotation.V[1], rotation.V[2], rotation.W},
	}
	requireTransform(t, NodeTransform(mirrored), got, 1e-9)
}

func TestGLTF_MirrorIsInvolution(t *testing.T) {
	require.Equal(t, sample.Position, mirrorPosition(mirrorPosition(sample.Position)))
	require.Equal(t, sample.Rotation, mirrorRotation(mirrorRotation(sample.Rotation)))
}
