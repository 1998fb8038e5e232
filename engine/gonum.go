package engine

import (
	"github.com/akmonengine/screw/dual"
	"github.com/akmonengine/screw/rigid"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// QuatToGonum maps W to Real and V to the Imag, Jmag and Kmag parts.
func QuatToGonum(q mgl64.Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

func QuatFromGonum(n quat.Number) mgl64.Quat {
	return mgl64.Quat{W: n.Real, V: mgl64.Vec3{n.Imag, n.Jmag, n.Kmag}}
}

func DualToGonum(d dual.Quat) dualquat.Number {
	return dualquat.Number{Real: QuatToGonum(d.Real), Dual: QuatToGonum(d.Dual)}
}

func DualFromGonum(n dualquat.Number) dual.Quat {
	return dual.Quat{Real: QuatFromGonum(n.Real), Dual: QuatFromGonum(n.Dual)}
}

func Vec3ToR3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func Vec3FromR3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// TwistFromR3 builds a twist from linear (m/s) and angular (rad/s) velocities.
func TwistFromR3(linear, angular r3.Vector) rigid.Twist {
	return rigid.NewTwist(Vec3FromR3(linear), Vec3FromR3(angular))
}

func TwistToR3(t rigid.Twist) (linear, angular r3.Vector) {
	return Vec3ToR3(t.LinearVelocity), Vec3ToR3(t.AngularVelocity)
}
