//go:build screwdebug

package check

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const Enabled = true

// Unit panics if q is not a unit quaternion.
func Unit(q mgl64.Quat, op string) {
	if !isUnit(q.W, q.V[0], q.V[1], q.V[2]) {
		panic(fmt.Sprintf("%s: non-unit quaternion %v (length %v)", op, q, q.Len()))
	}
}

// Stiffness panics on a negative or NaN spring stiffness.
func Stiffness(k float64, op string) {
	if k < 0 || math.IsNaN(k) {
		panic(fmt.Sprintf("%s: invalid stiffness %v", op, k))
	}
}

// Overshoot panics when overshoot would make the spring non-decaying.
func Overshoot(overshoot float64, op string) {
	if overshoot >= 1 || math.IsNaN(overshoot) {
		panic(fmt.Sprintf("%s: overshoot %v must be < 1", op, overshoot))
	}
}
