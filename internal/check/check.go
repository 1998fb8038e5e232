// Package check asserts caller contracts of the math packages.
//
// The assertions only run in binaries built with the screwdebug tag:
//
//	go test -tags screwdebug ./...
//
// Release builds compile every function here to an empty body, so hot loops
// pay nothing for them.
package check

import "math"

// UnitTolerance is how far a quaternion's squared length may drift from 1
// before it is considered invalid as a rotation.
const UnitTolerance = 1e-4

func isUnit(w, x, y, z float64) bool {
	return math.Abs(w*w+x*x+y*y+z*z-1) <= UnitTolerance
}
