//go:build !screwdebug

package check

import "github.com/go-gl/mathgl/mgl64"

const Enabled = false

func Unit(mgl64.Quat, string) {}

func Stiffness(float64, string) {}

func Overshoot(float64, string) {}
