package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// JumpImpulse returns the launch speed that peaks at height under a constant
// gravity of the given magnitude: sqrt(2*g*h). Non-positive inputs give 0.
func JumpImpulse(gravityMagnitude, height float64) float64 {
	if gravityMagnitude <= 0 || height <= 0 {
		return 0
	}
	return math.Sqrt(2 * gravityMagnitude * height)
}

// DampingFactor returns the per-tick multiplier 1 - damping*dt, floored at 0.
func DampingFactor(damping, dt float64) float64 {
	f := 1 - damping*dt
	if f < 0 {
		return 0
	}
	return f
}

// ApplyHorizontalDamping scales the X and Z components of v, leaving Y alone.
func ApplyHorizontalDamping(v mgl64.Vec3, damping, dt float64) mgl64.Vec3 {
	if damping <= 0 {
		return v
	}
	f := DampingFactor(damping, dt)
	return mgl64.Vec3{v.X() * f, v.Y(), v.Z() * f}
}
