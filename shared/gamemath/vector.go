package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the squared length below which a vector has no direction.
const Epsilon = 1e-12

var (
	// Up is the world-up axis.
	Up = mgl64.Vec3{0, 1, 0}
	// Forward is the axis a resting actor faces.
	Forward = mgl64.Vec3{0, 0, 1}
)

// IsZero reports whether v is too short to carry a direction.
func IsZero(v mgl64.Vec3) bool {
	return v.LenSqr() <= Epsilon
}

// SafeNormalize returns the unit vector of v. A zero-length v yields the zero
// vector and false instead of NaNs.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	lenSq := v.LenSqr()
	if lenSq <= Epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / math.Sqrt(lenSq)), true
}

// NormalOrUp normalizes n, falling back to world-up when n has no direction.
func NormalOrUp(n mgl64.Vec3) mgl64.Vec3 {
	if unit, ok := SafeNormalize(n); ok {
		return unit
	}
	return Up
}

// ProjectOnPlane removes the component of v along the unit normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// ClampLength rescales v to maxLen when it is longer, keeping its direction.
func ClampLength(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	if maxLen <= 0 {
		return mgl64.Vec3{}
	}
	lenSq := v.LenSqr()
	if lenSq <= maxLen*maxLen {
		return v
	}
	unit, ok := SafeNormalize(v)
	if !ok {
		return v
	}
	return unit.Mul(maxLen)
}

// Horizontal drops the world-vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
