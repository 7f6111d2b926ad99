package controller

import (
	"math"

	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// updateOrientation turns the actor toward its horizontal heading. Below the
// alignment threshold the current orientation is held.
func (c *Controller) updateOrientation(dt float64) {
	h := gamemath.Horizontal(c.velocity)
	if h.LenSqr() <= config.Physics.AlignMinSpeedSq {
		return
	}
	dir, ok := gamemath.SafeNormalize(h)
	if !ok {
		return
	}
	amount := c.tuning.AlignmentSpeed * dt
	if amount <= 0 {
		return
	}
	if amount > 1 {
		amount = 1
	}
	target := faceToward(dir)
	c.orientation = mgl64.QuatSlerp(c.orientation, target, amount).Normalize()
}

// faceToward returns the rotation taking Forward onto dir. Directly behind is
// a half turn about Up.
func faceToward(dir mgl64.Vec3) mgl64.Quat {
	if dir.Dot(gamemath.Forward) < -1+1e-9 {
		return mgl64.QuatRotate(math.Pi, gamemath.Up)
	}
	return mgl64.QuatBetweenVectors(gamemath.Forward, dir)
}
