package controller

import (
	"github.com/automoto/rollsphere/gravity"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Update advances the actor by dt seconds. Negative dt is rejected and the
// tick skipped; zero dt runs contact and jump logic without integrating.
func (c *Controller) Update(dt float64, in Input) {
	if !c.enabled {
		return
	}
	if dt < 0 {
		c.log.Warn("negative delta time, skipping tick", zap.Float64("dt", dt))
		return
	}

	wasGrounded := c.grounded
	c.resolveContacts()
	c.updateDesiredVelocity(in)
	c.blendVelocity(dt)

	if !c.grounded {
		g := gravity.Resolve(c.gravity, c.position)
		c.velocity = c.velocity.Add(g.Mul(dt))
	}

	c.updateJump(in.Jump, wasGrounded)

	c.position = c.position.Add(c.velocity.Mul(dt))
	c.velocity = gamemath.ApplyHorizontalDamping(c.velocity, c.tuning.LinearDamping, dt)
	c.updateOrientation(dt)
}

// updateDesiredVelocity maps the four movement flags onto the XZ plane
// (forward is -Z), clamps the direction to unit length, scales it by
// MaxSpeed and adds the raw platform velocity.
func (c *Controller) updateDesiredVelocity(in Input) {
	var dir mgl64.Vec3
	if in.MoveForward {
		dir[2]--
	}
	if in.MoveBackward {
		dir[2]++
	}
	if in.MoveLeft {
		dir[0]--
	}
	if in.MoveRight {
		dir[0]++
	}
	if dir.LenSqr() > 1 {
		dir, _ = gamemath.SafeNormalize(dir)
	}
	c.desiredVelocity = dir.Mul(c.tuning.MaxSpeed).Add(c.connectionVelocity)
}

// blendVelocity steers the tangential part of velocity toward the desired
// velocity, limited by the acceleration cap. The component along avgNormal is
// never touched, so fall speed survives horizontal steering.
func (c *Controller) blendVelocity(dt float64) {
	target := c.desiredVelocity
	if !gamemath.IsZero(c.connectionVelocity) {
		target = target.Add(gamemath.ProjectOnPlane(c.connectionVelocity, c.avgNormal))
	}
	planar := gamemath.ProjectOnPlane(c.velocity, c.avgNormal)
	diff := target.Sub(planar)

	accel := c.tuning.MaxAirAcceleration
	if c.grounded {
		accel = c.tuning.MaxAcceleration
	}
	c.velocity = c.velocity.Add(gamemath.ClampLength(diff, accel*dt))
}
