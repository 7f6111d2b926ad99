package controller

import (
	"github.com/automoto/rollsphere/config"
	"go.uber.org/zap"
)

// JumpPhase is the jump request state within a tick.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	// JumpRequested is a press honored from the current contact state.
	JumpRequested
	// JumpBuffered is a press that coincides with landing. The landing edge
	// is checked ahead of the grounded case on purpose so it can be told apart.
	JumpBuffered
)

func (p JumpPhase) String() string {
	switch p {
	case JumpIdle:
		return "idle"
	case JumpRequested:
		return "requested"
	case JumpBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// nextJumpPhase decides what a jump press means this tick. The landing edge
// is checked before the plain grounded case so a press on the landing tick is
// recorded as buffered. An airborne press from idle becomes an air jump
// request; canJump then decides if any jumps are left.
func nextJumpPhase(phase JumpPhase, pressed, wasGrounded, grounded bool) JumpPhase {
	if !pressed {
		return phase
	}
	switch {
	case !wasGrounded && grounded:
		return JumpBuffered
	case phase == JumpIdle:
		return JumpRequested
	}
	return phase
}

func (c *Controller) canJump() bool {
	return c.grounded || c.jumpCount < c.tuning.MaxJumpCount
}

func (c *Controller) updateJump(pressed, wasGrounded bool) {
	c.jumpPhase = nextJumpPhase(c.jumpPhase, pressed, wasGrounded, c.grounded)
	c.lastJump = c.jumpPhase
	if c.jumpPhase == JumpIdle {
		return
	}
	if c.canJump() {
		c.executeJump()
	} else {
		c.log.Debug("jump dropped", zap.Int("jumpCount", c.jumpCount))
	}
	c.jumpPhase = JumpIdle
}

// executeJump sets the vertical speed to the calibrated impulse and adds a
// small boost along the last platform contact normal. Jumping detaches the
// actor from its platform.
func (c *Controller) executeJump() {
	c.velocity[1] = c.jumpImpulse
	c.velocity = c.velocity.Add(c.contactNormal.Mul(c.jumpImpulse * config.Physics.JumpBoostScale))
	c.grounded = false
	c.jumpCount++
	if c.link.present() {
		c.log.Debug("jumped off platform", zap.Stringer("platform", c.link.handle))
		c.link = link{}
	}
	c.log.Debug("jump",
		zap.Stringer("phase", c.jumpPhase),
		zap.Int("jumpCount", c.jumpCount),
		zap.Float64("impulse", c.jumpImpulse))
}
