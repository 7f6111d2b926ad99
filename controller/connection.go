package controller

import (
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/gravity"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// link is the non-owning association with a platform. Auto links come from
// the contact source and last only while it keeps reporting the platform.
type link struct {
	handle platform.Handle
	normal mgl64.Vec3
	auto   bool
}

func (l link) present() bool {
	return !l.handle.IsZero()
}

// Connected returns the platform the actor is attached to, if any.
func (c *Controller) Connected() (platform.Handle, bool) {
	return c.link.handle, c.link.present()
}

// SetPlatformConnection attaches the actor to a platform touched along
// normal. The actor counts as grounded and its jumps are restored.
func (c *Controller) SetPlatformConnection(h platform.Handle, normal mgl64.Vec3) {
	n := gamemath.NormalOrUp(normal)
	c.link = link{handle: h, normal: n}
	c.contactNormal = n
	c.activeNormal = n
	c.avgNormal = n
	c.grounded = true
	c.jumpCount = 0
}

// ClearPlatformConnection detaches the actor from its platform.
func (c *Controller) ClearPlatformConnection() {
	c.link = link{}
	c.grounded = false
	c.activeNormal = gamemath.Up
	c.avgNormal = gamemath.Up
}

func (c *Controller) platformVelocity(h platform.Handle) (mgl64.Vec3, bool) {
	if c.platforms == nil {
		return mgl64.Vec3{}, false
	}
	return c.platforms.PlatformVelocity(h)
}

// resolveContacts establishes this tick's grounding, normals, snapped
// position and platform velocity, then recalibrates the jump impulse.
// Velocity into a touched surface is cancelled.
func (c *Controller) resolveContacts() {
	c.grounded = false
	c.connectionVelocity = mgl64.Vec3{}
	c.groundNormal = gamemath.Up
	c.activeNormal = gamemath.Up
	c.avgNormal = gamemath.Up

	if c.link.present() && !c.link.auto {
		if v, ok := c.platformVelocity(c.link.handle); ok {
			c.grounded = true
			c.activeNormal = c.link.normal
			c.avgNormal = c.link.normal
			c.jumpCount = 0
			c.connectionVelocity = v
		} else {
			c.log.Debug("platform gone, dropping connection", zap.Stringer("platform", c.link.handle))
			c.ClearPlatformConnection()
		}
	}

	hit := contact.Contact{}
	if c.contacts != nil {
		hit = c.contacts.Resolve(contact.Probe{
			Position: c.position,
			Velocity: c.velocity,
			Radius:   c.radius,
		})
	}

	if hit.Grounded {
		n := gamemath.NormalOrUp(hit.Normal)
		c.grounded = true
		c.groundNormal = n
		c.activeNormal = n
		c.avgNormal = n
		c.position = hit.Position
		c.jumpCount = 0
		if into := c.velocity.Dot(n); into < 0 {
			c.velocity = c.velocity.Sub(n.Mul(into))
		}
	}
	c.refreshAutoLink(hit)
	c.updateJumpImpulse()
}

func (c *Controller) refreshAutoLink(hit contact.Contact) {
	if c.link.present() && !c.link.auto {
		return
	}
	if !hit.OnPlatform() {
		if c.link.present() {
			c.log.Debug("left platform", zap.Stringer("platform", c.link.handle))
			c.link = link{}
		}
		return
	}
	v, ok := c.platformVelocity(hit.Platform)
	if !ok {
		c.link = link{}
		return
	}
	if c.link.handle != hit.Platform {
		c.log.Debug("landed on platform", zap.Stringer("platform", hit.Platform))
	}
	c.link = link{handle: hit.Platform, normal: gamemath.NormalOrUp(hit.Normal), auto: true}
	c.connectionVelocity = v
}

func (c *Controller) updateJumpImpulse() {
	height := c.tuning.TargetJumpHeight
	if height <= 0 {
		height = config.DefaultJumpHeight
	}
	g := gravity.Resolve(c.gravity, c.position)
	c.jumpImpulse = gamemath.JumpImpulse(g.Len(), height)
}
