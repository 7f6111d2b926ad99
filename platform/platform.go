// Package platform models moving platforms an actor can stand on and inherit
// velocity from.
package platform

import (
	"math"

	"github.com/automoto/rollsphere/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Motion advances a platform by dt seconds, updating its position and velocity.
type Motion interface {
	Advance(p *Platform, dt float64)
}

// Platform is a box-shaped surface owned by the world. Actors only hold a
// Handle to it.
type Platform struct {
	Position mgl64.Vec3
	Size     mgl64.Vec3 // X width, Y thickness, Z depth
	Origin   mgl64.Vec3 // Centre of the oscillation
	Bound    float64    // Max X distance from Origin before turning back

	velocity mgl64.Vec3
	motion   Motion
}

// New creates a platform centred at position that bounces along X.
func New(position, size mgl64.Vec3) *Platform {
	return &Platform{
		Position: position,
		Size:     size,
		Origin:   position,
		Bound:    config.Platform.Bound,
		motion:   Bounce{},
	}
}

// Velocity returns the platform's velocity for the current tick.
func (p *Platform) Velocity() mgl64.Vec3 {
	return p.velocity
}

// SetVelocity overrides the current velocity.
func (p *Platform) SetVelocity(v mgl64.Vec3) {
	p.velocity = v
}

// SetMotion replaces the motion pattern. nil means straight-line travel.
func (p *Platform) SetMotion(m Motion) {
	p.motion = m
}

// Top is the world height of the upper face.
func (p *Platform) Top() float64 {
	return p.Position.Y() + p.Size.Y()/2
}

// Update advances the platform by dt seconds.
func (p *Platform) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if p.motion == nil {
		p.Position = p.Position.Add(p.velocity.Mul(dt))
		return
	}
	p.motion.Advance(p, dt)
}

// Bounce moves at constant velocity and reverses X travel once the platform
// is past Bound and still heading outward.
type Bounce struct{}

func (Bounce) Advance(p *Platform, dt float64) {
	p.Position = p.Position.Add(p.velocity.Mul(dt))
	if p.Bound <= 0 {
		return
	}
	off := p.Position.X() - p.Origin.X()
	if math.Abs(off) > p.Bound && off*p.velocity.X() > 0 {
		p.velocity[0] = -p.velocity[0]
	}
}
