// Package contact answers the per-tick grounding question for a sphere: is it
// touching something, along which normal, where should it rest, and is the
// surface a moving platform.
package contact

import (
	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/platform"
	"github.com/go-gl/mathgl/mgl64"
)

// Probe is the actor state a Source needs to detect contact.
type Probe struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Radius   float64
}

// Contact is the result of a probe. Position is the corrected centre and is
// only meaningful when Grounded is set.
type Contact struct {
	Grounded bool
	Normal   mgl64.Vec3
	Position mgl64.Vec3
	Platform platform.Handle
}

// OnPlatform reports whether the touched surface belongs to a platform.
func (c Contact) OnPlatform() bool {
	return c.Grounded && !c.Platform.IsZero()
}

// Source detects contact for a probe.
type Source interface {
	Resolve(p Probe) Contact
}

// SourceFunc adapts a function to Source.
type SourceFunc func(p Probe) Contact

func (f SourceFunc) Resolve(p Probe) Contact {
	return f(p)
}

// None never reports contact. Actors fall forever.
type None struct{}

func (None) Resolve(Probe) Contact {
	return Contact{}
}

// GroundPlane is an infinite horizontal floor.
type GroundPlane struct {
	Height    float64
	Tolerance float64
}

// DefaultGround is the floor at y=0 used when no source is configured.
func DefaultGround() GroundPlane {
	return GroundPlane{Tolerance: config.Physics.GroundTolerance}
}

// Resolve grounds the probe when its lowest point is within Tolerance of the
// plane and it is not moving away from it.
func (g GroundPlane) Resolve(p Probe) Contact {
	bottom := p.Position.Y() - p.Radius
	if bottom > g.Height+g.Tolerance || p.Velocity.Y() > 0 {
		return Contact{}
	}
	return Contact{
		Grounded: true,
		Normal:   mgl64.Vec3{0, 1, 0},
		Position: mgl64.Vec3{p.Position.X(), g.Height + p.Radius, p.Position.Z()},
	}
}

// Chain asks each source in order and returns the first contact.
type Chain []Source

func (c Chain) Resolve(p Probe) Contact {
	for _, s := range c {
		if s == nil {
			continue
		}
		if hit := s.Resolve(p); hit.Grounded {
			return hit
		}
	}
	return Contact{}
}
