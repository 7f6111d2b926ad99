// Package gravity supplies spatially varying gravity fields.
package gravity

import (
	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Provider returns the gravity vector acting at a world position. Providers
// are queried every tick and must be pure.
type Provider interface {
	GravityAt(position mgl64.Vec3) mgl64.Vec3
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(position mgl64.Vec3) mgl64.Vec3

func (f ProviderFunc) GravityAt(position mgl64.Vec3) mgl64.Vec3 {
	return f(position)
}

// Resolve queries p, falling back to the configured default gravity when no
// provider is attached.
func Resolve(p Provider, position mgl64.Vec3) mgl64.Vec3 {
	if p == nil {
		return config.Physics.DefaultGravity
	}
	return p.GravityAt(position)
}

// Uniform is the same gravity everywhere.
type Uniform struct {
	G mgl64.Vec3
}

func (u Uniform) GravityAt(mgl64.Vec3) mgl64.Vec3 {
	return u.G
}

// Radial pulls toward Center with constant Strength. Inside Radius (when set)
// the pull fades linearly to zero at the centre.
type Radial struct {
	Center   mgl64.Vec3
	Strength float64
	Radius   float64
}

func (r Radial) GravityAt(position mgl64.Vec3) mgl64.Vec3 {
	offset := r.Center.Sub(position)
	dir, ok := gamemath.SafeNormalize(offset)
	if !ok {
		return mgl64.Vec3{}
	}
	strength := r.Strength
	if r.Radius > 0 {
		if d := offset.Len(); d < r.Radius {
			strength *= d / r.Radius
		}
	}
	return dir.Mul(strength)
}

// Zone is an axis-aligned box with its own gravity. A non-nil Field takes
// precedence over the constant Gravity.
type Zone struct {
	Min, Max mgl64.Vec3
	Gravity  mgl64.Vec3
	Field    Provider
}

// Contains reports whether p lies inside the zone, bounds included.
func (z Zone) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < z.Min[i] || p[i] > z.Max[i] {
			return false
		}
	}
	return true
}

// Zones picks the first zone containing the position and otherwise defers to
// Fallback.
type Zones struct {
	Zones    []Zone
	Fallback Provider
}

func (z Zones) GravityAt(position mgl64.Vec3) mgl64.Vec3 {
	for _, zone := range z.Zones {
		if !zone.Contains(position) {
			continue
		}
		if zone.Field != nil {
			return zone.Field.GravityAt(position)
		}
		return zone.Gravity
	}
	return Resolve(z.Fallback, position)
}
