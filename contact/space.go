package contact

import (
	"fmt"
	"math"

	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	tagSurface = "surface"
	tagProbe   = "probe"
)

// Bounds is the XZ extent a Space covers.
type Bounds struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Surface is a horizontal slab footprint. Top is the world height of the
// face an actor rests on.
type Surface struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Top        float64
	Normal     mgl64.Vec3
	Platform   platform.Handle
}

// SurfaceFor describes the top face of a platform.
func SurfaceFor(p *platform.Platform, h platform.Handle) Surface {
	half := p.Size.Mul(0.5)
	return Surface{
		MinX:     p.Position.X() - half.X(),
		MinZ:     p.Position.Z() - half.Z(),
		MaxX:     p.Position.X() + half.X(),
		MaxZ:     p.Position.Z() + half.Z(),
		Top:      p.Top(),
		Platform: h,
	}
}

// SurfaceID identifies a surface inside a Space.
type SurfaceID int

// Space is a broad-phase contact source. Surfaces are projected onto the XZ
// plane and bucketed in a resolv grid; candidates are then tested exactly.
type Space struct {
	Tolerance float64

	bounds  Bounds
	space   *resolv.Space
	probe   *resolv.Object
	objects map[SurfaceID]*resolv.Object
	nextID  SurfaceID
}

// NewSpace creates a space covering bounds with square cells of cellSize
// world units.
func NewSpace(bounds Bounds, cellSize int) (*Space, error) {
	if bounds.MaxX <= bounds.MinX || bounds.MaxZ <= bounds.MinZ {
		return nil, fmt.Errorf("contact: empty bounds %+v", bounds)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("contact: cell size %d must be positive", cellSize)
	}
	w := int(math.Ceil(bounds.MaxX - bounds.MinX))
	h := int(math.Ceil(bounds.MaxZ - bounds.MinZ))
	s := &Space{
		Tolerance: config.Physics.GroundTolerance,
		bounds:    bounds,
		space:     resolv.NewSpace(w, h, cellSize, cellSize),
		objects:   make(map[SurfaceID]*resolv.Object),
	}
	s.probe = resolv.NewObject(0, 0, 0, 0, tagProbe)
	s.space.Add(s.probe)
	return s, nil
}

// Add inserts a surface and returns its id.
func (s *Space) Add(surf Surface) SurfaceID {
	s.nextID++
	id := s.nextID
	x, z := s.local(surf.MinX, surf.MinZ)
	obj := resolv.NewObject(x, z, surf.MaxX-surf.MinX, surf.MaxZ-surf.MinZ, tagSurface)
	obj.Data = &surf
	s.space.Add(obj)
	s.objects[id] = obj
	return id
}

// Move replaces the geometry of an existing surface.
func (s *Space) Move(id SurfaceID, surf Surface) bool {
	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	obj.X, obj.Y = s.local(surf.MinX, surf.MinZ)
	obj.W = surf.MaxX - surf.MinX
	obj.H = surf.MaxZ - surf.MinZ
	obj.Data = &surf
	obj.Update()
	return true
}

// Remove deletes a surface.
func (s *Space) Remove(id SurfaceID) bool {
	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	s.space.Remove(obj)
	delete(s.objects, id)
	return true
}

// Len returns the number of surfaces.
func (s *Space) Len() int {
	return len(s.objects)
}

func (s *Space) local(x, z float64) (float64, float64) {
	return x - s.bounds.MinX, z - s.bounds.MinZ
}

// Resolve grounds the probe on the highest surface whose footprint overlaps
// the sphere and whose top lies between the sphere's centre and its lowest
// point plus Tolerance. A rising probe is not grounded.
func (s *Space) Resolve(p Probe) Contact {
	x, z := s.local(p.Position.X()-p.Radius, p.Position.Z()-p.Radius)
	s.probe.X, s.probe.Y = x, z
	s.probe.W, s.probe.H = 2*p.Radius, 2*p.Radius
	s.probe.Update()

	check := s.probe.Check(0, 0, tagSurface)
	if check == nil {
		return Contact{}
	}

	var best *Surface
	bottom := p.Position.Y() - p.Radius
	for _, obj := range check.ObjectsByTags(tagSurface) {
		surf, ok := obj.Data.(*Surface)
		if !ok {
			continue
		}
		if bottom > surf.Top+s.Tolerance || p.Position.Y() < surf.Top {
			continue
		}
		if !gamemath.CircleOverlapsRect(p.Position.X(), p.Position.Z(), p.Radius,
			surf.MinX, surf.MinZ, surf.MaxX, surf.MaxZ) {
			continue
		}
		if best == nil || surf.Top > best.Top {
			best = surf
		}
	}
	if best == nil {
		return Contact{}
	}

	if p.Velocity.Y() > 0 {
		return Contact{}
	}
	return Contact{
		Grounded: true,
		Normal:   gamemath.NormalOrUp(best.Normal),
		Position: gamemath.SnapAboveSurface(p.Position, best.Top, p.Radius),
		Platform: best.Platform,
	}
}
