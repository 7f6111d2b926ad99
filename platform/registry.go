package platform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle is a non-owning, generational reference to a registered platform.
// A handle outlives its platform safely: lookups simply fail once the
// platform has been removed.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "platform#none"
	}
	return fmt.Sprintf("platform#%d.%d", h.index, h.gen)
}

// Lookup resolves a handle to the platform's current velocity.
type Lookup interface {
	PlatformVelocity(h Handle) (mgl64.Vec3, bool)
}

type slot struct {
	p   *Platform
	gen uint32
}

// Registry owns the world's platforms.
type Registry struct {
	slots []slot
	free  []uint32
	count int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers p and returns its handle.
func (r *Registry) Add(p *Platform) Handle {
	r.count++
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].p = p
		return Handle{index: idx, gen: r.slots[idx].gen}
	}
	r.slots = append(r.slots, slot{p: p, gen: 1})
	return Handle{index: uint32(len(r.slots) - 1), gen: 1}
}

// Remove drops the platform behind h. Every outstanding copy of h goes stale.
func (r *Registry) Remove(h Handle) bool {
	if _, ok := r.Get(h); !ok {
		return false
	}
	s := &r.slots[h.index]
	s.p = nil
	s.gen++
	if s.gen == 0 {
		// generation 0 is reserved for the zero Handle
		s.gen = 1
	}
	r.free = append(r.free, h.index)
	r.count--
	return true
}

// Get returns the live platform behind h.
func (r *Registry) Get(h Handle) (*Platform, bool) {
	if r == nil || h.IsZero() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[h.index]
	if s.gen != h.gen || s.p == nil {
		return nil, false
	}
	return s.p, true
}

// PlatformVelocity implements Lookup.
func (r *Registry) PlatformVelocity(h Handle) (mgl64.Vec3, bool) {
	p, ok := r.Get(h)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p.Velocity(), true
}

// Each visits live platforms in slot order.
func (r *Registry) Each(fn func(Handle, *Platform)) {
	for i, s := range r.slots {
		if s.p == nil {
			continue
		}
		fn(Handle{index: uint32(i), gen: s.gen}, s.p)
	}
}

// Len returns the number of live platforms.
func (r *Registry) Len() int {
	return r.count
}
