package platform

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenMotion eases a platform back and forth along Axis, Travel units from
// its origin, taking Duration seconds per leg.
type TweenMotion struct {
	Axis     mgl64.Vec3
	Travel   float64
	Duration float64
	Easing   ease.TweenFunc

	tween   *gween.Tween
	outward bool
}

// NewTweenMotion creates an eased ping-pong motion. A nil easing is linear.
func NewTweenMotion(axis mgl64.Vec3, travel, duration float64, easing ease.TweenFunc) *TweenMotion {
	if easing == nil {
		easing = ease.Linear
	}
	return &TweenMotion{
		Axis:     axis,
		Travel:   travel,
		Duration: duration,
		Easing:   easing,
	}
}

func (m *TweenMotion) leg() {
	from, to := float32(0), float32(m.Travel)
	if !m.outward {
		from, to = to, from
	}
	m.outward = !m.outward
	m.tween = gween.New(from, to, float32(m.Duration), m.Easing)
}

func (m *TweenMotion) Advance(p *Platform, dt float64) {
	if m.tween == nil {
		m.outward = true
		m.leg()
	}
	offset, finished := m.tween.Update(float32(dt))
	target := p.Origin.Add(m.Axis.Mul(float64(offset)))
	p.velocity = target.Sub(p.Position).Mul(1 / dt)
	p.Position = target
	if finished {
		m.leg()
	}
}
