// Package controller moves a sphere-shaped actor: it turns per-tick input,
// surface contact, platform velocity and gravity into a new velocity and
// position, and runs the multi-jump state machine.
package controller

import (
	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/gravity"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Input is the discrete control state for one tick.
type Input struct {
	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool
	Jump         bool
}

// Controller owns one actor's kinematic state. It is not safe for concurrent
// use; the host calls Update serially from its simulation step.
type Controller struct {
	radius  float64
	tuning  config.Tuning
	enabled bool

	gravity   gravity.Provider
	contacts  contact.Source
	platforms platform.Lookup
	log       *zap.Logger

	position           mgl64.Vec3
	velocity           mgl64.Vec3
	desiredVelocity    mgl64.Vec3
	connectionVelocity mgl64.Vec3

	grounded      bool
	groundNormal  mgl64.Vec3
	contactNormal mgl64.Vec3
	activeNormal  mgl64.Vec3
	avgNormal     mgl64.Vec3

	jumpCount   int
	jumpPhase   JumpPhase
	lastJump    JumpPhase
	jumpImpulse float64

	link link

	orientation mgl64.Quat
}

// Option customizes a Controller at construction.
type Option func(*Controller)

// WithTuning replaces the default movement options.
func WithTuning(t config.Tuning) Option {
	return func(c *Controller) { c.tuning = t }
}

// WithGravity sets the gravity field. nil falls back to the default gravity.
func WithGravity(p gravity.Provider) Option {
	return func(c *Controller) { c.gravity = p }
}

// WithContacts sets the contact source. nil disables contact detection.
func WithContacts(s contact.Source) Option {
	return func(c *Controller) { c.contacts = s }
}

// WithPlatforms sets the lookup used to resolve platform handles.
func WithPlatforms(l platform.Lookup) Option {
	return func(c *Controller) { c.platforms = l }
}

// WithLogger attaches a logger. Debug level traces jumps and contact changes.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a controller for a sphere of the given radius resting on the
// origin, grounded by the default y=0 plane.
func New(radius float64, opts ...Option) (*Controller, error) {
	if !(radius > 0) {
		return nil, &config.Error{Field: "radius", Value: radius, Reason: "must be positive"}
	}
	c := &Controller{
		radius:   radius,
		tuning:   config.DefaultTuning(),
		enabled:  true,
		contacts: contact.DefaultGround(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.tuning.Validate(); err != nil {
		return nil, err
	}
	c.Reset()
	return c, nil
}

// Reset restores position, velocity, jump and contact state to their
// defaults. Tuning and collaborators are kept.
func (c *Controller) Reset() {
	c.position = mgl64.Vec3{0, c.radius, 0}
	c.velocity = mgl64.Vec3{}
	c.desiredVelocity = mgl64.Vec3{}
	c.connectionVelocity = mgl64.Vec3{}

	c.grounded = false
	c.groundNormal = gamemath.Up
	c.contactNormal = mgl64.Vec3{}
	c.activeNormal = gamemath.Up
	c.avgNormal = gamemath.Up

	c.jumpCount = 0
	c.jumpPhase = JumpIdle
	c.lastJump = JumpIdle

	c.link = link{}
	c.orientation = mgl64.QuatIdent()
	c.updateJumpImpulse()
}

// SetTuning replaces every movement option at once. Invalid tuning is
// rejected and the current tuning is kept.
func (c *Controller) SetTuning(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	return nil
}

// Configure edits a copy of the current tuning and applies it if valid.
func (c *Controller) Configure(edit func(*config.Tuning)) error {
	t := c.tuning
	edit(&t)
	return c.SetTuning(t)
}

func (c *Controller) Tuning() config.Tuning { return c.tuning }

func (c *Controller) SetGravity(p gravity.Provider) { c.gravity = p }

func (c *Controller) SetContacts(s contact.Source) { c.contacts = s }

func (c *Controller) SetPlatforms(l platform.Lookup) { c.platforms = l }

// SetEnabled pauses or resumes simulation. A disabled controller ignores
// Update.
func (c *Controller) SetEnabled(enabled bool) { c.enabled = enabled }

func (c *Controller) Enabled() bool { return c.enabled }

func (c *Controller) Radius() float64 { return c.radius }

func (c *Controller) Position() mgl64.Vec3 { return c.position }

func (c *Controller) SetPosition(p mgl64.Vec3) { c.position = p }

func (c *Controller) Velocity() mgl64.Vec3 { return c.velocity }

func (c *Controller) SetVelocity(v mgl64.Vec3) { c.velocity = v }

func (c *Controller) DesiredVelocity() mgl64.Vec3 { return c.desiredVelocity }

func (c *Controller) ConnectionVelocity() mgl64.Vec3 { return c.connectionVelocity }

func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) GroundNormal() mgl64.Vec3 { return c.groundNormal }

func (c *Controller) ContactNormal() mgl64.Vec3 { return c.contactNormal }

func (c *Controller) ActiveNormal() mgl64.Vec3 { return c.activeNormal }

func (c *Controller) AvgNormal() mgl64.Vec3 { return c.avgNormal }

func (c *Controller) JumpCount() int { return c.jumpCount }

func (c *Controller) JumpImpulse() float64 { return c.jumpImpulse }

// JumpPhase is the phase left after the last Update. It is always JumpIdle
// between ticks.
func (c *Controller) JumpPhase() JumpPhase { return c.jumpPhase }

// LastJumpPhase is the non-idle phase the last Update evaluated, or JumpIdle
// when no jump was requested.
func (c *Controller) LastJumpPhase() JumpPhase { return c.lastJump }

func (c *Controller) Orientation() mgl64.Quat { return c.orientation }
