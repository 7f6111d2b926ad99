package config

import "github.com/go-gl/mathgl/mgl64"

// ActorConfig contains the defaults used when an actor is spawned.
type ActorConfig struct {
	Radius float64 `mapstructure:"radius" yaml:"radius"`
	Tuning Tuning  `mapstructure:"tuning" yaml:"tuning"`
}

// PhysicsConfig contains physics constants shared by every actor.
type PhysicsConfig struct {
	// Gravity used when no provider is attached or the provider is nil.
	DefaultGravity mgl64.Vec3

	// Contact
	GroundTolerance float64 // Distance above a surface still counted as touching

	// Jump
	JumpBoostScale float64 // Fraction of the impulse added along the contact normal

	// Orientation
	AlignMinSpeedSq float64 // Squared horizontal speed below which orientation holds
}

// PlatformConfig contains moving platform defaults.
type PlatformConfig struct {
	Speed         float64 // Default travel speed along X
	Bound         float64 // Distance from origin before the platform turns back
	TweenDuration float64 // Seconds per leg for eased platforms
}

// SimConfig contains fixed-step simulation settings.
type SimConfig struct {
	TickRate  int     `mapstructure:"tick_rate" yaml:"tick_rate"`   // Ticks per second for the realtime loop
	DeltaTime float64 `mapstructure:"delta_time" yaml:"delta_time"` // Seconds advanced per tick
	KillY     float64 `mapstructure:"kill_y" yaml:"kill_y"`         // Actors below this height respawn
}

// ViewerConfig contains debug viewer settings.
type ViewerConfig struct {
	Width         int
	Height        int
	PixelsPerUnit float64
}

// Global configuration instances
var (
	Actor    ActorConfig
	Physics  PhysicsConfig
	Platform PlatformConfig
	Sim      SimConfig
	Viewer   ViewerConfig
)

func init() {
	Actor = ActorConfig{
		Radius: 0.5,
		Tuning: DefaultTuning(),
	}

	Physics = PhysicsConfig{
		DefaultGravity:  mgl64.Vec3{0, -15, 0},
		GroundTolerance: 0.1,
		JumpBoostScale:  0.1,
		AlignMinSpeedSq: 0.01,
	}

	Platform = PlatformConfig{
		Speed:         2,
		Bound:         5,
		TweenDuration: 2,
	}

	Sim = SimConfig{
		TickRate:  60,
		DeltaTime: 1.0 / 60.0,
		KillY:     -50,
	}

	Viewer = ViewerConfig{
		Width:         1280,
		Height:        720,
		PixelsPerUnit: 32,
	}
}
