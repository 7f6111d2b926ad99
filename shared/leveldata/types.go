// Package leveldata parses arena files. It has no dependencies on ebitengine,
// donburi or resolv; pure data only.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Object group names recognised in an arena TMX file.
const (
	GroupSettings     = "Settings"
	GroupSurfaces     = "Surfaces"
	GroupPlatforms    = "Platforms"
	GroupSpawns       = "Spawns"
	GroupGravityZones = "GravityZones"
)

// Motion names for platforms.
const (
	MotionBounce = "bounce"
	MotionTween  = "tween"
)

// Defaults applied when an arena leaves a setting out.
const (
	DefaultUnitsPerPixel     = 1.0 / 16.0
	DefaultKillY             = -50.0
	DefaultGravityY          = -15.0
	DefaultPlatformThickness = 0.5
)

// Arena is a playfield in world units. Map X becomes world X, map Y becomes
// world Z.
type Arena struct {
	Name          string
	UnitsPerPixel float64
	Width         float64 // World X extent starting at 0
	Depth         float64 // World Z extent starting at 0
	KillY         float64
	Gravity       mgl64.Vec3 // Gravity outside every zone
	Floor         *float64   // Height of an unbounded ground plane, nil for none

	Surfaces     []Surface
	Platforms    []PlatformSpec
	Spawns       []Spawn
	GravityZones []GravityZone
}

// Surface is a static slab footprint.
type Surface struct {
	Name       string
	MinX, MinZ float64
	MaxX, MaxZ float64
	Top        float64
	Normal     mgl64.Vec3 // Zero means world-up
}

// PlatformSpec describes a moving platform.
type PlatformSpec struct {
	Name     string
	Center   mgl64.Vec3
	Size     mgl64.Vec3
	Velocity mgl64.Vec3
	Bound    float64 // 0 uses the configured default
	Motion   string
	Travel   float64 // Tween distance along the velocity direction
	Duration float64 // Seconds per tween leg, 0 uses the configured default
}

// Spawn is an actor start position.
type Spawn struct {
	Position mgl64.Vec3
	Index    int
}

// GravityZone overrides gravity inside an axis-aligned box.
type GravityZone struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Gravity mgl64.Vec3
	Pull    float64 // Non-zero pulls toward the zone centre instead of Gravity
}
