package factory

import (
	"github.com/automoto/rollsphere/archetypes"
	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/gamemath"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform registers a moving platform with the arena and spawns the
// entity that tracks it. A platform without a velocity bounces along X at the
// configured speed.
func CreatePlatform(ecs *ecs.ECS, arena *components.ArenaData, spec leveldata.PlatformSpec) *donburi.Entry {
	p := platform.New(spec.Center, spec.Size)
	if spec.Bound > 0 {
		p.Bound = spec.Bound
	}

	velocity := spec.Velocity
	if gamemath.IsZero(velocity) {
		velocity = mgl64.Vec3{cfg.Platform.Speed, 0, 0}
	}
	p.SetVelocity(velocity)

	if spec.Motion == leveldata.MotionTween {
		// The eased platform ping-pongs along its velocity direction.
		axis, _ := gamemath.SafeNormalize(velocity)
		travel := spec.Travel
		if travel <= 0 {
			travel = p.Bound
		}
		duration := spec.Duration
		if duration <= 0 {
			duration = cfg.Platform.TweenDuration
		}
		p.SetMotion(platform.NewTweenMotion(axis, travel, duration, ease.InOutSine))
	}

	h := arena.Platforms.Add(p)
	surface := arena.Contacts.Add(contact.SurfaceFor(p, h))

	entry := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(entry, components.PlatformData{
		Name:    spec.Name,
		Handle:  h,
		Surface: surface,
	})
	return entry
}
