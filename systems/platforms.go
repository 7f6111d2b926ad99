package systems

import (
	"github.com/automoto/rollsphere/components"
	"github.com/automoto/rollsphere/contact"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlatforms moves every platform and refreshes its contact surface.
// Must run BEFORE UpdateActors so actors read this tick's platform velocity.
func UpdatePlatforms(ecs *ecs.ECS) {
	arena := getArena(ecs)
	clock := getClock(ecs)
	if arena == nil || clock == nil {
		return
	}

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Platform.Get(e)
		p, ok := arena.Platforms.Get(data.Handle)
		if !ok {
			return
		}
		p.Update(clock.DeltaTime)
		arena.Contacts.Move(data.Surface, contact.SurfaceFor(p, data.Handle))
	})
}

// RemovePlatform takes a platform out of the world. Actors still linked to
// it detach on their next update.
func RemovePlatform(ecs *ecs.ECS, e *donburi.Entry) {
	arena := getArena(ecs)
	if arena == nil || !e.Valid() || !e.HasComponent(components.Platform) {
		return
	}
	data := components.Platform.Get(e)
	arena.Platforms.Remove(data.Handle)
	arena.Contacts.Remove(data.Surface)
	arena.Logger.Debug("platform removed", zap.String("name", data.Name), zap.Stringer("platform", data.Handle))
	ecs.World.Remove(e.Entity())
}
