package systems

import (
	"github.com/automoto/rollsphere/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateActors steps every actor controller and respawns actors that fell
// below the arena's kill height.
func UpdateActors(ecs *ecs.ECS) {
	arena := getArena(ecs)
	clock := getClock(ecs)
	if arena == nil || clock == nil {
		return
	}

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		input := components.Input.Get(e)

		c := actor.Controller
		c.Update(clock.DeltaTime, controllerInput(input))

		if c.Position().Y() < arena.KillY {
			respawn(actor)
			arena.Logger.Info("actor fell out, respawned",
				zap.Int("actor", actor.Index),
				zap.Int("respawns", actor.Respawns),
				zap.Uint64("tick", clock.Tick))
		}
	})
}

func respawn(actor *components.ActorData) {
	actor.Controller.Reset()
	actor.Controller.SetPosition(actor.Spawn)
	actor.Respawns++
}
