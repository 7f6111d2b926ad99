package factory

import (
	"github.com/automoto/rollsphere/archetypes"
	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateActor spawns a sphere resting on spawn, wired to the arena's
// contacts, platforms and gravity.
func CreateActor(ecs *ecs.ECS, arena *components.ArenaData, index int, spawn mgl64.Vec3, tuning cfg.Tuning, source components.InputSource) (*donburi.Entry, error) {
	logger := arena.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := controller.New(cfg.Actor.Radius,
		controller.WithTuning(tuning),
		controller.WithGravity(arena.Gravity),
		controller.WithContacts(arena.Ground),
		controller.WithPlatforms(arena.Platforms),
		controller.WithLogger(logger.With(zap.Int("actor", index))),
	)
	if err != nil {
		return nil, err
	}
	start := spawn.Add(mgl64.Vec3{0, c.Radius(), 0})
	c.SetPosition(start)

	actor := archetypes.Actor.Spawn(ecs)
	components.Actor.SetValue(actor, components.ActorData{
		Index:      index,
		Controller: c,
		Spawn:      start,
	})
	components.Input.SetValue(actor, components.InputData{Source: source})
	return actor, nil
}
