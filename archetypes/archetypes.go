package archetypes

import (
	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Input,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
	)
	Arena = newArchetype(
		components.Arena,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
