package systems

import (
	"github.com/automoto/rollsphere/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the fixed tick counter. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	clock := getClock(ecs)
	if clock == nil {
		return
	}
	clock.Tick++
	clock.Elapsed += clock.DeltaTime
}

func getClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

func getArena(ecs *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry)
}
