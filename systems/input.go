package systems

import (
	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls every actor's input source.
// Must run BEFORE UpdateActors in the system order.
func UpdateInput(ecs *ecs.ECS) {
	var tick uint64
	if clock := getClock(ecs); clock != nil {
		tick = clock.Tick
	}

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		if input.Source != nil {
			input.Current = input.Source.Actions(tick)
		}
	})
}

// controllerInput converts held actions into controller input. Jump only
// fires on the tick the action goes down.
func controllerInput(input *components.InputData) controller.Input {
	return controller.Input{
		MoveForward:  input.Pressed(cfg.ActionMoveForward),
		MoveBackward: input.Pressed(cfg.ActionMoveBackward),
		MoveLeft:     input.Pressed(cfg.ActionMoveLeft),
		MoveRight:    input.Pressed(cfg.ActionMoveRight),
		Jump:         input.JustPressed(cfg.ActionJump),
	}
}
