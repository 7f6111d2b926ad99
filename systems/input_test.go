package systems

import (
	"testing"

	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fixedSource [cfg.ActionCount]bool

func (f *fixedSource) Actions(uint64) [cfg.ActionCount]bool { return *f }

func TestUpdateInputEdges(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	src := &fixedSource{}
	entry := e.World.Entry(e.World.Create(components.Input))
	components.Input.SetValue(entry, components.InputData{Source: src})

	src[cfg.ActionJump] = true
	src[cfg.ActionMoveLeft] = true
	UpdateInput(e)
	in := controllerInput(components.Input.Get(entry))
	assert.True(t, in.Jump)
	assert.True(t, in.MoveLeft)

	UpdateInput(e)
	in = controllerInput(components.Input.Get(entry))
	assert.False(t, in.Jump, "held jump must not repeat")
	assert.True(t, in.MoveLeft)

	src[cfg.ActionJump] = false
	UpdateInput(e)
	src[cfg.ActionJump] = true
	UpdateInput(e)
	assert.True(t, controllerInput(components.Input.Get(entry)).Jump)
}

func TestUpdateInputWithoutSource(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.Input))
	components.Input.Get(entry).Current[cfg.ActionMoveRight] = true

	UpdateInput(e)
	data := components.Input.Get(entry)
	assert.False(t, data.Pressed(cfg.ActionMoveRight))
	assert.True(t, data.Previous[cfg.ActionMoveRight])
}
