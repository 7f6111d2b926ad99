package components

import (
	cfg "github.com/automoto/rollsphere/config"
	"github.com/yohamta/donburi"
)

// InputSource yields the held state of every action for a tick.
type InputSource interface {
	Actions(tick uint64) [cfg.ActionCount]bool
}

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Source   InputSource // nil means no input
}

// Pressed reports whether the action is held this tick.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this tick.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
