package components

import (
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/gravity"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ArenaData is the singleton holding the world-owned collaborators every
// actor shares.
type ArenaData struct {
	Arena     *leveldata.Arena
	Platforms *platform.Registry
	Contacts  *contact.Space
	Ground    contact.Source // What actors probe: Contacts, optionally backed by a floor
	Gravity   gravity.Provider
	KillY     float64
	Logger    *zap.Logger
}

var Arena = donburi.NewComponentType[ArenaData]()

// ClockData counts fixed simulation ticks.
type ClockData struct {
	Tick      uint64
	DeltaTime float64
	Elapsed   float64
}

var Clock = donburi.NewComponentType[ClockData]()
