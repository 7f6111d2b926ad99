package components

import (
	"github.com/automoto/rollsphere/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActorData wraps one sphere controller and where it returns after falling
// out of the arena.
type ActorData struct {
	Index      int
	Controller *controller.Controller
	Spawn      mgl64.Vec3
	Respawns   int
}

var Actor = donburi.NewComponentType[ActorData]()
