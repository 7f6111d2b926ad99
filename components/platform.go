package components

import (
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/platform"
	"github.com/yohamta/donburi"
)

// PlatformData links an entity to its platform in the arena registry and to
// the surface that platform occupies in the contact space.
type PlatformData struct {
	Name    string
	Handle  platform.Handle
	Surface contact.SurfaceID
}

var Platform = donburi.NewComponentType[PlatformData]()
