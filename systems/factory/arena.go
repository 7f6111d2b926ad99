package factory

import (
	"fmt"
	"math"

	"github.com/automoto/rollsphere/archetypes"
	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/contact"
	"github.com/automoto/rollsphere/gravity"
	"github.com/automoto/rollsphere/platform"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// arenaMargin pads the contact space so platforms bouncing past the map edge
// stay inside the grid.
const arenaMargin = 16.0

// CreateArena spawns the arena singleton with its contact space, gravity
// field and platforms. Actors respawn below the higher of the arena's and the
// simulation's kill height.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena, logger *zap.Logger) (*donburi.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	space, err := contact.NewSpace(contact.Bounds{
		MinX: -arenaMargin,
		MinZ: -arenaMargin,
		MaxX: arena.Width + arenaMargin,
		MaxZ: arena.Depth + arenaMargin,
	}, 2)
	if err != nil {
		return nil, fmt.Errorf("arena %s: %w", arena.Name, err)
	}
	for _, s := range arena.Surfaces {
		space.Add(contact.Surface{
			MinX:   s.MinX,
			MinZ:   s.MinZ,
			MaxX:   s.MaxX,
			MaxZ:   s.MaxZ,
			Top:    s.Top,
			Normal: s.Normal,
		})
	}

	zones := make([]gravity.Zone, 0, len(arena.GravityZones))
	for _, z := range arena.GravityZones {
		zone := gravity.Zone{Min: z.Min, Max: z.Max, Gravity: z.Gravity}
		if z.Pull != 0 {
			zone.Field = gravity.Radial{Center: z.Min.Add(z.Max).Mul(0.5), Strength: z.Pull}
		}
		zones = append(zones, zone)
	}

	var ground contact.Source = space
	if arena.Floor != nil {
		ground = contact.Chain{space, contact.GroundPlane{
			Height:    *arena.Floor,
			Tolerance: cfg.Physics.GroundTolerance,
		}}
	}

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{
		Arena:     arena,
		Platforms: platform.NewRegistry(),
		Contacts:  space,
		Ground:    ground,
		Gravity: gravity.Zones{
			Zones:    zones,
			Fallback: gravity.Uniform{G: arena.Gravity},
		},
		KillY:  math.Max(arena.KillY, cfg.Sim.KillY),
		Logger: logger,
	})
	components.Clock.SetValue(entry, components.ClockData{DeltaTime: cfg.Sim.DeltaTime})

	data := components.Arena.Get(entry)
	for _, spec := range arena.Platforms {
		CreatePlatform(ecs, data, spec)
	}

	data.Platforms.Each(func(h platform.Handle, p *platform.Platform) {
		v := p.Velocity()
		logger.Debug("platform ready",
			zap.Stringer("platform", h),
			zap.Float64s("position", p.Position[:]),
			zap.Float64s("velocity", v[:]))
	})
	logger.Info("arena loaded",
		zap.String("arena", arena.Name),
		zap.Int("surfaces", space.Len()),
		zap.Int("platforms", data.Platforms.Len()),
		zap.Int("spawns", len(arena.Spawns)),
		zap.Int("gravityZones", len(arena.GravityZones)))

	return entry, nil
}
