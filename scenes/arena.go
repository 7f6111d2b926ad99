package scenes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/automoto/rollsphere/components"
	"github.com/automoto/rollsphere/gravity"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/automoto/rollsphere/systems"
	"github.com/automoto/rollsphere/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ActorState is a read-only snapshot of one actor.
type ActorState struct {
	Index     int
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Grounded  bool
	JumpCount int
	Respawns  int
}

// PlatformState is a read-only snapshot of one moving platform.
type PlatformState struct {
	Name     string
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Velocity mgl64.Vec3
}

// Snapshot is the state of the arena after a tick.
type Snapshot struct {
	Tick      uint64
	Actors    []ActorState
	Platforms []PlatformState
}

// ArenaScene runs the simulation for one arena. It is headless: drawing is
// left to the host.
type ArenaScene struct {
	ecs    *ecs.ECS
	arena  *leveldata.Arena
	tuning cfg.Tuning
	logger *zap.Logger
	mu     sync.Mutex
}

// NewArenaScene builds the world for arena with one actor per spawn point.
// Sources are assigned to actors in spawn order; missing sources mean idle
// actors.
func NewArenaScene(arena *leveldata.Arena, tuning cfg.Tuning, logger *zap.Logger, sources ...components.InputSource) (*ArenaScene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	as := &ArenaScene{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		arena:  arena,
		tuning: tuning,
		logger: logger,
	}

	as.ecs.AddSystem(systems.UpdateClock)
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdatePlatforms)
	as.ecs.AddSystem(systems.UpdateActors)

	entry, err := factory.CreateArena(as.ecs, arena, logger)
	if err != nil {
		return nil, err
	}
	data := components.Arena.Get(entry)

	spawns := arena.Spawns
	if len(spawns) == 0 {
		spawns = []leveldata.Spawn{{}}
	}
	for i, spawn := range spawns {
		var src components.InputSource
		if i < len(sources) {
			src = sources[i]
		}
		if _, err := factory.CreateActor(as.ecs, data, i, spawn.Position, tuning, src); err != nil {
			return nil, fmt.Errorf("spawn actor %d: %w", i, err)
		}
	}
	return as, nil
}

// Update advances the simulation by one fixed tick.
func (as *ArenaScene) Update() {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.ecs.Update()
}

// ECS exposes the world for the viewer and tests.
func (as *ArenaScene) ECS() *ecs.ECS {
	return as.ecs
}

func (as *ArenaScene) Arena() *leveldata.Arena {
	return as.arena
}

// SetGravity swaps the gravity field acting on the whole arena.
func (as *ArenaScene) SetGravity(p gravity.Provider) {
	as.mu.Lock()
	defer as.mu.Unlock()
	systems.ApplyGravity(as.ecs, p)
	as.logger.Info("gravity replaced")
}

// SetTuning applies t to every actor.
func (as *ArenaScene) SetTuning(t cfg.Tuning) error {
	as.mu.Lock()
	defer as.mu.Unlock()
	if err := systems.ApplyTuning(as.ecs, t); err != nil {
		return err
	}
	as.tuning = t
	as.logger.Info("tuning applied", zap.Any("tuning", t))
	return nil
}

// Snapshot captures every actor in index order plus the live platforms.
func (as *ArenaScene) Snapshot() Snapshot {
	as.mu.Lock()
	defer as.mu.Unlock()

	var snap Snapshot
	if entry, ok := components.Clock.First(as.ecs.World); ok {
		snap.Tick = components.Clock.Get(entry).Tick
	}
	components.Actor.Each(as.ecs.World, func(e *donburi.Entry) {
		a := components.Actor.Get(e)
		c := a.Controller
		snap.Actors = append(snap.Actors, ActorState{
			Index:     a.Index,
			Position:  c.Position(),
			Velocity:  c.Velocity(),
			Grounded:  c.Grounded(),
			JumpCount: c.JumpCount(),
			Respawns:  a.Respawns,
		})
	})
	sort.Slice(snap.Actors, func(i, j int) bool {
		return snap.Actors[i].Index < snap.Actors[j].Index
	})

	if entry, ok := components.Arena.First(as.ecs.World); ok {
		registry := components.Arena.Get(entry).Platforms
		components.Platform.Each(as.ecs.World, func(e *donburi.Entry) {
			pd := components.Platform.Get(e)
			p, ok := registry.Get(pd.Handle)
			if !ok {
				return
			}
			snap.Platforms = append(snap.Platforms, PlatformState{
				Name:     pd.Name,
				Position: p.Position,
				Size:     p.Size,
				Velocity: p.Velocity(),
			})
		})
	}
	return snap
}
