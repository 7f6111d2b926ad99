package scenes

import (
	"testing"

	"github.com/automoto/rollsphere/components"
	"github.com/automoto/rollsphere/gravity"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/automoto/rollsphere/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type scripted func(tick uint64) [cfg.ActionCount]bool

func (s scripted) Actions(tick uint64) [cfg.ActionCount]bool { return s(tick) }

func testArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name:    "test",
		Width:   20,
		Depth:   20,
		KillY:   -5,
		Gravity: mgl64.Vec3{0, -15, 0},
		Surfaces: []leveldata.Surface{
			{Name: "floor", MaxX: 20, MaxZ: 20},
		},
		Spawns: []leveldata.Spawn{
			{Position: mgl64.Vec3{5, 0, 5}, Index: 0},
		},
	}
}

func TestArenaSceneActorRestsOnFloor(t *testing.T) {
	scene, err := NewArenaScene(testArena(), cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		scene.Update()
	}
	snap := scene.Snapshot()
	assert.Equal(t, uint64(30), snap.Tick)
	require.Len(t, snap.Actors, 1)
	assert.True(t, snap.Actors[0].Grounded)
	assert.Equal(t, mgl64.Vec3{5, 0.5, 5}, snap.Actors[0].Position)
}

func TestArenaSceneJumpFiresOncePerPress(t *testing.T) {
	held := scripted(func(tick uint64) [cfg.ActionCount]bool {
		var a [cfg.ActionCount]bool
		a[cfg.ActionJump] = tick >= 3 && tick <= 6
		return a
	})
	scene, err := NewArenaScene(testArena(), cfg.DefaultTuning(), nil, held)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		scene.Update()
	}
	actor := scene.Snapshot().Actors[0]
	assert.Equal(t, 1, actor.JumpCount)
	assert.False(t, actor.Grounded)
	assert.Greater(t, actor.Position.Y(), 0.5)
}

func TestArenaSceneRespawnsFallenActor(t *testing.T) {
	arena := testArena()
	arena.Spawns = []leveldata.Spawn{{Position: mgl64.Vec3{30, 0, 30}}}
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		scene.Update()
	}
	actor := scene.Snapshot().Actors[0]
	assert.GreaterOrEqual(t, actor.Respawns, 1)
	assert.Greater(t, actor.Position.Y(), arena.KillY)
}

func TestArenaScenePlatformCarriesActor(t *testing.T) {
	arena := testArena()
	arena.Platforms = []leveldata.PlatformSpec{{
		Name:     "lift",
		Center:   mgl64.Vec3{10, 0.75, 10},
		Size:     mgl64.Vec3{4, 0.5, 4},
		Velocity: mgl64.Vec3{1, 0, 0},
		Bound:    3,
		Motion:   leveldata.MotionBounce,
	}}
	arena.Spawns = []leveldata.Spawn{{Position: mgl64.Vec3{10, 1, 10}}}
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	scene.Update()
	w := scene.ECS().World
	actorEntry, ok := components.Actor.First(w)
	require.True(t, ok)
	c := components.Actor.Get(actorEntry).Controller

	_, linked := c.Connected()
	require.True(t, linked)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, c.ConnectionVelocity())
	assert.Equal(t, 1.0, c.DesiredVelocity().X())

	snap := scene.Snapshot()
	require.Len(t, snap.Platforms, 1)
	assert.Equal(t, "lift", snap.Platforms[0].Name)
	assert.Equal(t, mgl64.Vec3{4, 0.5, 4}, snap.Platforms[0].Size)

	platformEntry, ok := components.Platform.First(w)
	require.True(t, ok)
	systems.RemovePlatform(scene.ECS(), platformEntry)

	scene.Update()
	_, linked = c.Connected()
	assert.False(t, linked)
	assert.False(t, c.Grounded())
	assert.Equal(t, 0, countPlatforms(w))
	assert.Empty(t, scene.Snapshot().Platforms)
}

func TestArenaSceneWithoutSpawnsUsesOrigin(t *testing.T) {
	arena := testArena()
	arena.Spawns = nil
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)
	snap := scene.Snapshot()
	require.Len(t, snap.Actors, 1)
	assert.Equal(t, mgl64.Vec3{0, 0.5, 0}, snap.Actors[0].Position)
}

func TestArenaSceneSetTuning(t *testing.T) {
	scene, err := NewArenaScene(testArena(), cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	bad := cfg.DefaultTuning()
	bad.TargetJumpHeight = 0
	assert.Error(t, scene.SetTuning(bad))

	good := cfg.DefaultTuning()
	good.MaxSpeed = 8
	require.NoError(t, scene.SetTuning(good))
	entry, _ := components.Actor.First(scene.ECS().World)
	assert.Equal(t, 8.0, components.Actor.Get(entry).Controller.Tuning().MaxSpeed)
}

func TestNewArenaSceneRejectsBadTuning(t *testing.T) {
	bad := cfg.DefaultTuning()
	bad.MaxJumpCount = -1
	_, err := NewArenaScene(testArena(), bad, nil)
	assert.Error(t, err)
}

func countPlatforms(w donburi.World) int {
	n := 0
	components.Platform.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestArenaSceneFloorCatchesActor(t *testing.T) {
	arena := testArena()
	arena.Surfaces = nil
	floor := -1.0
	arena.Floor = &floor
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		scene.Update()
	}
	snap := scene.Snapshot()
	require.Len(t, snap.Actors, 1)
	assert.True(t, snap.Actors[0].Grounded)
	assert.InDelta(t, -0.5, snap.Actors[0].Position.Y(), 1e-9)
	assert.Zero(t, snap.Actors[0].Respawns)
}

func TestArenaSceneRadialZone(t *testing.T) {
	arena := testArena()
	arena.Surfaces = nil
	arena.KillY = -100
	arena.GravityZones = []leveldata.GravityZone{{
		Min:  mgl64.Vec3{0, -50, 0},
		Max:  mgl64.Vec3{20, 50, 20},
		Pull: 10,
	}}
	arena.Spawns = []leveldata.Spawn{{Position: mgl64.Vec3{5, 0, 10}}}
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	scene.Update()
	v := scene.Snapshot().Actors[0].Velocity
	// pulled toward the zone centre at (10, 0, 10)
	assert.Greater(t, v.X(), 0.0)
	assert.Less(t, v.Y(), 0.0)
	assert.InDelta(t, 0, v.Z(), 1e-9)
}

func TestArenaSceneSetGravity(t *testing.T) {
	arena := testArena()
	arena.Surfaces = nil
	arena.KillY = -100
	scene, err := NewArenaScene(arena, cfg.DefaultTuning(), nil)
	require.NoError(t, err)

	scene.SetGravity(gravity.Uniform{G: mgl64.Vec3{0, -2, 0}})
	scene.Update()
	assert.InDelta(t, -2*cfg.Sim.DeltaTime, scene.Snapshot().Actors[0].Velocity.Y(), 1e-12)

	entry, ok := components.Arena.First(scene.ECS().World)
	require.True(t, ok)
	assert.Equal(t, gravity.Uniform{G: mgl64.Vec3{0, -2, 0}}, components.Arena.Get(entry).Gravity)
}
