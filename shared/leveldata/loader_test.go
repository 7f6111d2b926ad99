package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="8">
 <objectgroup id="1" name="Settings">
  <object id="1" name="settings" x="0" y="0">
   <properties>
    <property name="unitsPerPixel" type="float" value="0.125"/>
    <property name="killY" type="float" value="-20"/>
    <property name="gravityY" type="float" value="-9.5"/>
    <property name="floorY" type="float" value="-2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Surfaces">
  <object id="2" name="floor" x="0" y="0" width="320" height="160"/>
  <object id="3" name="ramp" x="16" y="16" width="16" height="32">
   <properties>
    <property name="top" type="float" value="1.5"/>
    <property name="nx" type="float" value="0.5"/>
    <property name="ny" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="4" name="lift" x="80" y="40" width="32" height="16">
   <properties>
    <property name="top" type="float" value="2"/>
    <property name="vx" type="float" value="2"/>
    <property name="bound" type="float" value="3"/>
   </properties>
  </object>
  <object id="5" name="glider" x="160" y="80" width="16" height="16">
   <properties>
    <property name="motion" value="tween"/>
    <property name="vz" type="float" value="1"/>
    <property name="travel" type="float" value="4"/>
    <property name="duration" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Spawns">
  <object id="6" name="second" x="64" y="32">
   <properties>
    <property name="index" type="int" value="1"/>
    <property name="y" type="float" value="3"/>
   </properties>
   <point/>
  </object>
  <object id="7" name="first" x="8" y="8">
   <properties>
    <property name="index" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="GravityZones">
  <object id="8" name="low" x="0" y="0" width="80" height="80">
   <properties>
    <property name="minY" type="float" value="0"/>
    <property name="maxY" type="float" value="10"/>
    <property name="gy" type="float" value="-3"/>
   </properties>
  </object>
  <object id="9" name="well" x="80" y="0" width="16" height="16">
   <properties>
    <property name="maxY" type="float" value="4"/>
    <property name="pull" type="float" value="12"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const badMotionTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" name="odd" x="0" y="0" width="16" height="16">
   <properties>
    <property name="motion" value="spin"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/yard.tmx": {Data: []byte(arenaTMX)}}

	arena, err := LoadArena(fsys, "arenas/yard.tmx")
	require.NoError(t, err)

	assert.Equal(t, "yard", arena.Name)
	assert.Equal(t, 0.125, arena.UnitsPerPixel)
	assert.Equal(t, 40.0, arena.Width)
	assert.Equal(t, 20.0, arena.Depth)
	assert.Equal(t, -20.0, arena.KillY)
	assert.Equal(t, mgl64.Vec3{0, -9.5, 0}, arena.Gravity)
	require.NotNil(t, arena.Floor)
	assert.Equal(t, -2.0, *arena.Floor)

	require.Len(t, arena.Surfaces, 2)
	floor := arena.Surfaces[0]
	assert.Equal(t, Surface{Name: "floor", MaxX: 40, MaxZ: 20}, floor)
	ramp := arena.Surfaces[1]
	assert.Equal(t, 1.5, ramp.Top)
	assert.Equal(t, mgl64.Vec3{0.5, 1, 0}, ramp.Normal)
	assert.Equal(t, 2.0, ramp.MinX)
	assert.Equal(t, 6.0, ramp.MaxZ)

	require.Len(t, arena.Platforms, 2)
	lift := arena.Platforms[0]
	assert.Equal(t, MotionBounce, lift.Motion)
	assert.Equal(t, mgl64.Vec3{12, 1.75, 6}, lift.Center)
	assert.Equal(t, mgl64.Vec3{4, 0.5, 2}, lift.Size)
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, lift.Velocity)
	assert.Equal(t, 3.0, lift.Bound)
	glider := arena.Platforms[1]
	assert.Equal(t, MotionTween, glider.Motion)
	assert.Equal(t, 4.0, glider.Travel)
	assert.Equal(t, 1.5, glider.Duration)

	require.Len(t, arena.Spawns, 2)
	assert.Equal(t, Spawn{Position: mgl64.Vec3{1, 0, 1}, Index: 0}, arena.Spawns[0])
	assert.Equal(t, Spawn{Position: mgl64.Vec3{8, 3, 4}, Index: 1}, arena.Spawns[1])

	require.Len(t, arena.GravityZones, 2)
	zone := arena.GravityZones[0]
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, zone.Min)
	assert.Equal(t, mgl64.Vec3{10, 10, 10}, zone.Max)
	assert.Equal(t, mgl64.Vec3{0, -3, 0}, zone.Gravity)
	assert.Zero(t, zone.Pull)
	well := arena.GravityZones[1]
	assert.Equal(t, mgl64.Vec3{10, 0, 0}, well.Min)
	assert.Equal(t, mgl64.Vec3{12, 4, 2}, well.Max)
	assert.Equal(t, 12.0, well.Pull)
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(badMotionTMX)}}

	_, err := LoadArena(fsys, "missing.tmx")
	assert.Error(t, err)

	_, err = LoadArena(fsys, "bad.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spin")
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx":    {Data: []byte(arenaTMX)},
		"arenas/a.tmx":    {Data: []byte(arenaTMX)},
		"arenas/notes.md": {Data: []byte("ignored")},
	}
	arenas, names, err := LoadAllArenas(fsys, "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "arenas")
	assert.Error(t, err)
}
