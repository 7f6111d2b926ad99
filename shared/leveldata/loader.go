package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:          strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		UnitsPerPixel: DefaultUnitsPerPixel,
		KillY:         DefaultKillY,
		Gravity:       mgl64.Vec3{0, DefaultGravityY, 0},
	}

	// Settings first: the scale applies to every other group.
	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupSettings {
			continue
		}
		for _, o := range og.Objects {
			if err := arena.applySettings(o.Properties); err != nil {
				return nil, fmt.Errorf("%s: settings: %w", tmxPath, err)
			}
		}
	}

	upp := arena.UnitsPerPixel
	arena.Width = float64(levelMap.Width*levelMap.TileWidth) * upp
	arena.Depth = float64(levelMap.Height*levelMap.TileHeight) * upp

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			var err error
			switch og.Name {
			case GroupSurfaces:
				err = arena.addSurface(o)
			case GroupPlatforms:
				err = arena.addPlatform(o)
			case GroupSpawns:
				err = arena.addSpawn(o)
			case GroupGravityZones:
				err = arena.addGravityZone(o)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %s object %q: %w", tmxPath, og.Name, o.Name, err)
			}
		}
	}

	sort.SliceStable(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

func (a *Arena) applySettings(props tiled.Properties) error {
	var err error
	if a.UnitsPerPixel, err = floatProp(props, "unitsPerPixel", a.UnitsPerPixel); err != nil {
		return err
	}
	if a.UnitsPerPixel <= 0 {
		return fmt.Errorf("unitsPerPixel %v must be positive", a.UnitsPerPixel)
	}
	if a.KillY, err = floatProp(props, "killY", a.KillY); err != nil {
		return err
	}
	gy, err := floatProp(props, "gravityY", a.Gravity.Y())
	if err != nil {
		return err
	}
	a.Gravity = mgl64.Vec3{0, gy, 0}

	if props.GetString("floorY") != "" {
		floor, err := floatProp(props, "floorY", 0)
		if err != nil {
			return err
		}
		a.Floor = &floor
	}
	return nil
}

func (a *Arena) footprint(o *tiled.Object) (minX, minZ, maxX, maxZ float64) {
	upp := a.UnitsPerPixel
	return o.X * upp, o.Y * upp, (o.X + o.Width) * upp, (o.Y + o.Height) * upp
}

func (a *Arena) addSurface(o *tiled.Object) error {
	p := props{list: o.Properties}
	s := Surface{Name: o.Name}
	s.MinX, s.MinZ, s.MaxX, s.MaxZ = a.footprint(o)
	s.Top = p.float("top", 0)
	s.Normal = mgl64.Vec3{p.float("nx", 0), p.float("ny", 0), p.float("nz", 0)}
	if p.err != nil {
		return p.err
	}
	if s.MaxX <= s.MinX || s.MaxZ <= s.MinZ {
		return fmt.Errorf("surface has no area")
	}
	a.Surfaces = append(a.Surfaces, s)
	return nil
}

func (a *Arena) addPlatform(o *tiled.Object) error {
	p := props{list: o.Properties}
	minX, minZ, maxX, maxZ := a.footprint(o)
	top := p.float("top", 0)
	thickness := p.float("thickness", DefaultPlatformThickness)

	spec := PlatformSpec{
		Name:     o.Name,
		Center:   mgl64.Vec3{(minX + maxX) / 2, top - thickness/2, (minZ + maxZ) / 2},
		Size:     mgl64.Vec3{maxX - minX, thickness, maxZ - minZ},
		Velocity: mgl64.Vec3{p.float("vx", 0), p.float("vy", 0), p.float("vz", 0)},
		Bound:    p.float("bound", 0),
		Motion:   o.Properties.GetString("motion"),
		Travel:   p.float("travel", 0),
		Duration: p.float("duration", 0),
	}
	if p.err != nil {
		return p.err
	}
	switch spec.Motion {
	case "":
		spec.Motion = MotionBounce
	case MotionBounce, MotionTween:
	default:
		return fmt.Errorf("unknown motion %q", spec.Motion)
	}
	if spec.Size.X() <= 0 || spec.Size.Z() <= 0 || thickness <= 0 {
		return fmt.Errorf("platform has no volume")
	}
	a.Platforms = append(a.Platforms, spec)
	return nil
}

func (a *Arena) addSpawn(o *tiled.Object) error {
	p := props{list: o.Properties}
	upp := a.UnitsPerPixel
	y := p.float("y", 0)
	if p.err != nil {
		return p.err
	}
	a.Spawns = append(a.Spawns, Spawn{
		Position: mgl64.Vec3{o.X * upp, y, o.Y * upp},
		Index:    o.Properties.GetInt("index"),
	})
	return nil
}

func (a *Arena) addGravityZone(o *tiled.Object) error {
	p := props{list: o.Properties}
	minX, minZ, maxX, maxZ := a.footprint(o)
	z := GravityZone{
		Name:    o.Name,
		Min:     mgl64.Vec3{minX, p.float("minY", 0), minZ},
		Max:     mgl64.Vec3{maxX, p.float("maxY", 0), maxZ},
		Gravity: mgl64.Vec3{p.float("gx", 0), p.float("gy", 0), p.float("gz", 0)},
		Pull:    p.float("pull", 0),
	}
	if p.err != nil {
		return p.err
	}
	if z.Max.Y() <= z.Min.Y() {
		return fmt.Errorf("maxY %v must exceed minY %v", z.Max.Y(), z.Min.Y())
	}
	a.GravityZones = append(a.GravityZones, z)
	return nil
}

// props reads float properties, keeping the first parse error.
type props struct {
	list tiled.Properties
	err  error
}

func (p *props) float(name string, def float64) float64 {
	v, err := floatProp(p.list, name, def)
	if err != nil && p.err == nil {
		p.err = err
	}
	return v
}

func floatProp(list tiled.Properties, name string, def float64) (float64, error) {
	raw := list.GetString(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}
