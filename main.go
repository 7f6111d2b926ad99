package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/observability"
	"github.com/automoto/rollsphere/replay"
	"github.com/automoto/rollsphere/scenes"
	"github.com/automoto/rollsphere/server/core"
	"github.com/automoto/rollsphere/shared/leveldata"
	"github.com/automoto/rollsphere/systems"
	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	surfaceColor  = color.RGBA{70, 70, 80, 255}
	platformColor = color.RGBA{60, 110, 200, 255}
	groundedColor = color.RGBA{90, 200, 110, 255}
	airborneColor = color.RGBA{230, 170, 60, 255}
)

// keyboard maps held keys to actions and optionally records them.
type keyboard struct {
	recorder *replay.Recorder
}

func (k *keyboard) Actions(uint64) [config.ActionCount]bool {
	var a [config.ActionCount]bool
	a[config.ActionMoveForward] = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	a[config.ActionMoveBackward] = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	a[config.ActionMoveLeft] = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	a[config.ActionMoveRight] = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	a[config.ActionJump] = ebiten.IsKeyPressed(ebiten.KeySpace)
	if k.recorder != nil {
		k.recorder.Record(a)
	}
	return a
}

// Game draws the arena top-down, centered on the first actor.
type Game struct {
	scene *scenes.ArenaScene
	arena *leveldata.Arena
	ppu   float64
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.scene.Snapshot()
	w, h := config.Viewer.Width, config.Viewer.Height

	var camX, camZ float64
	if len(snap.Actors) > 0 {
		camX, camZ = snap.Actors[0].Position.X(), snap.Actors[0].Position.Z()
	}
	toScreen := func(x, z float64) (float32, float32) {
		return float32((x-camX)*g.ppu + float64(w)/2), float32((z-camZ)*g.ppu + float64(h)/2)
	}

	for _, s := range g.arena.Surfaces {
		x, y := toScreen(s.MinX, s.MinZ)
		vector.FillRect(screen, x, y, float32((s.MaxX-s.MinX)*g.ppu), float32((s.MaxZ-s.MinZ)*g.ppu), surfaceColor, false)
	}
	for _, p := range snap.Platforms {
		x, y := toScreen(p.Position.X()-p.Size.X()/2, p.Position.Z()-p.Size.Z()/2)
		vector.FillRect(screen, x, y, float32(p.Size.X()*g.ppu), float32(p.Size.Z()*g.ppu), platformColor, false)
	}
	for _, a := range snap.Actors {
		x, y := toScreen(a.Position.X(), a.Position.Z())
		clr := airborneColor
		if a.Grounded {
			clr = groundedColor
		}
		vector.FillCircle(screen, x, y, float32(config.Actor.Radius*g.ppu), clr, true)
	}

	if len(snap.Actors) > 0 {
		a := snap.Actors[0]
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"tick %d  y=%.2f  vy=%.2f  grounded=%t  jumps=%d  respawns=%d",
			snap.Tick, a.Position.Y(), a.Velocity.Y(), a.Grounded, a.JumpCount, a.Respawns))
	}
}

func (g *Game) Layout(int, int) (int, int) {
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	cfgFile := pflag.StringP("config", "c", "", "config file, reloaded on change")
	arenaRef := pflag.String("arena", "", "arena .tmx file or embedded arena name")
	recordFile := pflag.String("record", "", "write keyboard input to this replay file on exit")
	pflag.Parse()

	v, err := config.NewViper(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	file, err := config.NewFromViper(v)
	if err != nil {
		log.Fatal(err)
	}
	file.Apply()

	logger, err := observability.Install(file.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := systems.InitPersistence("rollsphere"); err != nil {
		logger.Warn("persistence unavailable", zap.Error(err))
	}
	tuning := config.Actor.Tuning
	if saved, err := systems.LoadTuning(); err != nil {
		logger.Warn("ignoring saved tuning", zap.Error(err))
	} else if saved != nil {
		tuning = *saved
	}

	arena, err := core.OpenArena(*arenaRef)
	if err != nil {
		logger.Fatal("load arena", zap.Error(err))
	}

	input := &keyboard{}
	if *recordFile != "" {
		input.recorder = replay.NewRecorder(arena.Name)
	}

	scene, err := scenes.NewArenaScene(arena, tuning, logger, input)
	if err != nil {
		logger.Fatal("build scene", zap.Error(err))
	}

	if *cfgFile != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			f, err := config.NewFromViper(v)
			if err != nil {
				logger.Warn("config reload rejected", zap.String("file", e.Name), zap.Error(err))
				return
			}
			if err := scene.SetTuning(f.Actor.Tuning); err != nil {
				logger.Warn("tuning reload rejected", zap.Error(err))
			}
		})
		v.WatchConfig()
	}

	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("rollsphere: " + arena.Name)
	ebiten.SetTPS(config.Sim.TickRate)

	game := &Game{scene: scene, arena: arena, ppu: config.Viewer.PixelsPerUnit}
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("viewer exited", zap.Error(err))
	}

	if input.recorder != nil {
		if err := input.recorder.Recording().SaveFile(*recordFile); err != nil {
			logger.Error("write recording", zap.Error(err))
		}
	}
}
