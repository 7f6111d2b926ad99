package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/rollsphere/components"
	"github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/replay"
	"github.com/automoto/rollsphere/scenes"
	"github.com/automoto/rollsphere/server/core"
	"github.com/automoto/rollsphere/systems"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOptions struct {
	arena    string
	replay   string
	ticks    int
	realtime bool
	saved    bool
}

func newRunCmd(a *app) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate an arena for a number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.arena, "arena", "", "arena .tmx file or embedded arena name")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "input recording (yaml) for the first actor")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 600, "ticks to simulate")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "tick at sim.tick_rate instead of as fast as possible")
	cmd.Flags().BoolVar(&opts.saved, "saved-tuning", false, "use the saved tuning profile when one exists")
	return cmd
}

func (a *app) run(cmd *cobra.Command, opts *runOptions) error {
	if opts.ticks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", opts.ticks)
	}

	arena, err := core.OpenArena(opts.arena)
	if err != nil {
		return err
	}

	tuning := config.Actor.Tuning
	if opts.saved {
		if err := systems.InitPersistence(appName); err == nil {
			saved, err := systems.LoadTuning()
			if err != nil {
				return err
			}
			if saved != nil {
				tuning = *saved
			}
		}
	}

	var sources []components.InputSource
	if opts.replay != "" {
		rec, err := replay.LoadFile(opts.replay)
		if err != nil {
			return err
		}
		sources = append(sources, replay.NewPlayer(rec))
		a.logger.Info("replay loaded", zap.String("name", rec.Name), zap.Int("ticks", rec.Duration()))
	}

	server, err := core.NewServer(arena, tuning, config.Sim.TickRate, a.logger, sources...)
	if err != nil {
		return err
	}

	if opts.realtime {
		if err := runRealtime(cmd.Context(), server, uint64(opts.ticks)); err != nil {
			return err
		}
	} else {
		for i := 0; i < opts.ticks; i++ {
			server.Step()
		}
	}

	snap := server.Snapshot()
	printSnapshot(cmd, snap)
	return nil
}

func runRealtime(ctx context.Context, server *core.Server, ticks uint64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	server.OnTick(func(snap scenes.Snapshot) {
		if snap.Tick >= ticks {
			server.Loop().Stop()
		}
	})
	server.Start()

	done := make(chan struct{})
	go func() {
		server.Loop().Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	server.Stop()
	return nil
}

func printSnapshot(cmd *cobra.Command, snap scenes.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tick %d\n", snap.Tick)
	for _, actor := range snap.Actors {
		p, v := actor.Position, actor.Velocity
		fmt.Fprintf(out, "actor %d pos=(%.3f, %.3f, %.3f) vel=(%.3f, %.3f, %.3f) grounded=%t jumps=%d respawns=%d\n",
			actor.Index, p.X(), p.Y(), p.Z(), v.X(), v.Y(), v.Z(),
			actor.Grounded, actor.JumpCount, actor.Respawns)
	}
}
