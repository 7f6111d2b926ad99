package core

import (
	"fmt"
	"sync"

	"github.com/automoto/rollsphere/components"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/automoto/rollsphere/scenes"
	"github.com/automoto/rollsphere/shared/leveldata"
	"go.uber.org/zap"
)

// LatchedInput holds the last action state submitted for one actor. The
// simulation reads it every tick until a new state arrives.
type LatchedInput struct {
	mu      sync.Mutex
	actions [cfg.ActionCount]bool
}

func (l *LatchedInput) Set(actions [cfg.ActionCount]bool) {
	l.mu.Lock()
	l.actions = actions
	l.mu.Unlock()
}

// Actions implements components.InputSource.
func (l *LatchedInput) Actions(uint64) [cfg.ActionCount]bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.actions
}

// Server runs an arena headlessly and accepts input from other goroutines.
type Server struct {
	scene  *scenes.ArenaScene
	loop   *GameLoop
	inputs []*LatchedInput
	logger *zap.Logger

	mu      sync.RWMutex
	onTick  []func(scenes.Snapshot)
	started bool
}

// NewServer builds an arena scene where every actor is driven by submitted
// input. Extra sources, when given, replace the latched input of the actor
// at the same index.
func NewServer(arena *leveldata.Arena, tuning cfg.Tuning, tickRate int, logger *zap.Logger, sources ...components.InputSource) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := len(arena.Spawns)
	if n == 0 {
		n = 1
	}

	s := &Server{logger: logger}
	all := make([]components.InputSource, n)
	for i := range all {
		l := &LatchedInput{}
		s.inputs = append(s.inputs, l)
		all[i] = l
		if i < len(sources) && sources[i] != nil {
			all[i] = sources[i]
		}
	}

	scene, err := scenes.NewArenaScene(arena, tuning, logger, all...)
	if err != nil {
		return nil, fmt.Errorf("build arena scene: %w", err)
	}
	s.scene = scene
	s.loop = NewGameLoop(s, tickRate)
	return s, nil
}

// Start runs the game loop in a new goroutine.
func (s *Server) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	go s.loop.Run()
}

// Stop halts the game loop and waits for it to exit.
func (s *Server) Stop() {
	s.loop.Stop()
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if started {
		s.loop.Wait()
	}
}

// Loop exposes the game loop.
func (s *Server) Loop() *GameLoop {
	return s.loop
}

// Scene exposes the arena scene.
func (s *Server) Scene() *scenes.ArenaScene {
	return s.scene
}

// SubmitInput latches the action state for an actor.
func (s *Server) SubmitInput(actor int, actions [cfg.ActionCount]bool) error {
	if actor < 0 || actor >= len(s.inputs) {
		return fmt.Errorf("actor %d out of range [0,%d)", actor, len(s.inputs))
	}
	s.inputs[actor].Set(actions)
	return nil
}

// OnTick registers fn to receive a snapshot after every tick. Callbacks run
// on the loop goroutine.
func (s *Server) OnTick(fn func(scenes.Snapshot)) {
	s.mu.Lock()
	s.onTick = append(s.onTick, fn)
	s.mu.Unlock()
}

// Step advances the arena by one tick and notifies tick callbacks.
func (s *Server) Step() {
	s.scene.Update()

	s.mu.RLock()
	callbacks := s.onTick
	s.mu.RUnlock()
	if len(callbacks) == 0 {
		return
	}
	snap := s.scene.Snapshot()
	for _, fn := range callbacks {
		fn(snap)
	}
}

// Snapshot returns the current arena state.
func (s *Server) Snapshot() scenes.Snapshot {
	return s.scene.Snapshot()
}

// ActorCount returns the number of actors in the arena.
func (s *Server) ActorCount() int {
	return len(s.inputs)
}
