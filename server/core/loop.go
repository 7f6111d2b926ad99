package core

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// GameLoop drives a Server at a fixed tick rate.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run ticks until Stop is called. It blocks.
func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.server.logger.Info("game loop started", zap.Int("tickRate", g.tickRate))

	for {
		select {
		case <-g.stopChan:
			g.server.logger.Info("game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop asks Run to return. Safe to call more than once and from a tick
// callback.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Wait blocks until Run has returned.
func (g *GameLoop) Wait() {
	<-g.done
}

func (g *GameLoop) tick() {
	g.server.Step()
}
