package core

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) tick() {
	g.server.Step()

	if !g.server.networked {
		return
	}
	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}
