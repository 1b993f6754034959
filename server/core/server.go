package core

import (
	"log"
	"sync"

	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/leveldata"
	"github.com/automoto/ricochet/shared/netcomponents"
	"github.com/automoto/ricochet/systems"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a Server.
type Options struct {
	ArenaName string

	// Networked enables necs replication. Headless runs leave it off.
	Networked bool
}

// Server owns the simulation world and streams it to connected clients
type Server struct {
	world     donburi.World
	ecs       *ecs.ECS
	ai        *systems.AIManager
	loop      *GameLoop
	transport *transports.WsServerTransport

	id        string
	arenaName string
	networked bool

	// Guards world access between the loop and Step callers
	tickMu sync.Mutex

	clients map[*router.NetworkClient]struct{}
	mu      sync.RWMutex
}

// NewServer builds the world from arena data and registers the tick systems.
func NewServer(arena *leveldata.ArenaData, opts Options) *Server {
	world := donburi.NewWorld()

	s := &Server{
		id:        uuid.NewString(),
		world:     world,
		ecs:       ecs.NewECS(world),
		ai:        systems.NewAIManager(),
		arenaName: opts.ArenaName,
		networked: opts.Networked,
		clients:   make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(s, cfg.Server.TickRate)

	if s.networked {
		// Set up the world for esync
		srvsync.UseEsync(world)
		s.setupRouterCallbacks()
	}

	factory.CreateArena(s.ecs, arena)
	n := s.ai.RegisterAll(world)
	s.createSimState()

	s.ecs.
		AddSystem(systems.AdvanceFrame).
		AddSystem(systems.UpdateTurrets).
		AddSystem(s.ai.Update).
		AddSystem(systems.UpdateAgents).
		AddSystem(systems.UpdateProjectiles).
		AddSystem(s.publishSnapshot)

	log.Printf("[server] instance %s: arena %q ready, %d agents under AI", s.id, s.arenaName, n)
	return s
}

// Start runs the game loop and serves clients on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	if !s.networked {
		return nil
	}
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop ends the game loop
func (s *Server) Stop() {
	s.loop.Stop()
}

// Step advances the simulation by one fixed tick.
func (s *Server) Step() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	s.ecs.Update()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// Spectators receive snapshots only; nothing is spawned for them.
func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	log.Printf("[server] client connected: %s", client.Id())
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// AI returns the agent scheduler.
func (s *Server) AI() *systems.AIManager {
	return s.ai
}

// ID identifies this server instance for the lifetime of the process.
func (s *Server) ID() string {
	return s.id
}

// ArenaName is the arena the world was built from.
func (s *Server) ArenaName() string {
	return s.arenaName
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Status is a point-in-time summary of the running simulation.
type Status struct {
	Frame       uint64 `json:"frame"`
	Agents      int    `json:"agents"`
	Projectiles int    `json:"projectiles"`
	Kills       int    `json:"kills"`
	Clients     int    `json:"clients"`
}

// Status reads the last published snapshot.
func (s *Server) Status() Status {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	st := Status{
		Agents:  s.ai.Len(),
		Clients: s.ClientCount(),
	}
	if e, ok := netcomponents.NetSimState.First(s.world); ok {
		snap := netcomponents.NetSimState.Get(e)
		st.Frame = snap.Frame
		st.Projectiles = snap.Projectiles
		st.Kills = snap.Kills
	}
	return st
}
