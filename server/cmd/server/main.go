package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/server/core"
	"github.com/automoto/ricochet/shared/protocol"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Simulation tick rate (updates per second)")
	arena := flag.String("arena", cfg.Server.Arena, "Bundled arena name or path to a .tmx file")
	aiBudget := flag.Int("ai-budget", cfg.AI.MaxUpdatesPerFrame, "Agents re-evaluated per tick (0 = all)")
	saveTuning := flag.Bool("save-tuning", false, "Persist the effective tuning for the next run")
	headless := flag.Bool("headless", false, "Run the simulation without network replication")
	name := flag.String("name", "Ricochet Server", "Server display name")
	directory := flag.String("directory", "", "Directory service URL to register with (empty = none)")
	address := flag.String("address", "", "Public address advertised to the directory")
	flag.Parse()

	store, err := cfg.OpenStore()
	if err != nil {
		log.Printf("[persistence] tuning store unavailable: %v", err)
	} else {
		saved, err := cfg.LoadTuning(store)
		if err != nil {
			log.Printf("[persistence] %v", err)
		}
		cfg.ApplyTuning(saved)
	}

	// Explicit flags win over persisted tuning
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tickrate":
			cfg.ApplyTuning(withTickRate(*tickRate))
		case "ai-budget":
			cfg.AI.MaxUpdatesPerFrame = max(0, *aiBudget)
		}
	})
	cfg.Server.Port = *port
	cfg.Server.Arena = *arena

	if *saveTuning && store != nil {
		if err := cfg.SaveTuning(store, cfg.CurrentTuning()); err != nil {
			log.Printf("[persistence] %v", err)
		}
	}

	if !*headless {
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register components: %v", err)
		}
	}

	data, arenaName, err := core.LoadArena(cfg.Server.Arena)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	server := core.NewServer(data, core.Options{
		ArenaName: arenaName,
		Networked: !*headless,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *directory != "" {
		go core.NewRegistration(*directory, *name, *address, server).Run(ctx)
	}

	log.Printf("Starting %q on port %d (arena: %s, tick rate: %d/s, ai budget: %d)",
		*name, cfg.Server.Port, arenaName, cfg.Server.TickRate, cfg.AI.MaxUpdatesPerFrame)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Server.Port)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
		// Headless Start returns immediately; run until signalled
		<-ctx.Done()
	}

	log.Println("Shutting down server...")
	server.Stop()
}

// withTickRate returns the live tuning with the tick rate replaced, so
// ApplyTuning validates it like a persisted value.
func withTickRate(rate int) *cfg.SavedTuning {
	t := cfg.CurrentTuning()
	t.TickRate = rate
	return t
}
