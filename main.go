package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/network"
	"github.com/automoto/ricochet/shared/protocol"
)

// Spectator client: connects to a server and prints a summary of the
// replicated world at a fixed interval.
func main() {
	address := flag.String("server", fmt.Sprintf("localhost:%d", config.Server.Port), "Server address")
	interval := flag.Duration("interval", time.Second, "Summary print interval")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spectator := network.NewSpectator(*address)
	go report(ctx, spectator, *interval)

	if err := spectator.Run(ctx); err != nil {
		log.Fatalf("Spectator error: %v", err)
	}
}

func report(ctx context.Context, s *network.Spectator, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sum, ok := s.Latest()
			if !ok {
				continue
			}
			if lag := s.Since(now); lag > 2*interval {
				log.Printf("no snapshot for %s", lag.Round(time.Millisecond))
			}
			log.Println(sum)
		}
	}
}
