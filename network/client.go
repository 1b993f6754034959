package network

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// Spectator follows a server's replicated world without taking part in it.
// Router callbacks run on necs goroutines, so shared fields sit behind mu.
type Spectator struct {
	address string

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	latest    *esync.WorldSnapshot
	received  int
	lastAt    time.Time
}

func NewSpectator(address string) *Spectator {
	return &Spectator{address: address}
}

// Run connects and blocks until ctx is cancelled or the transport fails.
func (s *Spectator) Run(ctx context.Context) error {
	router.OnConnect(func(_ *router.NetworkClient) {
		log.Printf("[client] watching %s", s.address)
		s.mu.Lock()
		s.connected = true
		s.mu.Unlock()
	})
	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		s.mu.Lock()
		s.connected = false
		s.conn = nil
		s.mu.Unlock()
	})
	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})
	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		s.onSnapshot(snapshot, time.Now())
	})
	defer router.ResetRouter()

	errCh := make(chan error, 1)
	go func() {
		transport := transports.NewWsClientTransport("ws://" + s.address)
		errCh <- transport.Start(func(conn *websocket.Conn) {
			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()
		})
	}()

	select {
	case <-ctx.Done():
		s.close()
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("watch %s: %w", s.address, err)
		}
		return nil
	}
}

// Only the newest snapshot is kept.
func (s *Spectator) onSnapshot(snapshot esync.WorldSnapshot, at time.Time) {
	s.mu.Lock()
	s.latest = &snapshot
	s.received++
	s.lastAt = at
	s.mu.Unlock()
}

func (s *Spectator) close() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.connected = false
	s.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
}

// Latest summarizes the newest snapshot. It reports false before the first
// snapshot arrives.
func (s *Spectator) Latest() (Summary, bool) {
	s.mu.Lock()
	snap := s.latest
	s.mu.Unlock()

	if snap == nil {
		return Summary{}, false
	}
	return Summarize(*snap), true
}

// Received is the number of snapshots seen so far.
func (s *Spectator) Received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}

// Since is the time elapsed since the last snapshot, zero before the first.
func (s *Spectator) Since(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAt.IsZero() {
		return 0
	}
	return now.Sub(s.lastAt)
}

func (s *Spectator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}
