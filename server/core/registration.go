package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// errEntryExpired is returned when the directory no longer knows this server.
var errEntryExpired = errors.New("directory entry expired")

// Registration announces the server to a directory service and keeps the
// entry fresh with periodic heartbeats.
type Registration struct {
	directoryURL string
	name         string
	address      string
	interval     time.Duration
	server       *Server
	client       *http.Client

	mu      sync.Mutex
	entryID string
}

type announcement struct {
	Instance string `json:"instance"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Arena    string `json:"arena"`
	Status
}

type heartbeat struct {
	ID string `json:"id"`
	Status
}

func NewRegistration(directoryURL, name, address string, server *Server) *Registration {
	return &Registration{
		directoryURL: directoryURL,
		name:         name,
		address:      address,
		interval:     30 * time.Second,
		server:       server,
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

// Run registers and then heartbeats until ctx is cancelled. Failures are
// logged and retried on the next interval.
func (r *Registration) Run(ctx context.Context) {
	if err := r.register(ctx); err != nil {
		log.Printf("[registration] initial registration failed: %v", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.beat(ctx); err != nil {
				log.Printf("[registration] heartbeat failed: %v", err)
			}
		}
	}
}

// ID is the identifier assigned by the directory, empty until registered.
func (r *Registration) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entryID
}

func (r *Registration) register(ctx context.Context) error {
	var result struct {
		ID string `json:"id"`
	}
	err := r.post(ctx, "/servers/register", http.StatusCreated, announcement{
		Instance: r.server.ID(),
		Name:     r.name,
		Address:  r.address,
		Arena:    r.server.ArenaName(),
		Status:   r.server.Status(),
	}, &result)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.entryID = result.ID
	r.mu.Unlock()
	log.Printf("[registration] registered with directory (id=%s)", result.ID)
	return nil
}

// beat sends one heartbeat, re-registering when the entry has expired.
func (r *Registration) beat(ctx context.Context) error {
	id := r.ID()
	if id == "" {
		return r.register(ctx)
	}

	err := r.post(ctx, "/servers/heartbeat", http.StatusOK, heartbeat{
		ID:     id,
		Status: r.server.Status(),
	}, nil)
	if errors.Is(err, errEntryExpired) {
		log.Println("[registration] directory lost our entry, re-registering")
		return r.register(ctx)
	}
	return err
}

// post sends body as JSON and decodes the reply into out when out is non-nil.
func (r *Registration) post(ctx context.Context, path string, want int, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.directoryURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errEntryExpired
	case resp.StatusCode != want:
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
