package protocol

import (
	"fmt"
	"sync"

	"github.com/automoto/ricochet/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetProjectile uint = 10
	SyncIDNetAgent      uint = 11
	SyncIDNetSimState   uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetProjectile uint8 = 10
	InterpIDNetAgent      uint8 = 11
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
// Repeated calls return the first result.
func RegisterComponents() error {
	registerOnce.Do(func() {
		registerErr = registerComponents()
	})
	return registerErr
}

func registerComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return fmt.Errorf("register NetProjectile: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetAgent,
		netcomponents.NetAgentData{},
		netcomponents.NetAgent,
		esync.WithInterpFn(InterpIDNetAgent, netcomponents.LerpNetAgent),
	); err != nil {
		return fmt.Errorf("register NetAgent: %w", err)
	}

	// SimState: no interpolation (counters)
	if err := esync.RegisterComponent(
		SyncIDNetSimState,
		netcomponents.NetSimStateData{},
		netcomponents.NetSimState,
	); err != nil {
		return fmt.Errorf("register NetSimState: %w", err)
	}

	return nil
}
