package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func restoreDefaults(t *testing.T) {
	server, ai := Server, AI
	t.Cleanup(func() {
		Server, AI = server, ai
	})
}

func TestTuningRoundTrip(t *testing.T) {
	restoreDefaults(t)
	store := &memStore{}

	AI.MaxUpdatesPerFrame = 17
	AI.FarRange = 99
	require.NoError(t, SaveTuning(store, CurrentTuning()))

	AI.MaxUpdatesPerFrame = 1
	AI.FarRange = 1

	saved, err := LoadTuning(store)
	require.NoError(t, err)
	require.NotNil(t, saved)
	ApplyTuning(saved)

	assert.Equal(t, 17, AI.MaxUpdatesPerFrame)
	assert.Equal(t, 99.0, AI.FarRange)
}

func TestLoadTuningEmpty(t *testing.T) {
	saved, err := LoadTuning(&memStore{})
	require.NoError(t, err)
	assert.Nil(t, saved)

	saved, err = LoadTuning(nil)
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := LoadTuning(&memStore{loadErr: errors.New("disk gone")})
	assert.ErrorContains(t, err, "disk gone")

	_, err = LoadTuning(&memStore{items: map[string][]byte{tuningKey: []byte("{")}})
	assert.Error(t, err)
}

func TestApplyTuningSkipsInvalid(t *testing.T) {
	restoreDefaults(t)
	tick := Server.TickRate

	ApplyTuning(&SavedTuning{TickRate: 0, MaxUpdatesPerFrame: -3, MidRange: -1})
	assert.Equal(t, tick, Server.TickRate)
	assert.Equal(t, 8, AI.MaxUpdatesPerFrame)
	assert.Equal(t, 15.0, AI.MidRange)

	ApplyTuning(nil)
}

func TestProjectileTable(t *testing.T) {
	for name, typ := range Projectiles.Types {
		assert.Equal(t, name, typ.Name)
		assert.Greater(t, typ.Speed, 0.0, name)
		assert.Greater(t, typ.Lifetime, 0.0, name)
	}
	_, ok := ProjectileType(Projectiles.Default)
	assert.True(t, ok)
	_, ok = ProjectileType("nope")
	assert.False(t, ok)
}

func TestServerDt(t *testing.T) {
	assert.InDelta(t, 1.0/60, ServerConfig{TickRate: 60}.Dt(), 1e-12)
	assert.Equal(t, 0.0, ServerConfig{}.Dt())
}
