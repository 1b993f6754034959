package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

// SavedTuning is the tuning data stored on disk between server runs
type SavedTuning struct {
	TickRate           int     `json:"tickRate"`
	MaxUpdatesPerFrame int     `json:"maxUpdatesPerFrame"`
	EnableLod          bool    `json:"enableLod"`
	MidRange           float64 `json:"midRange"`
	FarRange           float64 `json:"farRange"`
	MidIntervalFrames  int     `json:"midIntervalFrames"`
	FarIntervalFrames  int     `json:"farIntervalFrames"`
}

// ItemStore is the subset of *gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the gdata manager for the configured app name.
func OpenStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: Server.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", Server.AppName, err)
	}
	return m, nil
}

// LoadTuning reads saved tuning. It returns nil with no error when nothing has
// been saved yet.
func LoadTuning(store ItemStore) (*SavedTuning, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(tuningKey)
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	return &t, nil
}

// SaveTuning writes tuning to the store.
func SaveTuning(store ItemStore, t *SavedTuning) error {
	if store == nil || t == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := store.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// CurrentTuning captures the live tuning values.
func CurrentTuning() *SavedTuning {
	return &SavedTuning{
		TickRate:           Server.TickRate,
		MaxUpdatesPerFrame: AI.MaxUpdatesPerFrame,
		EnableLod:          AI.EnableLod,
		MidRange:           AI.MidRange,
		FarRange:           AI.FarRange,
		MidIntervalFrames:  AI.MidIntervalFrames,
		FarIntervalFrames:  AI.FarIntervalFrames,
	}
}

// ApplyTuning copies saved values over the defaults. Out-of-range values are
// skipped.
func ApplyTuning(t *SavedTuning) {
	if t == nil {
		return
	}
	if t.TickRate > 0 {
		Server.TickRate = t.TickRate
	}
	if t.MaxUpdatesPerFrame >= 0 {
		AI.MaxUpdatesPerFrame = t.MaxUpdatesPerFrame
	}
	AI.EnableLod = t.EnableLod
	if t.MidRange > 0 {
		AI.MidRange = t.MidRange
	}
	if t.FarRange > 0 {
		AI.FarRange = t.FarRange
	}
	if t.MidIntervalFrames > 0 {
		AI.MidIntervalFrames = t.MidIntervalFrames
	}
	if t.FarIntervalFrames > 0 {
		AI.FarIntervalFrames = t.FarIntervalFrames
	}
	log.Printf("[persistence] applied tuning: tick=%d budget=%d lod=%v",
		Server.TickRate, AI.MaxUpdatesPerFrame, AI.EnableLod)
}
