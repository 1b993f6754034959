package config

// AIConfig holds agent re-evaluation budgeting and level-of-detail tuning
type AIConfig struct {
	// Maximum agents re-evaluated per tick. 0 processes every agent every tick.
	MaxUpdatesPerFrame int

	// Distance LOD, measured from the agent to its nearest target
	EnableLod         bool
	MidRange          float64
	FarRange          float64
	MidIntervalFrames int // re-evaluate every N frames beyond MidRange
	FarIntervalFrames int // re-evaluate every N frames beyond FarRange

	// Targets further than this are ignored
	MaxConsiderDistance float64
}

// AI holds agent AI configuration
var AI AIConfig

func init() {
	AI = AIConfig{
		MaxUpdatesPerFrame:  8,
		EnableLod:           true,
		MidRange:            15.0,
		FarRange:            30.0,
		MidIntervalFrames:   2,
		FarIntervalFrames:   6,
		MaxConsiderDistance: 60.0,
	}
}
