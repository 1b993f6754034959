package config

// ServerConfig contains transport and loop configuration
type ServerConfig struct {
	Port     uint
	TickRate int    // simulation steps per second
	Arena    string // bundled arena stem, or a path to a .tmx file
	AppName  string // gdata namespace for saved tuning
}

// SimConfig contains world-level physics configuration
type SimConfig struct {
	Gravity          float64 // world units/s^2 pulling along -Y
	GroundColliderID uint64  // collider id reported for the y=0 ground plane
	CellSize         int     // resolv broadphase cell size
	MaxProjectiles   int     // turrets hold fire above this many live projectiles
}

// AgentConfig contains defaults for AI-driven agents
type AgentConfig struct {
	Speed          float64 // units/s
	Radius         float64
	Height         float64
	Health         int
	Friction       float64 // units/s lost per second when idle
	ArriveDistance float64 // stop steering inside this range
	RespawnSeconds float64
}

// TurretConfig contains defaults for arena turrets
type TurretConfig struct {
	FireInterval float64 // seconds between shots
	Range        float64
	Size         float64
}

// DebugConfig toggles diagnostic logging
type DebugConfig struct {
	LogCollisions bool
	LogAI         bool
}

// Dt is the fixed simulation step in seconds.
func (s ServerConfig) Dt() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}

var Server ServerConfig
var Sim SimConfig
var Agent AgentConfig
var Turret TurretConfig
var Debug DebugConfig

func init() {
	Server = ServerConfig{
		Port:     7373,
		TickRate: 60,
		Arena:    "arena01",
		AppName:  "ricochet",
	}

	Sim = SimConfig{
		Gravity:          9.81,
		GroundColliderID: 1,
		CellSize:         2,
		MaxProjectiles:   256,
	}

	Agent = AgentConfig{
		Speed:          4.0,
		Radius:         0.4,
		Height:         1.8,
		Health:         100,
		Friction:       12.0,
		ArriveDistance: 0.5,
		RespawnSeconds: 3.0,
	}

	Turret = TurretConfig{
		FireInterval: 1.5,
		Range:        30.0,
		Size:         1.0,
	}

	Debug = DebugConfig{
		LogCollisions: false,
		LogAI:         false,
	}
}
