// Package leveldata provides TMX arena parsing for the simulation server.
// It has no dependencies on donburi or resolv, pure data only.
//
// Arenas are authored top-down: TMX x maps to world X and TMX y maps to
// world Z. Walls are full height.
package leveldata

// ArenaData holds everything the simulation needs from an arena file.
type ArenaData struct {
	Walls       []WallRect
	AgentSpawns []SpawnPoint
	Turrets     []TurretSpawn
	Targets     []TargetPoint
	Width       float64
	Depth       float64
}

// WallRect is a solid footprint on the ground plane.
type WallRect struct {
	X, Z, W, D float64
}

// SpawnPoint is where an agent enters the arena.
type SpawnPoint struct {
	X, Z  float64
	Index int
	Speed float64 // 0 uses the configured default
}

// TurretSpawn places a turret firing the named projectile archetype.
type TurretSpawn struct {
	X, Z      float64
	Height    float64
	Archetype string
}

// TargetPoint is a fixed point agents chase.
type TargetPoint struct {
	X, Z float64
	Name string
}
