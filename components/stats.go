package components

import "github.com/yohamta/donburi"

// StatsData counts simulation events.
// This is a singleton component - only one exists per world.
type StatsData struct {
	Frame      uint64
	Shots      int
	Impacts    int
	Bounces    int
	Pierces    int
	Suppressed int
	Expired    int
	Kills      int
	AIEvals    int
}

var Stats = donburi.NewComponentType[StatsData]()

// MustStats returns the world's stats singleton.
func MustStats(w donburi.World) *StatsData {
	return Stats.Get(Stats.MustFirst(w))
}
