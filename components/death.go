package components

import "github.com/yohamta/donburi"

// DeathData marks an agent that is waiting to respawn.
// Timer counts down in seconds; at 0 the agent is restored at its spawn.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
