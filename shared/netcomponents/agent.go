package netcomponents

import (
	"github.com/automoto/ricochet/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetAgentData struct {
	X, Z   float64
	Health float64
	State  netconfig.AgentStateID
}

var NetAgent = donburi.NewComponentType[NetAgentData]()

// LerpNetAgent interpolates between two agent states
func LerpNetAgent(from, to NetAgentData, t float64) *NetAgentData {
	return &NetAgentData{
		X:      from.X + (to.X-from.X)*t,
		Z:      from.Z + (to.Z-from.Z)*t,
		Health: to.Health,
		State:  to.State,
	}
}
