// Package netconfig defines lightweight types shared between the server and
// clients for network serialization. It must stay free of simulation
// dependencies so any client can import it.
package netconfig

// AgentStateID is the coarse state of an agent as seen by clients.
type AgentStateID int

const (
	AgentIdle AgentStateID = iota
	AgentChasing
	AgentArrived
	AgentDown
)

var agentStateNames = map[AgentStateID]string{
	AgentIdle:    "idle",
	AgentChasing: "chasing",
	AgentArrived: "arrived",
	AgentDown:    "down",
}

func (s AgentStateID) String() string {
	if name, ok := agentStateNames[s]; ok {
		return name
	}
	return "unknown"
}
