package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/ricochet/shared/netcomponents"
	"github.com/automoto/ricochet/shared/netconfig"
	"github.com/leap-fish/necs/esync"
)

// Summary is a condensed view of one world snapshot.
type Summary struct {
	Sim         netcomponents.NetSimStateData
	Projectiles map[string]int // by archetype
	Agents      map[netconfig.AgentStateID]int
	Bounces     int
	Pierces     int
}

// Summarize decodes every replicated component in the snapshot. Components
// that fail to decode are skipped.
func Summarize(snapshot esync.WorldSnapshot) Summary {
	var decoded []any
	for _, ent := range snapshot {
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			decoded = append(decoded, instance)
		}
	}
	return summarize(decoded)
}

func summarize(components []any) Summary {
	s := Summary{
		Projectiles: make(map[string]int),
		Agents:      make(map[netconfig.AgentStateID]int),
	}
	for _, data := range components {
		switch v := data.(type) {
		case netcomponents.NetProjectileData:
			s.Projectiles[v.Archetype]++
			s.Bounces += v.BounceCount
			s.Pierces += v.PenetrationCount
		case netcomponents.NetAgentData:
			s.Agents[v.State]++
		case netcomponents.NetSimStateData:
			s.Sim = v
		}
	}
	return s
}

func (s Summary) String() string {
	archetypes := make([]string, 0, len(s.Projectiles))
	for name := range s.Projectiles {
		archetypes = append(archetypes, name)
	}
	sort.Strings(archetypes)

	var b strings.Builder
	fmt.Fprintf(&b, "frame=%d shots=%d impacts=%d kills=%d", s.Sim.Frame, s.Sim.Shots, s.Sim.Impacts, s.Sim.Kills)
	for _, name := range archetypes {
		fmt.Fprintf(&b, " %s=%d", name, s.Projectiles[name])
	}
	for st := netconfig.AgentIdle; st <= netconfig.AgentDown; st++ {
		if n := s.Agents[st]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", st, n)
		}
	}
	return b.String()
}
