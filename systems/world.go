package systems

import (
	"github.com/automoto/ricochet/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// discard absorbs counter updates when a world has no stats singleton.
var discard components.StatsData

func spaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

func statsOf(w donburi.World) *components.StatsData {
	if e, ok := components.Stats.First(w); ok {
		return components.Stats.Get(e)
	}
	return &discard
}

// AdvanceFrame bumps the frame counter. It runs first every tick.
func AdvanceFrame(ecs *ecs.ECS) {
	statsOf(ecs.World).Frame++
}
