package components

import (
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Speed    float64
	Radius   float64
	Height   float64

	SpawnIndex int
	Spawn      gamemath.Vec3

	// Written by AI re-evaluation, read by movement every tick
	Target        gamemath.Vec3
	HasTarget     bool
	LastDistance  float64 // to Target at the last evaluation
	LastEvalFrame uint64
	Evaluated     bool
}

var Agent = donburi.NewComponentType[AgentData]()
