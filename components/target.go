package components

import (
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/yohamta/donburi"
)

type TargetData struct {
	Name     string
	Position gamemath.Vec3
}

var Target = donburi.NewComponentType[TargetData]()
