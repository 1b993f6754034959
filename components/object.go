package components

import (
	"github.com/automoto/ricochet/shared/ballistics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// ColliderData identifies an entity to projectiles.
type ColliderData struct {
	ID ballistics.ColliderID
}

var Object = donburi.NewComponentType[ObjectData]()
var Collider = donburi.NewComponentType[ColliderData]()
