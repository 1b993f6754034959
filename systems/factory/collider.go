package factory

import (
	"sync/atomic"

	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/ballistics"
)

var colliderSeq atomic.Uint64

// nextColliderID hands out ids above the ground plane's id so the two never
// clash.
func nextColliderID() ballistics.ColliderID {
	return ballistics.ColliderID(cfg.Sim.GroundColliderID + colliderSeq.Add(1))
}
