package system

import (
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// UpgradeSystem applies pending UpgradeRequests through the winch and removes
// them.
type UpgradeSystem struct {
	winch *Winch
}

func NewUpgradeSystem(winch *Winch) *UpgradeSystem {
	return &UpgradeSystem{winch: winch}
}

func (s *UpgradeSystem) Update(w *ecs.World) {
	if w == nil || s.winch == nil {
		return
	}

	for _, e := range w.Query(component.UpgradeRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.UpgradeRequestComponent.Kind())
		if !ok {
			continue
		}
		if req.RopeLength > 0 {
			s.winch.ChangeRopeLength(req.RopeLength)
		}
		if req.WinchSpeed > 0 {
			s.winch.ChangeWinchSpeed(req.WinchSpeed)
		}
		ecs.Remove(w, e, component.UpgradeRequestComponent.Kind())
	}
}
