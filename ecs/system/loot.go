package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// LootSystem magnetises loot near the magnet, pulls it in, and collects it
// once it is hauled up near the surface. Each collection pushes a
// LootCollected event and destroys the loot.
type LootSystem struct {
	cfg   *prefabs.GameConfig
	winch *Winch

	// attached is the value of loot currently held by the magnet.
	attached float64
}

func NewLootSystem(cfg *prefabs.GameConfig, winch *Winch) *LootSystem {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	return &LootSystem{cfg: cfg, winch: winch}
}

func (s *LootSystem) SetConfig(cfg *prefabs.GameConfig) {
	if s == nil || cfg == nil {
		return
	}
	s.cfg = cfg
}

// Attached returns the value of the loot magnetised last frame.
func (s *LootSystem) Attached() float64 {
	if s == nil {
		return 0
	}
	return s.attached
}

func (s *LootSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.attached = 0

	mt, ok := ecs.Get(w, s.winch.Magnet(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	magnet := cp.Vector{X: mt.X, Y: mt.Y}
	collectAbove := s.cfg.World.Surface() - s.cfg.Loot.CollectMargin

	var collected []ecs.Entity
	ecs.ForEach3(w, component.LootComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, loot *component.Loot, tr *component.Transform, pb *component.PhysicsBody) {
		pos := cp.Vector{X: tr.X, Y: tr.Y}
		dist := pos.Distance(magnet)

		switch {
		case dist <= s.cfg.Loot.HoldRadius:
			loot.Magnetised = true
		case dist < s.cfg.Loot.MagnetRadius:
			loot.Magnetised = true
			if pb.Body != nil && dist > 0 {
				pull := magnet.Sub(pos).Mult(s.cfg.Loot.PullForce / dist)
				pb.Body.ApplyForceAtWorldPoint(pull, pb.Body.Position())
			}
		default:
			loot.Magnetised = false
		}

		if !loot.Magnetised {
			return
		}
		s.attached += loot.Value
		if tr.Y > collectAbove {
			w.Events().Push(ecs.Event{
				Type: ecs.EventLootCollected,
				Data: ecs.LootCollected{Kind: loot.Kind, Value: loot.Value},
			})
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		ecs.DestroyEntity(w, e)
	}
}
