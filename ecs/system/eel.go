package system

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// SpawnFunc creates an entity from a prefab at a world position.
type SpawnFunc func(w *ecs.World, x, y float64) (ecs.Entity, error)

// EelSystem releases eels from the left edge at random depths, swims them
// right, and shocks the magnet when one touches it.
type EelSystem struct {
	cfg   *prefabs.GameConfig
	winch *Winch
	spawn SpawnFunc
	rng   *rand.Rand

	timer float64
}

func NewEelSystem(cfg *prefabs.GameConfig, winch *Winch, spawn SpawnFunc, rng *rand.Rand) *EelSystem {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EelSystem{cfg: cfg, winch: winch, spawn: spawn, rng: rng}
}

func (s *EelSystem) SetConfig(cfg *prefabs.GameConfig) {
	if s == nil || cfg == nil {
		return
	}
	s.cfg = cfg
}

func (s *EelSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.cfg.World.DT()

	s.timer += dt
	if s.timer >= s.cfg.Eel.SpawnInterval {
		s.timer = 0
		s.spawnEel(w)
	}

	rightBound := s.cfg.World.Right() + 100
	var gone []ecs.Entity
	ecs.ForEach2(w, component.EelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, eel *component.Eel, tr *component.Transform) {
		tr.X += eel.Speed * dt
		if tr.X > rightBound {
			gone = append(gone, e)
			return
		}
		s.shock(w, e, eel, tr)
	})
	for _, e := range gone {
		ecs.DestroyEntity(w, e)
	}
}

func (s *EelSystem) spawnEel(w *ecs.World) {
	if s.spawn == nil {
		return
	}
	depthRange := s.cfg.World.WaterDepth - s.cfg.Eel.MinDepth
	depth := s.cfg.Eel.MinDepth + s.rng.Float64()*depthRange
	x := s.cfg.World.Left - 50
	y := s.cfg.World.Surface() - depth

	e, err := s.spawn(w, x, y)
	if err != nil {
		log.Printf("eel: spawn: %v", err)
		return
	}
	if eel, ok := ecs.Get(w, e, component.EelComponent.Kind()); ok {
		if s.cfg.Eel.Speed > 0 {
			eel.Speed = s.cfg.Eel.Speed
		}
		if s.cfg.Eel.ShockSeconds > 0 {
			eel.ShockSeconds = s.cfg.Eel.ShockSeconds
		}
	}
}

func (s *EelSystem) shock(w *ecs.World, e ecs.Entity, eel *component.Eel, tr *component.Transform) {
	m, ok := s.winch.State()
	if !ok || !m.Dropped || m.Electrocuted {
		return
	}
	magnet := s.winch.Magnet()
	mt, ok := ecs.Get(w, magnet, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ew, eh := 40.0, 10.0
	if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		ew, eh = sp.Width, sp.Height
	}
	mr := 5.0
	if pb, ok := ecs.Get(w, magnet, component.PhysicsBodyComponent.Kind()); ok && pb.Radius > 0 {
		mr = pb.Radius
	}

	if math.Abs(tr.X-mt.X) <= ew/2+mr && math.Abs(tr.Y-mt.Y) <= eh/2+mr {
		s.winch.Electrocute(eel.ShockSeconds)
	}
}
