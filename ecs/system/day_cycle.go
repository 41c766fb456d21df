package system

import (
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// DayCycleSystem drives a fishing day: docked until the player drops the
// magnet, fishing until the timer runs out or the player rewinds, then
// rewinding until the magnet is back at its start. Docking banks the haul
// and starts the next day.
type DayCycleSystem struct {
	cfg    *prefabs.GameConfig
	winch  *Winch
	newDay func(w *ecs.World)

	ropeTier  int
	winchTier int
}

// NewDayCycleSystem builds the system. newDay, if set, runs each time the
// boat docks after a day (loot respawn).
func NewDayCycleSystem(cfg *prefabs.GameConfig, winch *Winch, newDay func(w *ecs.World)) *DayCycleSystem {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	return &DayCycleSystem{cfg: cfg, winch: winch, newDay: newDay}
}

func (s *DayCycleSystem) SetConfig(cfg *prefabs.GameConfig) {
	if s == nil || cfg == nil {
		return
	}
	s.cfg = cfg
}

func (s *DayCycleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dayEntity, ok := w.First(component.DayCycleComponent.Kind())
	if !ok {
		return
	}
	day, ok := ecs.Get(w, dayEntity, component.DayCycleComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Drain() {
		if collected, ok := evt.Data.(ecs.LootCollected); ok && evt.Type == ecs.EventLootCollected {
			day.Haul += collected.Value
		}
	}

	var input component.Input
	if e, ok := w.First(component.InputComponent.Kind()); ok {
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			input = *in
		}
	}

	switch day.Phase {
	case component.DayDocked:
		if input.UpgradePressed {
			s.requestUpgrade(w)
		}
		if input.DropPressed {
			s.winch.DropMagnet()
			day.Phase = component.DayFishing
			day.Elapsed = 0
		}
	case component.DayFishing:
		day.Elapsed += s.cfg.World.DT()
		if day.Elapsed >= day.Duration || input.RewindPressed {
			s.winch.RewindMagnet()
			day.Phase = component.DayRewinding
		}
	case component.DayRewinding:
		m, ok := s.winch.State()
		if !ok || m.Dropped {
			return
		}
		day.Phase = component.DayDocked
		day.Day++
		day.Bank += day.Haul
		day.Haul = 0
		day.Elapsed = 0
		day.Duration = s.cfg.Day.Duration
		if s.newDay != nil {
			s.newDay(w)
		}
	}
}

// requestUpgrade moves the winch to the next equipment tier, rope first.
func (s *DayCycleSystem) requestUpgrade(w *ecs.World) {
	lengths := s.cfg.Equipment.RopeLengths
	speeds := s.cfg.Equipment.WinchSpeeds

	var req component.UpgradeRequest
	switch {
	case s.ropeTier+1 < len(lengths):
		s.ropeTier++
		req.RopeLength = lengths[s.ropeTier]
	case s.winchTier+1 < len(speeds):
		s.winchTier++
		req.WinchSpeed = speeds[s.winchTier]
	default:
		return
	}
	_ = ecs.Add(w, s.winch.Magnet(), component.UpgradeRequestComponent.Kind(), &req)
}
