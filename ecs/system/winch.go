package system

import (
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// Winch is the imperative surface over the magnet's state used by the day
// cycle, upgrades and hazards. Methods only flag or set state; MagnetSystem
// applies anything that moves the body on its next update.
type Winch struct {
	world  *ecs.World
	magnet ecs.Entity
}

// NewWinch binds the winch to one magnet entity in w. Operations on a magnet
// without a Magnet component are no-ops.
func NewWinch(w *ecs.World, magnet ecs.Entity) *Winch {
	return &Winch{world: w, magnet: magnet}
}

func (wn *Winch) Magnet() ecs.Entity {
	if wn == nil {
		return 0
	}
	return wn.magnet
}

// State returns a copy of the magnet state.
func (wn *Winch) State() (component.Magnet, bool) {
	m, ok := wn.state()
	if !ok {
		return component.Magnet{}, false
	}
	return *m, true
}

// DropMagnet releases the magnet: the body becomes a trigger so it passes
// through the boat and surface, and the permitted length jumps to the
// equipped rope length.
func (wn *Winch) DropMagnet() {
	m, ok := wn.state()
	if !ok {
		return
	}
	m.RopeLength = m.PlayerRopeLength
	m.Dropped = true
	m.Rewinding = false

	if pb, ok := ecs.Get(wn.world, wn.magnet, component.PhysicsBodyComponent.Kind()); ok {
		setSensor(pb, true)
	}
}

// ResetMagnet requests a reset on the next MagnetSystem update.
func (wn *Winch) ResetMagnet() {
	if m, ok := wn.state(); ok {
		m.ShouldReset = true
	}
}

func (wn *Winch) ChangeRopeLength(length float64) {
	if m, ok := wn.state(); ok {
		m.PlayerRopeLength = length
	}
}

func (wn *Winch) ChangeWinchSpeed(speed float64) {
	if m, ok := wn.state(); ok {
		m.WinchSpeed = speed
	}
}

// RewindMagnet starts reeling a dropped magnet in at WinchSpeed. The magnet
// resets once the rope is fully wound.
func (wn *Winch) RewindMagnet() {
	m, ok := wn.state()
	if !ok || !m.Dropped {
		return
	}
	m.Rewinding = true

	// hauled up through the surface wall; reset makes it solid again
	if pb, ok := ecs.Get(wn.world, wn.magnet, component.PhysicsBodyComponent.Kind()); ok {
		setSensor(pb, true)
	}
}

// Electrocute disables propulsion for the given number of seconds.
func (wn *Winch) Electrocute(seconds float64) {
	m, ok := wn.state()
	if !ok || seconds <= 0 {
		return
	}
	m.Electrocuted = true
	if seconds > m.ElectrocutedTimer {
		m.ElectrocutedTimer = seconds
	}
}

func (wn *Winch) state() (*component.Magnet, bool) {
	if wn == nil || wn.world == nil {
		return nil, false
	}
	return ecs.Get(wn.world, wn.magnet, component.MagnetComponent.Kind())
}
