package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// MagnetSystem enforces the winch constraint after the physics step: pending
// resets, rewinding, the rope-length clamp, the underwater trigger revert and
// the electrocution countdown, in that order. Entities missing a body are
// skipped until the physics system has created one.
type MagnetSystem struct {
	dt float64
}

func NewMagnetSystem(cfg *prefabs.GameConfig) *MagnetSystem {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	return &MagnetSystem{dt: cfg.World.DT()}
}

func (s *MagnetSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.MagnetComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Magnet, pb *component.PhysicsBody, tr *component.Transform) {
		if pb.Body == nil {
			return
		}

		if m.Rewinding {
			m.RopeLength -= m.WinchSpeed * s.dt
			if m.RopeLength <= 0 {
				m.RopeLength = 0
				m.ShouldReset = true
			}
		}

		if m.ShouldReset {
			resetMagnet(m, pb, tr)
		}

		clampToRope(m, pb, tr)

		if pb.Sensor && !m.Rewinding && pb.Body.Position().Y < m.UnderwaterY {
			setSensor(pb, false)
		}

		if m.Electrocuted {
			m.ElectrocutedTimer -= s.dt
			if m.ElectrocutedTimer <= 0 {
				m.ElectrocutedTimer = 0
				m.Electrocuted = false
			}
		}
	})
}

func resetMagnet(m *component.Magnet, pb *component.PhysicsBody, tr *component.Transform) {
	start := cp.Vector{X: m.StartX, Y: m.StartY}
	pb.Body.SetPosition(start)
	pb.Body.SetVelocityVector(cp.Vector{})
	pb.Body.SetAngularVelocity(0)
	setSensor(pb, false)

	m.RopeLength = 0
	m.ShouldReset = false
	m.Rewinding = false
	m.Dropped = false

	tr.X = start.X
	tr.Y = start.Y
}

// clampToRope snaps the magnet back to StartY - RopeLength when it hangs
// lower, and drops any remaining downward velocity.
func clampToRope(m *component.Magnet, pb *component.PhysicsBody, tr *component.Transform) {
	pos := pb.Body.Position()
	floor := m.StartY - m.RopeLength
	if pos.Y >= floor {
		return
	}

	pos.Y = floor
	pb.Body.SetPosition(pos)
	if vel := pb.Body.Velocity(); vel.Y < 0 {
		vel.Y = 0
		pb.Body.SetVelocityVector(vel)
	}
	tr.X = pos.X
	tr.Y = pos.Y
}

func setSensor(pb *component.PhysicsBody, sensor bool) {
	pb.Sensor = sensor
	if pb.Shape != nil {
		pb.Shape.SetSensor(sensor)
	}
}
