package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// PlayerMovementSystem pushes the magnet around with a central force built
// from the input direction. An electrocuted magnet gets no force at all.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.PlayerMovementComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, input *component.Input, move *component.PlayerMovement, pb *component.PhysicsBody) {
		move.LastForce = cp.Vector{}
		if pb.Body == nil {
			return
		}
		if m, ok := ecs.Get(w, e, component.MagnetComponent.Kind()); ok && m.Electrocuted {
			return
		}

		force := cp.Vector{X: input.MoveX * move.MoveForce, Y: input.MoveY * move.MoveForce}
		if force.X == 0 && force.Y == 0 {
			return
		}
		pb.Body.ApplyForceAtWorldPoint(force, pb.Body.Position())
		move.LastForce = force
	})
}
