package component

import "github.com/jakecoffman/cp"

// PlayerMovement turns Input into a force on the entity's body.
type PlayerMovement struct {
	MoveForce float64
	LastForce cp.Vector
}

var PlayerMovementComponent = NewComponent[PlayerMovement]()
