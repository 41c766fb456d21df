package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system on the first frame the
// entity is seen.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	// Sensor puts the shape in trigger mode: it reports overlaps but does not
	// collide. The physics system mirrors it onto the shape every frame.
	Sensor bool
	// LinearDamping is the fraction of velocity lost per second.
	LinearDamping float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
