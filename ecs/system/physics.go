package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// PhysicsSystem owns the Chipmunk space. Bodies are created lazily for every
// entity with a PhysicsBody and a Transform and removed when the entity or
// component goes away.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool

	// read by the body's velocity func every step
	gravityScale  float64
	linearDamping float64
}

func NewPhysicsSystem(cfg *prefabs.GameConfig) *PhysicsSystem {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: cfg.World.Gravity})
	return &PhysicsSystem{
		space:    space,
		dt:       cfg.World.DT(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity changes world gravity, used when the config is reloaded.
func (ps *PhysicsSystem) SetGravity(g float64) {
	if ps == nil || ps.space == nil {
		return
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: g})
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.syncEntities(w)
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
		}
		if bodyComp.Body == nil || bodyComp.Shape == nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		info.gravityScale = 1
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			info.gravityScale = gs.Scale
		}
		info.linearDamping = bodyComp.LinearDamping

		// trigger/solid toggle
		if info.shape.Sensor() != bodyComp.Sensor {
			info.shape.SetSensor(bodyComp.Sensor)
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}

	info := &bodyInfo{static: bodyComp.Static, gravityScale: 1}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	var moment float64
	if radius > 0 {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		d := damping * math.Max(0, 1-info.linearDamping*dt)
		cp.BodyUpdateVelocity(body, gravity.Mult(info.gravityScale), d, dt)
	})

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
