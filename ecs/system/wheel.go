package system

import (
	"math"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// WheelSystem turns the winch wheel with the magnet's vertical speed.
type WheelSystem struct {
	winch *Winch
	dt    float64
}

func NewWheelSystem(winch *Winch, dt float64) *WheelSystem {
	return &WheelSystem{winch: winch, dt: dt}
}

func (s *WheelSystem) Update(w *ecs.World) {
	if w == nil || s.winch == nil {
		return
	}
	pb, ok := ecs.Get(w, s.winch.Magnet(), component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}
	vy := pb.Body.Velocity().Y

	ecs.ForEach2(w, component.WheelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wheel *component.Wheel, tr *component.Transform) {
		if math.Abs(vy) < wheel.Threshold {
			return
		}
		tr.Rotation += vy * wheel.Factor * s.dt
	})
}

// BoatRockingSystem sways entities with a Rocking component.
type BoatRockingSystem struct {
	dt float64
}

func NewBoatRockingSystem(dt float64) *BoatRockingSystem {
	return &BoatRockingSystem{dt: dt}
}

func (s *BoatRockingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.RockingComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rock *component.Rocking, tr *component.Transform) {
		rock.Time += s.dt
		tr.Rotation = math.Sin(rock.Time*rock.Speed) * rock.Amplitude
	})
}
