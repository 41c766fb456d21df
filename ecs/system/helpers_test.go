package system

import (
	"testing"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

type fakeInput struct {
	state InputState
}

func (f *fakeInput) Read() InputState {
	return f.state
}

func testConfig() *prefabs.GameConfig {
	cfg := prefabs.DefaultGameConfig()
	cfg.World.Gravity = -400
	cfg.World.TickRate = 60
	return cfg
}

// newTestMagnet builds a magnet hanging at (0, startY) with no damping so
// falls are easy to reason about.
func newTestMagnet(t *testing.T, w *ecs.World, startY, ropeLength float64) ecs.Entity {
	t.Helper()

	e := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: startY, ScaleX: 1, ScaleY: 1}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 10, Mass: 1}),
		ecs.Add(w, e, component.MagnetComponent.Kind(), &component.Magnet{
			StartX:           0,
			StartY:           startY,
			UnderwaterY:      startY - 50,
			PlayerRopeLength: ropeLength,
			WinchSpeed:       100,
		}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.PlayerMovementComponent.Kind(), &component.PlayerMovement{MoveForce: 100}),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("add magnet component: %v", err)
		}
	}
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("expected component on entity %v", e)
	}
	return v
}

func runFrames(w *ecs.World, frames int, systems ...ecs.System) {
	scheduler := ecs.NewScheduler(systems...)
	for i := 0; i < frames; i++ {
		scheduler.Update(w)
	}
}
