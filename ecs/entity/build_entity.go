package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"camera_tag":      addCameraTag,
	"boat_tag":        addBoatTag,
	"water_tag":       addWaterTag,
	"input":           addInput,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"camera":          addCamera,
	"physics_body":    addPhysicsBody,
	"gravity_scale":   addGravityScale,
	"player_movement": addPlayerMovement,
	"rope":            addRope,
	"rocking":         addRocking,
	"wheel":           addWheel,
	"eel":             addEel,
	"loot":            addLoot,
}

// transform goes before anything that reads it
var componentBuildOrder = []string{
	"camera_tag",
	"boat_tag",
	"water_tag",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"camera",
	"physics_body",
	"gravity_scale",
	"player_movement",
	"rope",
	"rocking",
	"wheel",
	"eel",
	"loot",
}

// BuildEntity creates an entity from the components listed in a prefab file.
// On any failure the half-built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string, raw any) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := build(name, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := build(name, remaining[name]); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addBoatTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BoatTagComponent.Kind(), &component.BoatTag{})
}

func addWaterTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WaterTagComponent.Kind(), &component.WaterTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("sprite size must be positive, got %vx%v", spec.Width, spec.Height)
	}

	sprite := component.Sprite{
		Width:   spec.Width,
		Height:  spec.Height,
		Color:   spec.Color.Or(color.White),
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
	}
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX = spec.Width / 2
		sprite.OriginY = spec.Height / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		return fmt.Errorf("physics body needs a radius or a width and height")
	}
	if spec.LinearDamping < 0 {
		return fmt.Errorf("linear damping must not be negative, got %v", spec.LinearDamping)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		Sensor:        spec.Sensor,
		LinearDamping: spec.LinearDamping,
	})
}

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GravityScaleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

func addPlayerMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerMovementComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player movement spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerMovementComponent.Kind(), &component.PlayerMovement{MoveForce: spec.MoveForce})
}

func addRope(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RopeComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rope spec: %w", err)
	}
	if spec.Thickness == 0 {
		spec.Thickness = 2
	}
	return ecs.Add(w, e, component.RopeComponent.Kind(), &component.Rope{
		Thickness: spec.Thickness,
		Color:     spec.Color.Or(color.White),
		Layer:     spec.Layer,
	})
}

func addRocking(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RockingComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rocking spec: %w", err)
	}
	return ecs.Add(w, e, component.RockingComponent.Kind(), &component.Rocking{Speed: spec.Speed, Amplitude: spec.Amplitude})
}

func addWheel(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WheelComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode wheel spec: %w", err)
	}
	return ecs.Add(w, e, component.WheelComponent.Kind(), &component.Wheel{Threshold: spec.Threshold, Factor: spec.Factor})
}

func addEel(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EelComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode eel spec: %w", err)
	}
	return ecs.Add(w, e, component.EelComponent.Kind(), &component.Eel{Speed: spec.Speed, ShockSeconds: spec.ShockSeconds})
}

func addLoot(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LootComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode loot spec: %w", err)
	}
	if spec.Kind == "" {
		return fmt.Errorf("loot kind is empty")
	}
	return ecs.Add(w, e, component.LootComponent.Kind(), &component.Loot{Kind: spec.Kind, Value: spec.Value})
}
