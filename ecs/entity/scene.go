package entity

import (
	"fmt"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// Scene holds the long-lived entities of a fishing world.
type Scene struct {
	Magnet ecs.Entity
	Rope   ecs.Entity
	Boat   ecs.Entity
	Wheel  ecs.Entity
	Water  ecs.Entity
	Camera ecs.Entity
	Day    ecs.Entity
	// Walls are the top, bottom, left and right colliders around the water.
	Walls [4]ecs.Entity
}

// BuildScene creates the water and its walls, the boat, winch, magnet, rope,
// camera and day tracker. Loot is spawned separately at the start of each day.
func BuildScene(w *ecs.World, cfg *prefabs.GameConfig) (*Scene, error) {
	if w == nil {
		return nil, fmt.Errorf("scene: world is nil")
	}
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}

	var (
		s   Scene
		err error
	)
	if s.Water, err = BuildWater(w, cfg); err != nil {
		return nil, err
	}
	if s.Walls, err = BuildWalls(w, cfg); err != nil {
		return nil, err
	}
	if s.Boat, err = BuildBoat(w, cfg); err != nil {
		return nil, err
	}
	if s.Wheel, err = BuildWheel(w, cfg); err != nil {
		return nil, err
	}
	if s.Magnet, err = BuildMagnet(w, cfg); err != nil {
		return nil, err
	}
	if s.Rope, err = BuildRope(w, cfg, s.Magnet); err != nil {
		return nil, err
	}
	if s.Camera, err = BuildCamera(w, cfg); err != nil {
		return nil, err
	}
	if s.Day, err = BuildDayCycle(w, cfg); err != nil {
		return nil, err
	}
	return &s, nil
}

// BuildWater fills the play area below the surface.
func BuildWater(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	water, err := BuildEntity(w, "water.yaml")
	if err != nil {
		return 0, fmt.Errorf("water: %w", err)
	}
	width, depth := cfg.World.WaterWidth, cfg.World.WaterDepth
	if err := SetEntityTransform(w, water, cfg.World.Left+width/2, cfg.World.Surface()-depth/2, 0); err != nil {
		return 0, fmt.Errorf("water: set transform: %w", err)
	}
	if sp, ok := ecs.Get(w, water, component.SpriteComponent.Kind()); ok {
		sp.Width = width
		sp.Height = depth
		sp.OriginX = width / 2
		sp.OriginY = depth / 2
	}
	return water, nil
}

// BuildWalls boxes the water in with static colliders centred on its edges.
// The top wall sits on the surface; a dropping magnet passes it as a sensor.
func BuildWalls(w *ecs.World, cfg *prefabs.GameConfig) ([4]ecs.Entity, error) {
	var walls [4]ecs.Entity

	world := cfg.World
	thick := world.WallThickness
	midX := world.Left + world.WaterWidth/2
	midY := world.Surface() - world.WaterDepth/2
	boxes := [4]struct{ x, y, width, height float64 }{
		{midX, world.Surface(), world.WaterWidth, thick},
		{midX, world.Bottom(), world.WaterWidth, thick},
		{world.Left, midY, thick, world.WaterDepth},
		{world.Right(), midY, thick, world.WaterDepth},
	}

	for i, b := range boxes {
		e := ecs.CreateEntity(w)
		if err := SetEntityTransform(w, e, b.x, b.y, 0); err != nil {
			return walls, fmt.Errorf("wall: set transform: %w", err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:  b.width,
			Height: b.height,
			Static: true,
		}); err != nil {
			return walls, fmt.Errorf("wall: %w", err)
		}
		walls[i] = e
	}
	return walls, nil
}

// BuildBoat floats the boat on the surface, keeping the prefab's X.
func BuildBoat(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	boat, err := BuildEntity(w, "boat.yaml")
	if err != nil {
		return 0, fmt.Errorf("boat: %w", err)
	}
	tr, ok := ecs.Get(w, boat, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, boat)
		return 0, fmt.Errorf("boat: prefab has no transform")
	}
	half := 0.0
	if sp, ok := ecs.Get(w, boat, component.SpriteComponent.Kind()); ok {
		half = sp.Height / 2
	}
	tr.Y = cfg.World.Surface() + half
	return boat, nil
}

// BuildWheel places the winch wheel at the rope anchor.
func BuildWheel(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	wheel, err := BuildEntity(w, "wheel.yaml")
	if err != nil {
		return 0, fmt.Errorf("wheel: %w", err)
	}
	if err := SetEntityTransform(w, wheel, cfg.Magnet.StartX, cfg.AnchorY(), 0); err != nil {
		return 0, fmt.Errorf("wheel: set transform: %w", err)
	}
	return wheel, nil
}

// BuildCamera centres the camera on the water column and bounds it so the
// view never leaves the play area vertically.
func BuildCamera(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab has no camera component")
	}
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = cfg.Camera.Zoom
	}
	if cfg.Camera.Smoothness > 0 {
		cam.Smoothness = cfg.Camera.Smoothness
	}

	halfH := float64(cfg.World.ScreenHeight) / 2 / cam.Zoom
	cam.X = cfg.World.Left + cfg.World.WaterWidth/2
	cam.MaxY = cfg.World.Top - halfH
	cam.MinY = cfg.World.Bottom() + halfH
	cam.Y = cfg.StartY()
	if cam.MaxY > cam.MinY {
		cam.Y = min(max(cam.Y, cam.MinY), cam.MaxY)
	}

	if err := SetEntityTransform(w, camera, cam.X, cam.Y, 0); err != nil {
		return 0, fmt.Errorf("camera: set transform: %w", err)
	}
	return camera, nil
}

// BuildDayCycle starts day one docked.
func BuildDayCycle(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DayCycleComponent.Kind(), &component.DayCycle{
		Phase:    component.DayDocked,
		Day:      1,
		Duration: cfg.Day.Duration,
	}); err != nil {
		return 0, fmt.Errorf("day cycle: %w", err)
	}
	return e, nil
}
