package entity

import (
	"fmt"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// BuildMagnet creates the player's magnet hanging at its start position with
// the first equipment tier fitted. Tuning from the game config overrides the
// prefab's body settings.
func BuildMagnet(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	magnet, err := BuildEntity(w, "magnet.yaml")
	if err != nil {
		return 0, fmt.Errorf("magnet: %w", err)
	}

	startY := cfg.StartY()
	if err := SetEntityTransform(w, magnet, cfg.Magnet.StartX, startY, 0); err != nil {
		return 0, fmt.Errorf("magnet: set transform: %w", err)
	}

	if pb, ok := ecs.Get(w, magnet, component.PhysicsBodyComponent.Kind()); ok {
		pb.Radius = cfg.Magnet.Radius
		pb.Mass = cfg.Magnet.Mass
		pb.LinearDamping = cfg.Magnet.LinearDamping
	}
	if err := ecs.Add(w, magnet, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.Magnet.GravityScale}); err != nil {
		return 0, fmt.Errorf("magnet: add gravity scale: %w", err)
	}
	if pm, ok := ecs.Get(w, magnet, component.PlayerMovementComponent.Kind()); ok {
		pm.MoveForce = cfg.Magnet.MoveForce
	}

	var ropeLength, winchSpeed float64
	if len(cfg.Equipment.RopeLengths) > 0 {
		ropeLength = cfg.Equipment.RopeLengths[0]
	}
	if len(cfg.Equipment.WinchSpeeds) > 0 {
		winchSpeed = cfg.Equipment.WinchSpeeds[0]
	}
	if err := ecs.Add(w, magnet, component.MagnetComponent.Kind(), &component.Magnet{
		StartX:           cfg.Magnet.StartX,
		StartY:           startY,
		UnderwaterY:      cfg.UnderwaterY(),
		PlayerRopeLength: ropeLength,
		WinchSpeed:       winchSpeed,
	}); err != nil {
		return 0, fmt.Errorf("magnet: add magnet: %w", err)
	}

	return magnet, nil
}

// BuildRope hangs a rope from the winch anchor above the magnet.
func BuildRope(w *ecs.World, cfg *prefabs.GameConfig, magnet ecs.Entity) (ecs.Entity, error) {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	if !w.IsAlive(magnet) {
		return 0, fmt.Errorf("rope: magnet %v is not alive", magnet)
	}
	r, err := BuildEntity(w, "rope.yaml")
	if err != nil {
		return 0, fmt.Errorf("rope: %w", err)
	}
	rc, ok := ecs.Get(w, r, component.RopeComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, r)
		return 0, fmt.Errorf("rope: prefab has no rope component")
	}
	rc.Magnet = uint64(magnet)
	rc.AnchorX = cfg.Magnet.StartX
	rc.AnchorXSet = true
	rc.AnchorY = cfg.AnchorY()
	rc.Params = cfg.Rope.Params()
	return r, nil
}
