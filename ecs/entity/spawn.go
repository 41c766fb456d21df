package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

// SpawnEel builds an eel at (x, y). It matches system.SpawnFunc.
func SpawnEel(w *ecs.World, x, y float64) (ecs.Entity, error) {
	eel, err := BuildEntity(w, "eel.yaml")
	if err != nil {
		return 0, fmt.Errorf("eel: %w", err)
	}
	if err := SetEntityTransform(w, eel, x, y, 0); err != nil {
		ecs.DestroyEntity(w, eel)
		return 0, fmt.Errorf("eel: set transform: %w", err)
	}
	return eel, nil
}

// LootCount is how many items of a kind are scattered across its depth band:
// Density items per 100 units of depth.
func LootCount(kind prefabs.LootKind) int {
	band := kind.DepthEnd - kind.DepthStart
	if band <= 0 || kind.Density <= 0 {
		return 0
	}
	return int(math.Floor(band / 100 * kind.Density))
}

// SpawnLoot clears any loot left in the water and scatters a fresh day's
// worth: every configured kind across its depth band plus one treasure near
// the sea bed. It returns the number of items spawned.
func SpawnLoot(w *ecs.World, cfg *prefabs.GameConfig, rng *rand.Rand) (int, error) {
	if w == nil || cfg == nil || rng == nil {
		return 0, fmt.Errorf("loot: world, config and rng are required")
	}

	for _, e := range w.Query(component.LootComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}

	surface := cfg.World.Surface()
	minX := cfg.World.Left + cfg.Loot.EdgeMargin
	maxX := cfg.World.Right() - cfg.Loot.EdgeMargin

	spawned := 0
	for _, kind := range cfg.Loot.Kinds {
		for i := 0; i < LootCount(kind); i++ {
			x := minX + rng.Float64()*(maxX-minX)
			depth := kind.DepthStart + rng.Float64()*(kind.DepthEnd-kind.DepthStart)
			if _, err := spawnLootItem(w, kind, x, surface-depth); err != nil {
				return spawned, err
			}
			spawned++
		}
	}

	if cfg.Loot.Treasure.Prefab != "" {
		x := cfg.World.Left + 0.6*cfg.World.WaterWidth
		if _, err := spawnLootItem(w, cfg.Loot.Treasure, x, cfg.World.Bottom()+50); err != nil {
			return spawned, err
		}
		spawned++
	}
	return spawned, nil
}

func spawnLootItem(w *ecs.World, kind prefabs.LootKind, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, kind.Prefab)
	if err != nil {
		return 0, fmt.Errorf("loot %s: %w", kind.Name, err)
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("loot %s: set transform: %w", kind.Name, err)
	}
	loot, ok := ecs.Get(w, e, component.LootComponent.Kind())
	if !ok {
		loot = &component.Loot{}
		if err := ecs.Add(w, e, component.LootComponent.Kind(), loot); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("loot %s: %w", kind.Name, err)
		}
	}
	loot.Kind = kind.Name
	loot.Value = kind.Value
	return e, nil
}
