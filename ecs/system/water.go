package system

import (
	"image/color"

	"github.com/milk9111/magnetfisher/common"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/prefabs"
)

var (
	ShallowWaterColor = color.NRGBA{R: 128, G: 159, B: 184, A: 204}
	DeepWaterColor    = color.NRGBA{R: 51, G: 77, B: 102, A: 204}
)

// WaterColorSystem tints the water by how deep the magnet is. Above
// DarkenDepth the water keeps its shallow colour; it reaches the deep colour
// at the bottom.
type WaterColorSystem struct {
	surface     float64
	depth       float64
	darkenDepth float64

	Shallow color.NRGBA
	Deep    color.NRGBA
}

func NewWaterColorSystem(cfg *prefabs.GameConfig) *WaterColorSystem {
	s := &WaterColorSystem{Shallow: ShallowWaterColor, Deep: DeepWaterColor}
	s.SetConfig(cfg)
	return s
}

func (s *WaterColorSystem) SetConfig(cfg *prefabs.GameConfig) {
	if cfg == nil {
		cfg = prefabs.DefaultGameConfig()
	}
	s.surface = cfg.World.Surface()
	s.depth = cfg.World.WaterDepth
	s.darkenDepth = cfg.World.DarkenDepth
}

func (s *WaterColorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	magnet, ok := w.First(component.MagnetComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	tr, _ := ecs.Get(w, magnet, component.TransformComponent.Kind())
	c := s.ColorAt(s.surface - tr.Y)

	ecs.ForEach2(w, component.WaterTagComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.WaterTag, sp *component.Sprite) {
		sp.Color = c
	})
}

// ColorAt is the water colour with the magnet depth below the surface.
func (s *WaterColorSystem) ColorAt(depth float64) color.NRGBA {
	if depth < s.darkenDepth {
		return s.Shallow
	}
	if depth >= s.depth || s.depth <= s.darkenDepth {
		return s.Deep
	}
	t := (depth - s.darkenDepth) / (s.depth - s.darkenDepth)
	lerp := func(a, b uint8) uint8 {
		return uint8(common.Clamp(common.Lerp(float64(a), float64(b), t)+0.5, 0, 255))
	}
	return color.NRGBA{
		R: lerp(s.Shallow.R, s.Deep.R),
		G: lerp(s.Shallow.G, s.Deep.G),
		B: lerp(s.Shallow.B, s.Deep.B),
		A: lerp(s.Shallow.A, s.Deep.A),
	}
}
