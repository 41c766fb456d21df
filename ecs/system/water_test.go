package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

func TestWaterColorAt(t *testing.T) {
	s := NewWaterColorSystem(testConfig())

	tests := []struct {
		name  string
		depth float64
		want  color.NRGBA
	}{
		{name: "above_surface", depth: -30, want: ShallowWaterColor},
		{name: "shallow", depth: 199, want: ShallowWaterColor},
		{name: "starts_darkening", depth: 200, want: ShallowWaterColor},
		{name: "halfway", depth: 600, want: color.NRGBA{R: 90, G: 118, B: 143, A: 204}},
		{name: "bottom", depth: 1000, want: DeepWaterColor},
		{name: "past_bottom", depth: 1400, want: DeepWaterColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ColorAt(tt.depth); got != tt.want {
				t.Fatalf("ColorAt(%v) = %v, want %v", tt.depth, got, tt.want)
			}
		})
	}
}

func TestWaterColorDarkensMonotonically(t *testing.T) {
	s := NewWaterColorSystem(testConfig())
	prev := s.ColorAt(0)
	for depth := 0.0; depth <= 1000; depth += 10 {
		c := s.ColorAt(depth)
		if c.R > prev.R || c.G > prev.G || c.B > prev.B {
			t.Fatalf("water got lighter at depth %v: %v after %v", depth, c, prev)
		}
		prev = c
	}
}

func TestWaterColorSystemTintsWaterOnly(t *testing.T) {
	cfg := testConfig()
	w := ecs.NewWorld()

	water := ecs.CreateEntity(w)
	_ = ecs.Add(w, water, component.WaterTagComponent.Kind(), &component.WaterTag{})
	_ = ecs.Add(w, water, component.SpriteComponent.Kind(), &component.Sprite{Color: color.White})

	boat := ecs.CreateEntity(w)
	_ = ecs.Add(w, boat, component.SpriteComponent.Kind(), &component.Sprite{Color: color.White})

	sys := NewWaterColorSystem(cfg)
	sys.Update(w)
	if got := mustGet(t, w, water, component.SpriteComponent.Kind()).Color; got != color.White {
		t.Fatalf("water should keep its colour without a magnet, got %v", got)
	}

	magnet := ecs.CreateEntity(w)
	_ = ecs.Add(w, magnet, component.MagnetComponent.Kind(), &component.Magnet{})
	_ = ecs.Add(w, magnet, component.TransformComponent.Kind(), &component.Transform{Y: cfg.World.Surface() - 600})

	sys.Update(w)
	if got, want := mustGet(t, w, water, component.SpriteComponent.Kind()).Color, sys.ColorAt(600); got != want {
		t.Fatalf("water colour = %v, want %v", got, want)
	}
	if got := mustGet(t, w, boat, component.SpriteComponent.Kind()).Color; got != color.White {
		t.Fatalf("untagged sprite was tinted: %v", got)
	}

	mustGet(t, w, magnet, component.TransformComponent.Kind()).Y = cfg.World.Bottom()
	sys.Update(w)
	if got := mustGet(t, w, water, component.SpriteComponent.Kind()).Color; got != DeepWaterColor {
		t.Fatalf("water at the bottom = %v, want %v", got, DeepWaterColor)
	}
}
