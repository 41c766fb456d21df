package prefabs

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestLoadGameConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(GameConfigFile)
	if err != nil {
		t.Fatalf("load game config: %v", err)
	}
	def := DefaultGameConfig()

	if cfg.World != def.World {
		t.Fatalf("expected world %+v, got %+v", def.World, cfg.World)
	}
	if cfg.Magnet != def.Magnet {
		t.Fatalf("expected magnet %+v, got %+v", def.Magnet, cfg.Magnet)
	}
	if cfg.Rope != def.Rope {
		t.Fatalf("expected rope %+v, got %+v", def.Rope, cfg.Rope)
	}
	if len(cfg.Loot.Kinds) != 3 {
		t.Fatalf("expected 3 loot kinds, got %d", len(cfg.Loot.Kinds))
	}
}

func TestGameConfigDerivedHeights(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "surface", got: cfg.World.Surface(), want: -100},
		{name: "bottom", got: cfg.World.Bottom(), want: -1100},
		{name: "start_y", got: cfg.StartY(), want: -70},
		{name: "underwater_y", got: cfg.UnderwaterY(), want: -120},
		{name: "anchor_y", got: cfg.AnchorY(), want: 50},
		{name: "right", got: cfg.World.Right(), want: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestParseGameConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("rope:\n  max_segments: 80\nday:\n  duration: 30\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Rope.MaxSegments != 80 {
		t.Fatalf("expected max segments 80, got %d", cfg.Rope.MaxSegments)
	}
	if cfg.Rope.MinSegments != 3 {
		t.Fatalf("expected untouched min segments 3, got %d", cfg.Rope.MinSegments)
	}
	if cfg.Day.Duration != 30 {
		t.Fatalf("expected duration 30, got %v", cfg.Day.Duration)
	}
	if p := cfg.Rope.Params(); p.MaxSegments != 80 || p.BaseSegmentLength != 10 {
		t.Fatalf("expected params to follow config, got %+v", p)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Rope.MinSegments = 0
	cfg.Rope.MaxSegments = -1
	cfg.Rope.AnchorStiffness = 3
	cfg.Day.Duration = 0
	cfg.World.WallThickness = 0
	cfg.World.DarkenDepth = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"rope.min_segments", "rope.max_segments", "rope.anchor_stiffness", "day.duration", "world.wall_thickness", "world.darken_depth"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}

	if _, err := ParseGameConfig([]byte("day:\n  duration: -1\n")); err == nil {
		t.Fatalf("expected parse to reject invalid config")
	}
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}

	var nilCfg *GameConfig
	if err := nilCfg.Validate(); err == nil || errors.Unwrap(err) != nil {
		t.Fatalf("expected plain error for nil config, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{name: "hex", in: "#ff8000", want: color.NRGBA{R: 255, G: 128, B: 0, A: 255}},
		{name: "hex_alpha", in: "#1e4f8c99", want: color.NRGBA{R: 0x1e, G: 0x4f, B: 0x8c, A: 0x99}},
		{name: "named", in: "Crimson", want: color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}},
		{name: "bad_length", in: "#fff", wantErr: true},
		{name: "bad_digit", in: "#gg0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEntityPrefabsDecode(t *testing.T) {
	names := []string{"magnet.yaml", "rope.yaml", "boat.yaml", "wheel.yaml", "water.yaml", "camera.yaml", "eel.yaml", "loot.yaml", "coin.yaml", "goblet.yaml", "chest.yaml"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if spec.Name == "" || len(spec.Components) == 0 {
				t.Fatalf("expected a named prefab with components, got %+v", spec)
			}
		})
	}

	spec, err := LoadEntityBuildSpec("prefabs/rope.yaml")
	if err != nil {
		t.Fatalf("load rope: %v", err)
	}
	rope, err := DecodeComponentSpec[RopeComponentSpec](spec.Components["rope"])
	if err != nil {
		t.Fatalf("decode rope: %v", err)
	}
	if rope.Thickness != 2 || rope.Color.Or(nil) == nil {
		t.Fatalf("expected thickness and colour, got %+v", rope)
	}
}
