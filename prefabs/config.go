package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/magnetfisher/rope"
	"gopkg.in/yaml.v3"
)

// GameConfigFile is the embedded tuning file.
const GameConfigFile = "game.yaml"

// GameConfig is the game-wide tuning loaded from game.yaml. Unset keys keep
// the values from DefaultGameConfig.
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`
	Magnet    MagnetConfig    `yaml:"magnet"`
	Rope      RopeConfig      `yaml:"rope"`
	Eel       EelConfig       `yaml:"eel"`
	Loot      LootConfig      `yaml:"loot"`
	Day       DayConfig       `yaml:"day"`
	Equipment EquipmentConfig `yaml:"equipment"`
	Camera    CameraConfig    `yaml:"camera"`
}

// WorldConfig places the water in a +Y up world. Top/Left is the corner of
// the play area; the water surface sits WaterLevel below Top.
type WorldConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	TickRate     int     `yaml:"tick_rate"`
	Gravity      float64 `yaml:"gravity"`
	Left         float64 `yaml:"left"`
	Top          float64 `yaml:"top"`
	WaterLevel   float64 `yaml:"water_level"`
	WaterDepth   float64 `yaml:"water_depth"`
	WaterWidth   float64 `yaml:"water_width"`
	// WallThickness is the depth of the solid colliders boxing in the water.
	WallThickness float64 `yaml:"wall_thickness"`
	// DarkenDepth is how far below the surface the water starts to darken.
	DarkenDepth float64 `yaml:"darken_depth"`
}

type MagnetConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartOffset      float64 `yaml:"start_offset"`
	UnderwaterOffset float64 `yaml:"underwater_offset"`
	Radius           float64 `yaml:"radius"`
	Mass             float64 `yaml:"mass"`
	LinearDamping    float64 `yaml:"linear_damping"`
	GravityScale     float64 `yaml:"gravity_scale"`
	MoveForce        float64 `yaml:"move_force"`
}

type RopeConfig struct {
	AnchorOffset         float64 `yaml:"anchor_offset"`
	BaseSegmentLength    float64 `yaml:"base_segment_length"`
	MinSegments          int     `yaml:"min_segments"`
	MaxSegments          int     `yaml:"max_segments"`
	Damping              float64 `yaml:"damping"`
	AnchorDamping        float64 `yaml:"anchor_damping"`
	SagBias              float64 `yaml:"sag_bias"`
	IterationsPerSegment float64 `yaml:"iterations_per_segment"`
	MinIterations        int     `yaml:"min_iterations"`
	MaxIterations        int     `yaml:"max_iterations"`
	AnchorStiffness      float64 `yaml:"anchor_stiffness"`
	AntiFloatBlend       float64 `yaml:"anti_float_blend"`
	Epsilon              float64 `yaml:"epsilon"`
}

type EelConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	MinDepth      float64 `yaml:"min_depth"`
	Speed         float64 `yaml:"speed"`
	ShockSeconds  float64 `yaml:"shock_seconds"`
}

// LootKind spawns floor(range/100 * Density) items between DepthStart and
// DepthEnd below the surface.
type LootKind struct {
	Name       string  `yaml:"name"`
	Value      float64 `yaml:"value"`
	Density    float64 `yaml:"density"`
	DepthStart float64 `yaml:"depth_start"`
	DepthEnd   float64 `yaml:"depth_end"`
	Prefab     string  `yaml:"prefab"`
}

type LootConfig struct {
	// MagnetRadius is the pull range; inside HoldRadius loot is held without
	// being pulled.
	MagnetRadius  float64    `yaml:"magnet_radius"`
	HoldRadius    float64    `yaml:"hold_radius"`
	PullForce     float64    `yaml:"pull_force"`
	CollectMargin float64    `yaml:"collect_margin"`
	EdgeMargin    float64    `yaml:"edge_margin"`
	Kinds         []LootKind `yaml:"kinds"`
	// Treasure is placed once per day near the sea bed.
	Treasure LootKind `yaml:"treasure"`
}

type DayConfig struct {
	Duration float64 `yaml:"duration"`
}

type EquipmentConfig struct {
	RopeLengths []float64 `yaml:"rope_lengths"`
	WinchSpeeds []float64 `yaml:"winch_speeds"`
}

type CameraConfig struct {
	Smoothness float64 `yaml:"smoothness"`
	Zoom       float64 `yaml:"zoom"`
}

func DefaultGameConfig() *GameConfig {
	p := rope.DefaultParams()
	return &GameConfig{
		World: WorldConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			TickRate:     60,
			Gravity:      -400,
			Left:         -400,
			Top:          300,
			WaterLevel:   400,
			WaterDepth:   1000,
			WaterWidth:   800,

			WallThickness: 20,
			DarkenDepth:   200,
		},
		Magnet: MagnetConfig{
			StartX:           -69,
			StartOffset:      30,
			UnderwaterOffset: 20,
			Radius:           10,
			Mass:             1,
			LinearDamping:    0.9,
			GravityScale:     1,
			MoveForce:        100,
		},
		Rope: RopeConfig{
			AnchorOffset:         150,
			BaseSegmentLength:    p.BaseSegmentLength,
			MinSegments:          p.MinSegments,
			MaxSegments:          p.MaxSegments,
			Damping:              p.Damping,
			AnchorDamping:        p.AnchorDamping,
			SagBias:              p.SagBias,
			IterationsPerSegment: p.IterationsPerSegment,
			MinIterations:        p.MinIterations,
			MaxIterations:        p.MaxIterations,
			AnchorStiffness:      p.AnchorStiffness,
			AntiFloatBlend:       p.AntiFloatBlend,
			Epsilon:              p.Epsilon,
		},
		Eel: EelConfig{
			SpawnInterval: 4,
			MinDepth:      200,
			Speed:         60,
			ShockSeconds:  2,
		},
		Loot: LootConfig{
			MagnetRadius:  100,
			HoldRadius:    20,
			PullForce:     20,
			CollectMargin: 75,
			EdgeMargin:    50,
			Kinds: []LootKind{
				{Name: "can", Value: 1, Density: 1, DepthStart: 50, DepthEnd: 400, Prefab: "loot.yaml"},
				{Name: "coin", Value: 5, Density: 0.5, DepthStart: 200, DepthEnd: 800, Prefab: "coin.yaml"},
				{Name: "goblet", Value: 20, Density: 0.5, DepthStart: 500, DepthEnd: 950, Prefab: "goblet.yaml"},
			},
			Treasure: LootKind{Name: "treasure", Value: 100, Prefab: "chest.yaml"},
		},
		Day: DayConfig{Duration: 60},
		Equipment: EquipmentConfig{
			RopeLengths: []float64{200, 400, 700, 1000},
			WinchSpeeds: []float64{100, 160, 250},
		},
		Camera: CameraConfig{
			Smoothness: 0.1,
			Zoom:       1,
		},
	}
}

// LoadGameConfig decodes name over the defaults and validates the result.
func LoadGameConfig(name string) (*GameConfig, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return ParseGameConfig(data)
}

func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate game config: %w", err)
	}
	return cfg, nil
}

// Validate reports every unusable value at once.
func (c *GameConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.World.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("world.tick_rate must be positive, got %d", c.World.TickRate))
	}
	if c.World.ScreenWidth <= 0 || c.World.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("world screen size must be positive, got %dx%d", c.World.ScreenWidth, c.World.ScreenHeight))
	}
	positive("world.water_depth", c.World.WaterDepth)
	positive("world.water_width", c.World.WaterWidth)
	positive("world.wall_thickness", c.World.WallThickness)
	if c.World.DarkenDepth < 0 {
		errs = append(errs, fmt.Errorf("world.darken_depth must not be negative, got %v", c.World.DarkenDepth))
	}

	positive("magnet.radius", c.Magnet.Radius)
	positive("magnet.mass", c.Magnet.Mass)
	if c.Magnet.LinearDamping < 0 {
		errs = append(errs, fmt.Errorf("magnet.linear_damping must not be negative, got %v", c.Magnet.LinearDamping))
	}
	if c.Magnet.UnderwaterOffset < 0 {
		errs = append(errs, fmt.Errorf("magnet.underwater_offset must not be negative, got %v", c.Magnet.UnderwaterOffset))
	}

	positive("rope.base_segment_length", c.Rope.BaseSegmentLength)
	if c.Rope.MinSegments < 1 {
		errs = append(errs, fmt.Errorf("rope.min_segments must be at least 1, got %d", c.Rope.MinSegments))
	}
	if c.Rope.MaxSegments < c.Rope.MinSegments {
		errs = append(errs, fmt.Errorf("rope.max_segments (%d) is below rope.min_segments (%d)", c.Rope.MaxSegments, c.Rope.MinSegments))
	}
	if c.Rope.Damping < 0 || c.Rope.Damping > 1 {
		errs = append(errs, fmt.Errorf("rope.damping must be in [0, 1], got %v", c.Rope.Damping))
	}
	if c.Rope.MinIterations < 1 || c.Rope.MaxIterations < c.Rope.MinIterations {
		errs = append(errs, fmt.Errorf("rope iterations must satisfy 1 <= min <= max, got %d..%d", c.Rope.MinIterations, c.Rope.MaxIterations))
	}
	if c.Rope.AnchorStiffness <= 0 || c.Rope.AnchorStiffness >= 2 {
		errs = append(errs, fmt.Errorf("rope.anchor_stiffness must be in (0, 2), got %v", c.Rope.AnchorStiffness))
	}
	if c.Rope.AntiFloatBlend < 0 || c.Rope.AntiFloatBlend > 1 {
		errs = append(errs, fmt.Errorf("rope.anti_float_blend must be in [0, 1], got %v", c.Rope.AntiFloatBlend))
	}

	positive("eel.spawn_interval", c.Eel.SpawnInterval)
	if c.Eel.MinDepth > c.World.WaterDepth {
		errs = append(errs, fmt.Errorf("eel.min_depth (%v) is deeper than world.water_depth (%v)", c.Eel.MinDepth, c.World.WaterDepth))
	}

	positive("loot.magnet_radius", c.Loot.MagnetRadius)
	if c.Loot.HoldRadius < 0 || c.Loot.HoldRadius > c.Loot.MagnetRadius {
		errs = append(errs, fmt.Errorf("loot.hold_radius must be in [0, magnet_radius], got %v", c.Loot.HoldRadius))
	}
	for i, k := range c.Loot.Kinds {
		if k.Name == "" {
			errs = append(errs, fmt.Errorf("loot.kinds[%d] has no name", i))
		}
		if k.Prefab == "" {
			errs = append(errs, fmt.Errorf("loot.kinds[%d] has no prefab", i))
		}
		if k.Density < 0 {
			errs = append(errs, fmt.Errorf("loot.kinds[%d] density must not be negative, got %v", i, k.Density))
		}
		if k.DepthEnd < k.DepthStart {
			errs = append(errs, fmt.Errorf("loot.kinds[%d] depth_end (%v) is above depth_start (%v)", i, k.DepthEnd, k.DepthStart))
		}
	}

	positive("day.duration", c.Day.Duration)
	if len(c.Equipment.RopeLengths) == 0 {
		errs = append(errs, errors.New("equipment.rope_lengths is empty"))
	}
	if len(c.Equipment.WinchSpeeds) == 0 {
		errs = append(errs, errors.New("equipment.winch_speeds is empty"))
	}

	return errors.Join(errs...)
}

// DT is the fixed simulation step in seconds.
func (w WorldConfig) DT() float64 {
	if w.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(w.TickRate)
}

// Surface is the Y of the water line.
func (w WorldConfig) Surface() float64 { return w.Top - w.WaterLevel }

// Bottom is the Y of the sea bed.
func (w WorldConfig) Bottom() float64 { return w.Surface() - w.WaterDepth }

func (w WorldConfig) Right() float64 { return w.Left + w.WaterWidth }

// StartY is where the magnet hangs before a drop, above the water line.
func (c *GameConfig) StartY() float64 { return c.World.Surface() + c.Magnet.StartOffset }

// UnderwaterY is the depth below which a dropped magnet becomes solid again.
func (c *GameConfig) UnderwaterY() float64 { return c.World.Surface() - c.Magnet.UnderwaterOffset }

// AnchorY is the fixed height of the winch the rope hangs from.
func (c *GameConfig) AnchorY() float64 { return c.World.Surface() + c.Rope.AnchorOffset }

func (r RopeConfig) Params() rope.Params {
	return rope.Params{
		BaseSegmentLength:    r.BaseSegmentLength,
		MinSegments:          r.MinSegments,
		MaxSegments:          r.MaxSegments,
		Damping:              r.Damping,
		AnchorDamping:        r.AnchorDamping,
		SagBias:              r.SagBias,
		IterationsPerSegment: r.IterationsPerSegment,
		MinIterations:        r.MinIterations,
		MaxIterations:        r.MaxIterations,
		AnchorStiffness:      r.AnchorStiffness,
		AntiFloatBlend:       r.AntiFloatBlend,
		Epsilon:              r.Epsilon,
	}
}
