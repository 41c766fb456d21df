package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Width              float64    `yaml:"width"`
	Height             float64    `yaml:"height"`
	Color              *YAMLColor `yaml:"color"`
	OriginX            float64    `yaml:"origin_x"`
	OriginY            float64    `yaml:"origin_y"`
	CenterOriginIfZero bool       `yaml:"center_origin_if_zero"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	Sensor        bool    `yaml:"sensor"`
	LinearDamping float64 `yaml:"linear_damping"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type PlayerMovementComponentSpec struct {
	MoveForce float64 `yaml:"move_force"`
}

type RopeComponentSpec struct {
	Thickness float64    `yaml:"thickness"`
	Color     *YAMLColor `yaml:"color"`
	Layer     int        `yaml:"layer"`
}

type WheelComponentSpec struct {
	Threshold float64 `yaml:"threshold"`
	Factor    float64 `yaml:"factor"`
}

type RockingComponentSpec struct {
	Speed     float64 `yaml:"speed"`
	Amplitude float64 `yaml:"amplitude"`
}

type EelComponentSpec struct {
	Speed        float64 `yaml:"speed"`
	ShockSeconds float64 `yaml:"shock_seconds"`
}

type LootComponentSpec struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}
