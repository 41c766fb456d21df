package component

// Transform is the world pose of an entity. World units are +Y up; the
// renderer flips Y when drawing.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
