package component

// Camera follows a target vertically, clamped to [MinY, MaxY]. X and Y are
// the world point shown at the centre of the screen.
type Camera struct {
	X          float64
	Y          float64
	Zoom       float64
	Smoothness float64
	MinY       float64
	MaxY       float64
}

var CameraComponent = NewComponent[Camera]()
