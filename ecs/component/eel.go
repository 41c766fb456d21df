package component

// Eel swims right at Speed and shocks a dropped magnet it touches.
type Eel struct {
	Speed        float64
	ShockSeconds float64
}

var EelComponent = NewComponent[Eel]()
