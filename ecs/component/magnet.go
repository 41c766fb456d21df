package component

// Magnet is the winch-side state of the magnet entity. Its position lives on
// the physics body.
type Magnet struct {
	StartX      float64
	StartY      float64
	UnderwaterY float64

	// RopeLength is how far below StartY the magnet may currently hang.
	RopeLength float64
	// PlayerRopeLength is the equipped maximum, applied on drop.
	PlayerRopeLength float64
	// WinchSpeed is how fast a rewind shortens RopeLength, in units/second.
	WinchSpeed float64

	Dropped     bool
	Rewinding   bool
	ShouldReset bool

	Electrocuted      bool
	ElectrocutedTimer float64
}

var MagnetComponent = NewComponent[Magnet]()
