package component

// Wheel spins with the magnet's vertical speed while the winch pays out or
// reels in.
type Wheel struct {
	Threshold float64
	Factor    float64
}

var WheelComponent = NewComponent[Wheel]()

// Rocking sways an entity around its base rotation.
type Rocking struct {
	Speed     float64
	Amplitude float64
	Time      float64
}

var RockingComponent = NewComponent[Rocking]()
