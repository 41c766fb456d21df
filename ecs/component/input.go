package component

// Input stores per-frame input state. MoveX/MoveY are in [-1, 1] with +Y up.
type Input struct {
	MoveX          float64
	MoveY          float64
	DropPressed    bool
	RewindPressed  bool
	UpgradePressed bool
	DebugPressed   bool
}

var InputComponent = NewComponent[Input]()
