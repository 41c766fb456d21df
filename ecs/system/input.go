package system

import (
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// InputState is one frame of sampled controls.
type InputState struct {
	MoveX   float64
	MoveY   float64
	Drop    bool
	Rewind  bool
	Upgrade bool
	Debug   bool
}

// InputReader samples the input devices once per frame.
type InputReader interface {
	Read() InputState
}

type InputSystem struct {
	reader InputReader
}

func NewInputSystem(reader InputReader) *InputSystem {
	return &InputSystem{reader: reader}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.reader == nil {
		return
	}

	state := i.reader.Read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = clampUnit(state.MoveX)
		input.MoveY = clampUnit(state.MoveY)
		input.DropPressed = state.Drop
		input.RewindPressed = state.Rewind
		input.UpgradePressed = state.Upgrade
		input.DebugPressed = state.Debug
	})
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
