package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/magnetfisher/ecs/system"
)

const stickDeadzone = 0.2

// deviceInput reads the keyboard and the first gamepad.
type deviceInput struct{}

func (deviceInput) Read() system.InputState {
	var s system.InputState

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.MoveY -= 1
	}
	s.Drop = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.Rewind = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.Upgrade = inpututil.IsKeyJustPressed(ebiten.KeyU)
	s.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			s.MoveX = lx
		}
		// stick Y is down-positive
		if math.Abs(ly) > stickDeadzone {
			s.MoveY = -ly
		}

		s.Drop = s.Drop || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.Rewind = s.Rewind || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		s.Upgrade = s.Upgrade || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		s.Debug = s.Debug || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	return s
}
