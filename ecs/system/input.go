package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)
	sprintPressed := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)

	var move mgl64.Vec2
	if left {
		move[0] -= 1
	}
	if right {
		move[0] += 1
	}
	if up {
		move[1] += 1
	}
	if down {
		move[1] -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// stick y points down
			move = mgl64.Vec2{lx, -ly}
		}

		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		sprintPressed = sprintPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftStick)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Move = move
		// edges accumulate until the locomotion system consumes them
		input.JumpPressed = input.JumpPressed || jumpPressed
		input.JumpReleased = input.JumpReleased || jumpReleased
		input.SprintPressed = input.SprintPressed || sprintPressed
	})
}
