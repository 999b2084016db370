package system

import (
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
)

// LocomotionSystem forwards input edges to each controller and ticks it.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (ls *LocomotionSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		ctrl := loco.Controller
		if ctrl == nil {
			return
		}
		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			ctrl.SetMoveDirection(input.Move)
			if input.JumpPressed {
				ctrl.Jump(true)
			}
			if input.JumpReleased {
				ctrl.Jump(false)
			}
			if input.SprintPressed {
				ctrl.Sprint(true)
			}
			input.JumpPressed = false
			input.JumpReleased = false
			input.SprintPressed = false
		}
		ctrl.Tick()
	})
}
