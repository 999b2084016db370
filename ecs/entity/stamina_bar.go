package entity

import (
	"fmt"

	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/ecs/system"
	"github.com/milk9111/scrollin/prefabs"
)

const defaultBlinkInterval = 0.15

// BuildStaminaBar creates the HUD bar, full and visible.
func BuildStaminaBar(w *ecs.World, spec *prefabs.StaminaBarSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("stamina bar: %w", prefabs.ErrInvalidSpec)
	}

	interval := spec.BlinkInterval
	if interval <= 0 {
		interval = defaultBlinkInterval
	}
	bar := &component.StaminaBar{
		X:         spec.X,
		Y:         spec.Y,
		Width:     spec.Width,
		Height:    spec.Height,
		FillColor: spec.FillColor.Color,
		BackColor: spec.BackColor.Color,
		Fill:      1,
		Visible:   true,
	}
	system.InitBlink(bar, interval)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.StaminaBarComponent, bar); err != nil {
		return 0, fmt.Errorf("stamina bar: add component: %w", err)
	}
	return e, nil
}
