package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/prefabs"
)

var defaultCompanionColor = color.RGBA{R: 249, G: 226, B: 175, A: 255}

// BuildCompanion creates the follower already in place beside target.
func BuildCompanion(w *ecs.World, spec *prefabs.CompanionSpec, target mgl64.Vec3) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("companion: %w", prefabs.ErrInvalidSpec)
	}

	smooth := spec.SmoothTime
	if smooth <= 0 {
		smooth = defaultSmoothTime
	}
	offset := spec.Offset.Vec3()
	start := target.Add(offset)

	companion := w.CreateEntity()
	if err := ecs.Add(w, companion, component.TransformComponent, &component.Transform{Position: start}); err != nil {
		return 0, fmt.Errorf("companion: add transform: %w", err)
	}
	if err := ecs.Add(w, companion, component.FollowerComponent, &component.Follower{
		Offset:     offset,
		SmoothTime: smooth,
		Size:       spec.Size,
		Target:     start,
		HasTarget:  true,
	}); err != nil {
		return 0, fmt.Errorf("companion: add follower: %w", err)
	}
	if err := ecs.Add(w, companion, component.TintComponent, &component.Tint{Color: spec.Color.OrDefault(defaultCompanionColor)}); err != nil {
		return 0, fmt.Errorf("companion: add tint: %w", err)
	}

	return companion, nil
}
