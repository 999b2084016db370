package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/prefabs"
)

const defaultSmoothTime = 0.25

// BuildCamera creates the follow camera already centered on target.
func BuildCamera(w *ecs.World, spec *prefabs.CameraSpec, target mgl64.Vec3) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: %w", prefabs.ErrInvalidSpec)
	}

	smooth := spec.SmoothTime
	if smooth <= 0 {
		smooth = defaultSmoothTime
	}
	offset := spec.Offset.Vec3()
	start := target.Add(offset)

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{Position: start}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		Offset:        offset,
		SmoothTime:    smooth,
		PixelsPerUnit: spec.PixelsPerUnit,
		Target:        start,
		Position:      start,
		HasTarget:     true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	return camera, nil
}
