package entity

import (
	"fmt"

	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/prefabs"
)

// BuildLevel creates one static box entity per solid in the level.
func BuildLevel(w *ecs.World, spec *prefabs.LevelSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: %w", prefabs.ErrInvalidSpec)
	}

	boxes := make([]ecs.Entity, 0, len(spec.Boxes))
	for i, b := range spec.Boxes {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
			Position: prefabs.Vec2Spec{X: b.X, Y: b.Y}.Vec3(),
		}); err != nil {
			return nil, fmt.Errorf("level: box %d: add transform: %w", i, err)
		}
		if err := ecs.Add(w, e, component.StaticBoxComponent, &component.StaticBox{
			Width:  b.Width,
			Height: b.Height,
		}); err != nil {
			return nil, fmt.Errorf("level: box %d: add static box: %w", i, err)
		}
		if b.Color.Color != nil {
			if err := ecs.Add(w, e, component.TintComponent, &component.Tint{Color: b.Color.Color}); err != nil {
				return nil, fmt.Errorf("level: box %d: add tint: %w", i, err)
			}
		}
		boxes = append(boxes, e)
	}

	return boxes, nil
}
