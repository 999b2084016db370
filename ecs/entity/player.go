package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/ecs/system"
	"github.com/milk9111/scrollin/health"
	"github.com/milk9111/scrollin/prefabs"
	"github.com/sirupsen/logrus"
)

var defaultPlayerColor = color.RGBA{R: 79, G: 140, B: 255, A: 255}

// BuildPlayer creates the player at the level spawn with a locomotion
// controller driving its character body.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec, level *prefabs.LevelSpec, dt float64, log *logrus.Logger) (ecs.Entity, error) {
	if spec == nil || level == nil {
		return 0, fmt.Errorf("player: %w", prefabs.ErrInvalidSpec)
	}

	pool, err := health.New(&spec.Health)
	if err != nil {
		return 0, fmt.Errorf("player: health: %w", err)
	}

	spawn := level.Spawn.Vec3()
	player := w.CreateEntity()
	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{Position: spawn}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.CharacterBodyComponent, &component.CharacterBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Timestep: dt,
		Pos:      spawn,
	}); err != nil {
		return 0, fmt.Errorf("player: add character body: %w", err)
	}
	if err := ecs.Add(w, player, component.TintComponent, &component.Tint{Color: spec.Color.OrDefault(defaultPlayerColor)}); err != nil {
		return 0, fmt.Errorf("player: add tint: %w", err)
	}

	pool.OnChanged().Subscribe(func(c health.Change) {
		w.Events().Push(ecs.Event{Type: ecs.EventHealthChanged, Entity: player, Data: c})
	})
	if err := ecs.Add(w, player, component.HealthComponent, &component.Health{Pool: pool}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, player, component.SpawnComponent, &component.Spawn{
		Position:   spawn,
		KillY:      level.KillY,
		FallDamage: spec.FallDamage,
	}); err != nil {
		return 0, fmt.Errorf("player: add spawn: %w", err)
	}

	if err := system.AttachController(w, player, spec.LocomotionConfig(dt), log); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return player, nil
}

// RetunePlayer swaps the player's controller for one built from spec,
// keeping its position and health.
func RetunePlayer(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec, dt float64, log *logrus.Logger) error {
	if spec == nil {
		return fmt.Errorf("player: %w", prefabs.ErrInvalidSpec)
	}
	if body, ok := ecs.Get(w, player, component.CharacterBodyComponent); ok {
		body.Timestep = dt
	}
	if spawn, ok := ecs.Get(w, player, component.SpawnComponent); ok {
		spawn.FallDamage = spec.FallDamage
	}
	return system.AttachController(w, player, spec.LocomotionConfig(dt), log)
}
