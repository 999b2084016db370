package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/event"
	"github.com/milk9111/scrollin/locomotion"
	"github.com/sirupsen/logrus"
)

var ErrNoCharacterBody = errors.New("system: entity has no character body")

// AttachController gives e a fresh locomotion controller driving its
// character body, replacing and releasing any previous one. Controller
// notifications are forwarded into the world event queue.
func AttachController(w *ecs.World, e ecs.Entity, cfg locomotion.Config, log *logrus.Logger) error {
	body, ok := ecs.Get(w, e, component.CharacterBodyComponent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCharacterBody, e)
	}
	ctrl, err := locomotion.NewController(cfg, body, log)
	if err != nil {
		return fmt.Errorf("system: attach controller: %w", err)
	}
	if old, ok := ecs.Get(w, e, component.LocomotionComponent); ok {
		old.Release()
	}

	q := w.Events()
	push := func(typ ecs.EventType, data any) {
		q.Push(ecs.Event{Type: typ, Entity: e, Data: data})
	}
	loco := &component.Locomotion{
		Controller: ctrl,
		Config:     cfg,
		Subs: []event.Subscription{
			ctrl.OnJumpStateChanged().Subscribe(func(tr locomotion.JumpTransition) {
				push(ecs.EventJumpStateChanged, tr)
			}),
			ctrl.OnStaminaChanged().Subscribe(func(fraction float64) {
				push(ecs.EventStaminaChanged, fraction)
			}),
			ctrl.OnCooldownStarted().Subscribe(func(struct{}) {
				push(ecs.EventCooldownStarted, nil)
			}),
			ctrl.OnCooldownCompleted().Subscribe(func(completed bool) {
				push(ecs.EventCooldownCompleted, completed)
			}),
			ctrl.OnTargetMoved().Subscribe(func(pos mgl64.Vec3) {
				push(ecs.EventTargetMoved, pos)
			}),
		},
	}
	return ecs.Add(w, e, component.LocomotionComponent, loco)
}

// PauseCooldowns freezes or resumes every stamina cooldown in the world.
func PauseCooldowns(w *ecs.World, paused bool) {
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion) {
		if loco.Controller == nil {
			return
		}
		if paused {
			loco.Controller.PauseCooldown()
		} else {
			loco.Controller.ResumeCooldown()
		}
	})
}
