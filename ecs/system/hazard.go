package system

import (
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/sirupsen/logrus"
)

// HazardSystem handles characters that fall below their kill plane: fall
// damage, a full health reset at zero, and a respawn with a fresh
// controller built from the same tuning.
type HazardSystem struct {
	logger *logrus.Logger
	log    *logrus.Entry
}

func NewHazardSystem(log *logrus.Logger) *HazardSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HazardSystem{logger: log, log: log.WithField("system", "hazard")}
}

func (hs *HazardSystem) Update(w *ecs.World) {
	var fallen []ecs.Entity
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.SpawnComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody, spawn *component.Spawn) {
		if body.Pos.Y() < spawn.KillY {
			fallen = append(fallen, e)
		}
	})
	for _, e := range fallen {
		hs.respawn(w, e)
	}
}

func (hs *HazardSystem) respawn(w *ecs.World, e ecs.Entity) {
	body, _ := ecs.Get(w, e, component.CharacterBodyComponent)
	spawn, _ := ecs.Get(w, e, component.SpawnComponent)

	fields := logrus.Fields{"entity": e, "y": body.Pos.Y()}
	if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Pool != nil {
		hp.Pool.TryTakeDamage(spawn.FallDamage)
		fields["health"] = hp.Pool.Current()
		if hp.Pool.Dead() {
			hs.log.WithFields(fields).Info("out of health, resetting")
			hp.Pool.Restore()
		}
	}

	body.Teleport(spawn.Position)
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		t.Position = spawn.Position
	}
	if loco, ok := ecs.Get(w, e, component.LocomotionComponent); ok {
		if err := AttachController(w, e, loco.Config, hs.logger); err != nil {
			hs.log.WithError(err).Error("rebuild controller")
		}
	}

	w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Entity: e, Data: spawn.Position})
	hs.log.WithFields(fields).Info("respawned")
}
