package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/common"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
)

// FollowerSystem moves companions toward the latest target-moved position.
// A respawn teleports them along with the player.
type FollowerSystem struct {
	dt float64
}

func NewFollowerSystem(dt float64) *FollowerSystem {
	return &FollowerSystem{dt: dt}
}

func (fs *FollowerSystem) Update(w *ecs.World) {
	moved := w.Events().Of(ecs.EventTargetMoved)
	respawned := w.Events().Of(ecs.EventRespawned)

	ecs.ForEach2(w, component.FollowerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, f *component.Follower, t *component.Transform) {
		for _, evt := range moved {
			if pos, ok := evt.Data.(mgl64.Vec3); ok {
				f.Target = pos.Add(f.Offset)
				f.HasTarget = true
			}
		}
		for _, evt := range respawned {
			if pos, ok := evt.Data.(mgl64.Vec3); ok {
				f.Target = pos.Add(f.Offset)
				f.Velocity = mgl64.Vec3{}
				f.HasTarget = true
				t.Position = f.Target
			}
		}
		if f.HasTarget {
			t.Position = common.SmoothDamp(t.Position, f.Target, &f.Velocity, f.SmoothTime, fs.dt)
		}
	})
}
