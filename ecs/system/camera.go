package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/common"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
)

// CameraSystem eases the camera toward the last position the player
// reported through target-moved events.
type CameraSystem struct {
	dt float64
}

func NewCameraSystem(dt float64) *CameraSystem {
	return &CameraSystem{dt: dt}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)

	for _, evt := range w.Events().Of(ecs.EventTargetMoved) {
		if pos, ok := evt.Data.(mgl64.Vec3); ok {
			cam.Target = pos.Add(cam.Offset)
			cam.HasTarget = true
		}
	}
	for _, evt := range w.Events().Of(ecs.EventRespawned) {
		if pos, ok := evt.Data.(mgl64.Vec3); ok {
			cam.Target = pos.Add(cam.Offset)
			cam.Position = cam.Target
			cam.Velocity = mgl64.Vec3{}
			cam.HasTarget = true
		}
	}

	if cam.HasTarget {
		cam.Position = common.SmoothDamp(cam.Position, cam.Target, &cam.Velocity, cam.SmoothTime, cs.dt)
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		t.Position = cam.Position
	}
}
