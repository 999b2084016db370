package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraFollowsTargetMoved(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	cam := &component.Camera{Offset: mgl64.Vec3{0, 2, 0}, SmoothTime: 0.3, PixelsPerUnit: 32}
	require.NoError(t, ecs.Add(w, e, component.CameraComponent, cam))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{}))

	s := ecs.NewScheduler(NewCameraSystem(testDT))
	s.Update(w)
	assert.Equal(t, mgl64.Vec3{}, cam.Position, "no target yet")

	w.Events().Push(ecs.Event{Type: ecs.EventTargetMoved, Entity: e, Data: mgl64.Vec3{5, 0, 0}})
	s.Update(w)

	assert.Equal(t, mgl64.Vec3{5, 2, 0}, cam.Target)
	assert.Greater(t, cam.Position.X(), 0.0)
	assert.Less(t, cam.Position.X(), 5.0)

	for range 600 {
		s.Update(w)
	}
	assert.InDelta(t, 5, cam.Position.X(), 1e-3)
	assert.InDelta(t, 2, cam.Position.Y(), 1e-3)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, cam.Position, tr.Position)
}

func TestCameraSnapsOnRespawn(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	cam := &component.Camera{Offset: mgl64.Vec3{0, 2, 0}, SmoothTime: 0.3, Velocity: mgl64.Vec3{4, 4, 0}}
	require.NoError(t, ecs.Add(w, e, component.CameraComponent, cam))

	w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Data: mgl64.Vec3{-3, 1, 0}})
	ecs.NewScheduler(NewCameraSystem(testDT)).Update(w)

	assert.Equal(t, mgl64.Vec3{-3, 3, 0}, cam.Position)
	assert.Equal(t, mgl64.Vec3{}, cam.Velocity)
}
