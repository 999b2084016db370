package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachControllerRequiresBody(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	err := AttachController(w, e, testLocomotionConfig(), nullLogger())
	assert.ErrorIs(t, err, ErrNoCharacterBody)
	assert.False(t, ecs.Has(w, e, component.LocomotionComponent))
}

func TestAttachControllerRejectsBadConfig(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := addCharacter(t, w, mgl64.Vec3{})
	cfg := testLocomotionConfig()
	cfg.Jump = nil
	assert.Error(t, AttachController(w, e, cfg, nullLogger()))
	assert.False(t, ecs.Has(w, e, component.LocomotionComponent))
}

func TestLocomotionSystemConsumesInputEdges(t *testing.T) {
	w := ecs.NewWorld()
	e, body := addCharacter(t, w, mgl64.Vec3{})
	input := &component.Input{Move: mgl64.Vec2{1, 0}, JumpPressed: true, JumpReleased: true, SprintPressed: true}
	require.NoError(t, ecs.Add(w, e, component.InputComponent, input))
	require.NoError(t, AttachController(w, e, testLocomotionConfig(), nullLogger()))

	NewLocomotionSystem().Update(w)

	assert.False(t, input.JumpPressed)
	assert.False(t, input.JumpReleased)
	assert.False(t, input.SprintPressed)
	assert.Equal(t, mgl64.Vec2{1, 0}, input.Move, "held direction persists")

	loco, _ := ecs.Get(w, e, component.LocomotionComponent)
	snap := loco.Controller.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.True(t, snap.Sprinting)
	// sprint speed while not exhausted
	assert.InDelta(t, 10, body.Velocity.X(), 1e-9)
}

func TestPlayerStandsAndJumpsOnGround(t *testing.T) {
	w := ecs.NewWorld()
	addStaticBox(t, w, 0, 0, 40, 1)
	e, body := addCharacter(t, w, mgl64.Vec3{0, 1.5, 0})
	input := &component.Input{}
	require.NoError(t, ecs.Add(w, e, component.InputComponent, input))
	require.NoError(t, AttachController(w, e, testLocomotionConfig(), nullLogger()))

	s := ecs.NewScheduler(NewLocomotionSystem(), NewPhysicsSystem(testDT, nullLogger()))
	for range 30 {
		s.Update(w)
	}
	require.True(t, body.IsGrounded())
	assert.InDelta(t, 1.5, body.Position().Y(), 0.15)

	input.JumpPressed = true
	peak := body.Position().Y()
	for range 20 {
		s.Update(w)
		peak = max(peak, body.Position().Y())
	}
	assert.Greater(t, peak, 2.0)
	assert.False(t, body.IsGrounded())
}

func TestPauseCooldownsFreezesStaminaCooldown(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := addCharacter(t, w, mgl64.Vec3{})
	input := &component.Input{Move: mgl64.Vec2{1, 0}, SprintPressed: true}
	require.NoError(t, ecs.Add(w, e, component.InputComponent, input))
	require.NoError(t, AttachController(w, e, testLocomotionConfig(), nullLogger()))
	loco, _ := ecs.Get(w, e, component.LocomotionComponent)

	s := ecs.NewScheduler(NewLocomotionSystem())
	started := false
	for range 600 {
		s.Update(w)
		if loco.Controller.Snapshot().CoolingDown {
			started = true
			break
		}
	}
	require.True(t, started, "sprinting should exhaust stamina")
	input.Move = mgl64.Vec2{}

	PauseCooldowns(w, true)
	for range 300 {
		s.Update(w)
	}
	assert.True(t, loco.Controller.Snapshot().CoolingDown)

	PauseCooldowns(w, false)
	for range 300 {
		s.Update(w)
	}
	assert.False(t, loco.Controller.Snapshot().CoolingDown)
}
