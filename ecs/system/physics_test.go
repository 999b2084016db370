package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsCharacterLandsOnBox(t *testing.T) {
	w := ecs.NewWorld()
	addStaticBox(t, w, 0, 0, 20, 1)
	e, body := addCharacter(t, w, mgl64.Vec3{0, 2, 0})

	ps := NewPhysicsSystem(testDT, nullLogger())
	for range 60 {
		body.Move(mgl64.Vec3{0, -0.1, 0})
		ps.Update(w)
	}

	assert.True(t, body.IsGrounded())
	// box top is 0.5 and the body is 2 tall
	assert.InDelta(t, 1.5, body.Position().Y(), 0.15)

	tr, ok := ecs.Get(w, e, component.TransformComponent)
	require.True(t, ok)
	assert.Equal(t, body.Position(), tr.Position)
}

func TestPhysicsMovesFreeBodyByDisplacement(t *testing.T) {
	w := ecs.NewWorld()
	_, body := addCharacter(t, w, mgl64.Vec3{})

	ps := NewPhysicsSystem(testDT, nullLogger())
	for range 10 {
		body.Move(mgl64.Vec3{0.05, 0, 0})
		ps.Update(w)
	}

	assert.False(t, body.IsGrounded())
	assert.InDelta(t, 0.5, body.Position().X(), 1e-9)
	assert.InDelta(t, 0, body.Position().Y(), 1e-9)
}

func TestPhysicsWallBlocksHorizontalMove(t *testing.T) {
	w := ecs.NewWorld()
	addStaticBox(t, w, 3, 0, 1, 10)
	_, body := addCharacter(t, w, mgl64.Vec3{})

	ps := NewPhysicsSystem(testDT, nullLogger())
	for range 120 {
		body.Move(mgl64.Vec3{0.1, 0, 0})
		ps.Update(w)
	}

	// wall face at 2.5, half width 0.5
	assert.InDelta(t, 2, body.Position().X(), 0.15)
	assert.False(t, body.IsGrounded())
}

func TestPhysicsTeleportAndCleanup(t *testing.T) {
	w := ecs.NewWorld()
	ground := addStaticBox(t, w, 0, 0, 20, 1)
	e, body := addCharacter(t, w, mgl64.Vec3{0, 5, 0})

	ps := NewPhysicsSystem(testDT, nullLogger())
	ps.Update(w)
	require.NotNil(t, body.Body)
	assert.Len(t, ps.bodies, 2)

	body.Teleport(mgl64.Vec3{4, 8, 0})
	ps.Update(w)
	assert.InDelta(t, 4, body.Position().X(), 1e-9)
	assert.InDelta(t, 8, body.Position().Y(), 1e-9)

	w.DestroyEntity(e)
	w.DestroyEntity(ground)
	ps.Update(w)
	assert.Empty(t, ps.bodies)
	assert.Empty(t, ps.characterShapes)
}
