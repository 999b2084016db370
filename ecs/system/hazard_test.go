package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardRespawnsFallenCharacter(t *testing.T) {
	w := ecs.NewWorld()
	spawn := mgl64.Vec3{0, 1.5, 0}
	e, body := addCharacter(t, w, spawn)

	pool, err := health.New(&health.Config{MaxHealth: 3})
	require.NoError(t, err)
	require.NoError(t, ecs.Add(w, e, component.HealthComponent, &component.Health{Pool: pool}))
	require.NoError(t, ecs.Add(w, e, component.SpawnComponent, &component.Spawn{Position: spawn, KillY: -10, FallDamage: 2}))
	require.NoError(t, AttachController(w, e, testLocomotionConfig(), nullLogger()))

	loco, _ := ecs.Get(w, e, component.LocomotionComponent)
	before := loco.Controller

	hs := NewHazardSystem(nullLogger())
	hs.Update(w)
	assert.Empty(t, w.Events().Of(ecs.EventRespawned), "above the kill plane")

	body.Pos = mgl64.Vec3{3, -11, 0}
	hs.Update(w)

	assert.Equal(t, spawn, body.Position())
	assert.Equal(t, mgl64.Vec3{}, body.Velocity)
	assert.Equal(t, 1, pool.Current())

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, spawn, tr.Position)

	loco, _ = ecs.Get(w, e, component.LocomotionComponent)
	assert.NotSame(t, before, loco.Controller)
	assert.Equal(t, 0, before.OnTargetMoved().Len(), "old controller released")

	events := w.Events().Of(ecs.EventRespawned)
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0].Entity)
	assert.Equal(t, spawn, events[0].Data)

	// the second fall empties the pool, which is then refilled
	body.Pos = mgl64.Vec3{0, -20, 0}
	hs.Update(w)
	assert.Equal(t, 3, pool.Current())
	assert.False(t, pool.Dead())
}

func TestHazardWithoutHealthStillRespawns(t *testing.T) {
	w := ecs.NewWorld()
	e, body := addCharacter(t, w, mgl64.Vec3{0, -50, 0})
	require.NoError(t, ecs.Add(w, e, component.SpawnComponent, &component.Spawn{Position: mgl64.Vec3{1, 2, 0}, KillY: -10}))

	NewHazardSystem(nil).Update(w)

	assert.Equal(t, mgl64.Vec3{1, 2, 0}, body.Position())
	assert.Len(t, w.Events().Of(ecs.EventRespawned), 1)
}
