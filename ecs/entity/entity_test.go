package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/health"
	"github.com/milk9111/scrollin/prefabs"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDT = 1.0 / 60.0

func loadSpecs(t *testing.T) (*prefabs.PlayerSpec, *prefabs.LevelSpec, *prefabs.CameraSpec) {
	t.Helper()
	player, err := prefabs.LoadPlayerSpec("player.yaml")
	require.NoError(t, err)
	level, err := prefabs.LoadLevelSpec("level_1.yaml")
	require.NoError(t, err)
	camera, err := prefabs.LoadCameraSpec("camera.yaml")
	require.NoError(t, err)
	return player, level, camera
}

func TestBuildLevel(t *testing.T) {
	_, level, _ := loadSpecs(t)
	w := ecs.NewWorld()

	boxes, err := BuildLevel(w, level)
	require.NoError(t, err)
	require.Len(t, boxes, len(level.Boxes))

	box, ok := ecs.Get(w, boxes[0], component.StaticBoxComponent)
	require.True(t, ok)
	assert.Equal(t, level.Boxes[0].Width, box.Width)
	tr, _ := ecs.Get(w, boxes[0], component.TransformComponent)
	assert.Equal(t, mgl64.Vec3{level.Boxes[0].X, level.Boxes[0].Y, 0}, tr.Position)
	assert.True(t, ecs.Has(w, boxes[0], component.TintComponent))

	_, err = BuildLevel(w, nil)
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
}

func TestBuildPlayer(t *testing.T) {
	player, level, _ := loadSpecs(t)
	w := ecs.NewWorld()
	log, _ := logtest.NewNullLogger()

	e, err := BuildPlayer(w, player, level, testDT, log)
	require.NoError(t, err)

	for name, has := range map[string]bool{
		"tag":       ecs.Has(w, e, component.PlayerTagComponent),
		"input":     ecs.Has(w, e, component.InputComponent),
		"transform": ecs.Has(w, e, component.TransformComponent),
		"health":    ecs.Has(w, e, component.HealthComponent),
		"spawn":     ecs.Has(w, e, component.SpawnComponent),
		"loco":      ecs.Has(w, e, component.LocomotionComponent),
	} {
		assert.True(t, has, name)
	}

	body, _ := ecs.Get(w, e, component.CharacterBodyComponent)
	assert.Equal(t, level.Spawn.Vec3(), body.Position())
	assert.Equal(t, testDT, body.Timestep)

	spawn, _ := ecs.Get(w, e, component.SpawnComponent)
	assert.Equal(t, level.KillY, spawn.KillY)
	assert.Equal(t, player.FallDamage, spawn.FallDamage)

	hp, _ := ecs.Get(w, e, component.HealthComponent)
	hp.Pool.TryTakeDamage(1)
	events := w.Events().Of(ecs.EventHealthChanged)
	require.Len(t, events, 1)
	assert.Equal(t, health.Change{Current: player.Health.MaxHealth - 1, Max: player.Health.MaxHealth, Delta: -1}, events[0].Data)

	loco, _ := ecs.Get(w, e, component.LocomotionComponent)
	assert.Equal(t, testDT, loco.Controller.Timestep())
}

func TestRetunePlayerSwapsController(t *testing.T) {
	player, level, _ := loadSpecs(t)
	w := ecs.NewWorld()
	log, _ := logtest.NewNullLogger()
	e, err := BuildPlayer(w, player, level, testDT, log)
	require.NoError(t, err)

	loco, _ := ecs.Get(w, e, component.LocomotionComponent)
	before := loco.Controller

	player.FallDamage = 2
	require.NoError(t, RetunePlayer(w, e, player, testDT, log))

	loco, _ = ecs.Get(w, e, component.LocomotionComponent)
	assert.NotSame(t, before, loco.Controller)
	spawn, _ := ecs.Get(w, e, component.SpawnComponent)
	assert.Equal(t, 2, spawn.FallDamage)
}

func TestBuildCameraAndStaminaBar(t *testing.T) {
	player, level, camera := loadSpecs(t)
	w := ecs.NewWorld()

	target := level.Spawn.Vec3()
	camEntity, err := BuildCamera(w, camera, target)
	require.NoError(t, err)
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
	assert.Equal(t, target.Add(camera.Offset.Vec3()), cam.Position)
	assert.Equal(t, camera.PixelsPerUnit, cam.PixelsPerUnit)

	barEntity, err := BuildStaminaBar(w, &player.HUD.StaminaBar)
	require.NoError(t, err)
	bar, _ := ecs.Get(w, barEntity, component.StaminaBarComponent)
	assert.Equal(t, 1.0, bar.Fill)
	assert.True(t, bar.Visible)
	require.NotNil(t, bar.Blink)
	assert.Equal(t, player.HUD.StaminaBar.BlinkInterval, bar.Blink.Duration())
}

func TestBuildCompanion(t *testing.T) {
	player, level, _ := loadSpecs(t)
	require.NotNil(t, player.Companion)
	w := ecs.NewWorld()

	target := level.Spawn.Vec3()
	e, err := BuildCompanion(w, player.Companion, target)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, target.Add(player.Companion.Offset.Vec3()), tr.Position)
	f, _ := ecs.Get(w, e, component.FollowerComponent)
	assert.Equal(t, player.Companion.Size, f.Size)
	assert.Equal(t, player.Companion.SmoothTime, f.SmoothTime)

	_, err = BuildCompanion(w, nil, target)
	assert.ErrorIs(t, err, prefabs.ErrInvalidSpec)
}
