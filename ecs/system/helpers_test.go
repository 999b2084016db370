package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/locomotion"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testDT = 1.0 / 60.0

func nullLogger() *logrus.Logger {
	log, _ := logtest.NewNullLogger()
	return log
}

func testLocomotionConfig() locomotion.Config {
	return locomotion.Config{
		Jump: &locomotion.JumpConfig{
			JumpImpulse:       14,
			DoubleJumpImpulse: 10,
			TerminalVelocity:  -30,
			ApexThreshold:     10,
			DoubleJumpEnabled: true,
			FallMultiplier:    3,
		},
		Gravity:         &locomotion.GravityConfig{GravityForce: -15, TerminalVelocity: -30, GroundedGravity: -2},
		Movement:        &locomotion.MovementConfig{NormalSpeed: 6, SprintSpeed: 10, TiredSpeed: 3},
		Stamina:         &locomotion.StaminaConfig{MaxStamina: 5, RecoveryRate: 1, DrainRate: 2, ExhaustionThreshold: 0.5},
		Timestep:        testDT,
		StaminaCooldown: 2,
	}
}

func addStaticBox(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: mgl64.Vec3{x, y, 0}}))
	require.NoError(t, ecs.Add(w, e, component.StaticBoxComponent, &component.StaticBox{Width: width, Height: height}))
	return e
}

func addCharacter(t *testing.T, w *ecs.World, pos mgl64.Vec3) (ecs.Entity, *component.CharacterBody) {
	t.Helper()
	e := w.CreateEntity()
	body := &component.CharacterBody{Width: 1, Height: 2, Timestep: testDT, Pos: pos}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.CharacterBodyComponent, body))
	return e, body
}
