package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Tuning values in these tests are chosen so that every step is exact in
// binary floating point.
const testDT = 0.25

func testGravityConfig() *GravityConfig {
	return &GravityConfig{GravityForce: -20, TerminalVelocity: -40, GroundedGravity: -1}
}

func testJumpConfig() *JumpConfig {
	return &JumpConfig{
		JumpImpulse:         10,
		DoubleJumpImpulse:   8,
		TerminalVelocity:    -40,
		ApexThreshold:       0,
		DoubleJumpEnabled:   true,
		FallMultiplier:      3,
		LandingRecoveryTime: 0.5,
	}
}

func testMovementConfig() *MovementConfig {
	return &MovementConfig{NormalSpeed: 4, SprintSpeed: 8, TiredSpeed: 2}
}

func testStaminaConfig() *StaminaConfig {
	return &StaminaConfig{MaxStamina: 10, RecoveryRate: 4, DrainRate: 10, ExhaustionThreshold: 0.5}
}

func testConfig() Config {
	return Config{
		Jump:            testJumpConfig(),
		Gravity:         testGravityConfig(),
		Movement:        testMovementConfig(),
		Stamina:         testStaminaConfig(),
		Timestep:        testDT,
		StaminaCooldown: 1,
	}
}

// fakeMover integrates displacements and never lets the body sink below
// y=0 while grounded.
type fakeMover struct {
	pos      mgl64.Vec3
	grounded bool
	moves    []mgl64.Vec3
}

func (m *fakeMover) Move(d mgl64.Vec3) {
	m.moves = append(m.moves, d)
	m.pos = m.pos.Add(d)
	if m.grounded && m.pos.Y() < 0 {
		m.pos[1] = 0
	}
}

func (m *fakeMover) IsGrounded() bool     { return m.grounded }
func (m *fakeMover) Position() mgl64.Vec3 { return m.pos }
