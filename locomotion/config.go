package locomotion

import (
	"errors"
	"fmt"
)

var (
	ErrNilConfig     = errors.New("locomotion: config is nil")
	ErrInvalidConfig = errors.New("locomotion: invalid config")
	ErrNilMover      = errors.New("locomotion: mover is nil")
)

// DefaultTimestep is the fixed physics step used when Config.Timestep is zero.
// It matches the host's 60 ticks per second update rate.
const DefaultTimestep = 1.0 / 60.0

const (
	defaultFallMultiplier  = 3.0
	defaultStaminaCooldown = 3.0
)

// JumpConfig is per-character jump tuning.
type JumpConfig struct {
	JumpImpulse         float64 `yaml:"jump_impulse"`
	DoubleJumpImpulse   float64 `yaml:"double_jump_impulse"`
	TerminalVelocity    float64 `yaml:"terminal_velocity"`
	ApexThreshold       float64 `yaml:"apex_threshold"`
	DoubleJumpEnabled   bool    `yaml:"double_jump_enabled"`
	FallMultiplier      float64 `yaml:"fall_multiplier"`
	LandingRecoveryTime float64 `yaml:"landing_recovery_time"`
}

func (c JumpConfig) validate() error {
	if c.JumpImpulse <= 0 {
		return fmt.Errorf("%w: jump_impulse must be positive, got %g", ErrInvalidConfig, c.JumpImpulse)
	}
	if c.DoubleJumpEnabled && c.DoubleJumpImpulse <= 0 {
		return fmt.Errorf("%w: double_jump_impulse must be positive, got %g", ErrInvalidConfig, c.DoubleJumpImpulse)
	}
	if c.TerminalVelocity >= 0 {
		return fmt.Errorf("%w: terminal_velocity must be negative, got %g", ErrInvalidConfig, c.TerminalVelocity)
	}
	if c.FallMultiplier < 0 {
		return fmt.Errorf("%w: fall_multiplier must not be negative, got %g", ErrInvalidConfig, c.FallMultiplier)
	}
	if c.LandingRecoveryTime < 0 {
		return fmt.Errorf("%w: landing_recovery_time must not be negative, got %g", ErrInvalidConfig, c.LandingRecoveryTime)
	}
	return nil
}

// GravityConfig describes vertical acceleration. Velocities are y-up, so
// GravityForce, TerminalVelocity and GroundedGravity are all negative.
type GravityConfig struct {
	GravityForce     float64 `yaml:"gravity_force"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	GroundedGravity  float64 `yaml:"grounded_gravity"`
}

func (c GravityConfig) validate() error {
	if c.GravityForce >= 0 {
		return fmt.Errorf("%w: gravity_force must be negative, got %g", ErrInvalidConfig, c.GravityForce)
	}
	if c.TerminalVelocity >= 0 {
		return fmt.Errorf("%w: terminal_velocity must be negative, got %g", ErrInvalidConfig, c.TerminalVelocity)
	}
	if c.GroundedGravity > 0 {
		return fmt.Errorf("%w: grounded_gravity must not be positive, got %g", ErrInvalidConfig, c.GroundedGravity)
	}
	return nil
}

// MovementConfig holds the three horizontal speed tiers.
type MovementConfig struct {
	NormalSpeed float64 `yaml:"normal_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	TiredSpeed  float64 `yaml:"tired_speed"`
}

func (c MovementConfig) validate() error {
	if c.NormalSpeed < 0 || c.SprintSpeed < 0 || c.TiredSpeed < 0 {
		return fmt.Errorf("%w: speeds must not be negative (normal=%g sprint=%g tired=%g)",
			ErrInvalidConfig, c.NormalSpeed, c.SprintSpeed, c.TiredSpeed)
	}
	return nil
}

// StaminaConfig tunes the sprint resource pool.
type StaminaConfig struct {
	MaxStamina          float64 `yaml:"max_stamina"`
	RecoveryRate        float64 `yaml:"recovery_rate"`
	DrainRate           float64 `yaml:"drain_rate"`
	ExhaustionThreshold float64 `yaml:"exhaustion_threshold"`
}

func (c StaminaConfig) validate() error {
	if c.MaxStamina <= 0 {
		return fmt.Errorf("%w: max_stamina must be positive, got %g", ErrInvalidConfig, c.MaxStamina)
	}
	if c.RecoveryRate < 0 || c.DrainRate < 0 {
		return fmt.Errorf("%w: rates must not be negative (recovery=%g drain=%g)", ErrInvalidConfig, c.RecoveryRate, c.DrainRate)
	}
	if c.ExhaustionThreshold < 0 || c.ExhaustionThreshold > 1 {
		return fmt.Errorf("%w: exhaustion_threshold must be within [0,1], got %g", ErrInvalidConfig, c.ExhaustionThreshold)
	}
	return nil
}

// Config bundles everything a Controller needs. The tuning records are
// copied at construction, so later edits to them do not reach a running
// controller.
type Config struct {
	Jump     *JumpConfig
	Gravity  *GravityConfig
	Movement *MovementConfig
	Stamina  *StaminaConfig

	// Timestep is the fixed tick length in seconds.
	Timestep float64
	// StaminaCooldown is how long stamina stays locked after exhaustion.
	StaminaCooldown float64
}

func (c Config) timestep() (float64, error) {
	if c.Timestep == 0 {
		return DefaultTimestep, nil
	}
	if c.Timestep < 0 {
		return 0, fmt.Errorf("%w: timestep must be positive, got %g", ErrInvalidConfig, c.Timestep)
	}
	return c.Timestep, nil
}

func (c Config) staminaCooldown() float64 {
	if c.StaminaCooldown <= 0 {
		return defaultStaminaCooldown
	}
	return c.StaminaCooldown
}

func checkTimestep(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: timestep must be positive, got %g", ErrInvalidConfig, dt)
	}
	return nil
}
