package locomotion

import "math"

// Gravity integrates vertical velocity under constant acceleration.
//
// CalculateGravity must be called exactly once per fixed physics tick; the
// integration is only frame-rate independent because dt never changes.
type Gravity struct {
	cfg      GravityConfig
	dt       float64
	velocity float64
}

// NewGravity copies cfg and fails fast on missing or inconsistent tuning.
func NewGravity(cfg *GravityConfig, dt float64) (*Gravity, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkTimestep(dt); err != nil {
		return nil, err
	}
	return &Gravity{cfg: *cfg, dt: dt}, nil
}

// CalculateGravity advances one tick and returns the new vertical velocity.
// On the ground the velocity is pinned to the grounded resting value so
// contact checks keep reporting ground on slopes and steps.
func (g *Gravity) CalculateGravity(isGrounded bool) float64 {
	if isGrounded {
		g.velocity = g.cfg.GroundedGravity
		return g.velocity
	}
	g.velocity += g.cfg.GravityForce * g.dt
	g.velocity = math.Max(g.velocity, g.cfg.TerminalVelocity)
	return g.velocity
}

// Velocity returns the velocity produced by the last tick.
func (g *Gravity) Velocity() float64 { return g.velocity }
