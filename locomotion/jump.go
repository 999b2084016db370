package locomotion

import (
	"math"

	"github.com/milk9111/scrollin/event"
)

// JumpState is a phase of the jump cycle.
type JumpState int

const (
	Grounded JumpState = iota
	JumpInitiation
	Rising
	Apex
	Falling
	Landing
	DoubleJumping
)

var jumpStateNames = [...]string{
	Grounded:       "grounded",
	JumpInitiation: "jump_initiation",
	Rising:         "rising",
	Apex:           "apex",
	Falling:        "falling",
	Landing:        "landing",
	DoubleJumping:  "double_jumping",
}

func (s JumpState) String() string {
	if s < 0 || int(s) >= len(jumpStateNames) {
		return "unknown"
	}
	return jumpStateNames[s]
}

// apexEntryOffset lowers the Rising->Apex test below the configured apex
// threshold. Apex->Falling still uses the threshold itself.
const apexEntryOffset = 2.0

// JumpTransition is published whenever the jump state changes.
type JumpTransition struct {
	From JumpState
	To   JumpState
}

// JumpMachine drives vertical velocity through the jump cycle.
//
// Call CalculateJumpVelocity once per fixed tick and StartJump at most once
// between ticks; for a fixed dt and input sequence the trajectory is
// deterministic.
type JumpMachine struct {
	cfg             JumpConfig
	gravity         float64
	groundedGravity float64
	dt              float64

	state           JumpState
	velocity        float64
	landingTimer    float64
	buttonHeld      bool
	hasDoubleJumped bool
	// grounded is the ground flag from the most recent tick. A freshly
	// spawned character stands on the ground.
	grounded bool

	onStateChanged *event.Signal[JumpTransition]
}

// NewJumpMachine builds a machine in the Grounded state.
func NewJumpMachine(jump *JumpConfig, gravity *GravityConfig, dt float64) (*JumpMachine, error) {
	if jump == nil || gravity == nil {
		return nil, ErrNilConfig
	}
	if err := jump.validate(); err != nil {
		return nil, err
	}
	if err := gravity.validate(); err != nil {
		return nil, err
	}
	if err := checkTimestep(dt); err != nil {
		return nil, err
	}
	cfg := *jump
	if cfg.FallMultiplier == 0 {
		cfg.FallMultiplier = defaultFallMultiplier
	}
	return &JumpMachine{
		cfg:             cfg,
		gravity:         gravity.GravityForce,
		groundedGravity: gravity.GroundedGravity,
		dt:              dt,
		state:           Grounded,
		grounded:        true,
		onStateChanged:  event.NewSignal[JumpTransition](),
	}, nil
}

// OnStateChanged publishes every state change, including those caused by
// StartJump.
func (m *JumpMachine) OnStateChanged() *event.Signal[JumpTransition] { return m.onStateChanged }

func (m *JumpMachine) State() JumpState      { return m.state }
func (m *JumpMachine) Velocity() float64     { return m.velocity }
func (m *JumpMachine) HasDoubleJumped() bool { return m.hasDoubleJumped }
func (m *JumpMachine) ButtonHeld() bool      { return m.buttonHeld }
func (m *JumpMachine) LandingTimer() float64 { return m.landingTimer }

// StartJump handles a jump button edge. A press while standing in
// Grounded or Landing starts a jump; any other press counts as airborne
// and starts the double jump if it is enabled and unused. A release only
// clears the held flag.
func (m *JumpMachine) StartJump(pressed bool) {
	if !pressed {
		m.buttonHeld = false
		return
	}
	if m.grounded && (m.state == Grounded || m.state == Landing) {
		// a press during Landing cuts the recovery short
		m.setState(Grounded)
		m.buttonHeld = true
		m.setState(JumpInitiation)
		return
	}
	if m.cfg.DoubleJumpEnabled && !m.hasDoubleJumped {
		m.hasDoubleJumped = true
		m.buttonHeld = true
		m.setState(DoubleJumping)
	}
}

// CalculateJumpVelocity applies this tick's physics for the current state,
// then picks the state for the next tick. It returns the vertical
// displacement for the tick (velocity * dt).
func (m *JumpMachine) CalculateJumpVelocity(isGrounded bool) float64 {
	m.grounded = isGrounded
	m.applyPhysics()
	m.advance()
	return m.velocity * m.dt
}

func (m *JumpMachine) applyPhysics() {
	switch m.state {
	case Grounded:
		m.velocity = m.groundedGravity
		m.hasDoubleJumped = false
	case JumpInitiation:
		m.velocity = m.cfg.JumpImpulse
	case DoubleJumping:
		m.velocity = m.cfg.DoubleJumpImpulse
	case Rising, Apex:
		m.velocity += m.gravity * m.dt
	case Falling:
		m.velocity += m.gravity * m.cfg.FallMultiplier * m.dt
	case Landing:
		m.velocity = 0
		m.landingTimer -= m.dt
	}
	m.velocity = math.Max(m.velocity, m.cfg.TerminalVelocity)
}

func (m *JumpMachine) advance() {
	switch m.state {
	case JumpInitiation:
		if m.velocity > 0 {
			m.setState(Rising)
		}
	case DoubleJumping:
		m.setState(Rising)
	case Rising:
		if m.velocity <= m.cfg.ApexThreshold-apexEntryOffset {
			m.setState(Apex)
		}
	case Apex:
		if m.velocity < m.cfg.ApexThreshold {
			m.setState(Falling)
		}
	case Falling:
		if m.grounded {
			m.landingTimer = m.cfg.LandingRecoveryTime
			m.setState(Landing)
		}
	case Landing:
		m.setState(Grounded)
	}
}

func (m *JumpMachine) setState(next JumpState) {
	if next == m.state {
		return
	}
	prev := m.state
	m.state = next
	if next == Grounded {
		m.hasDoubleJumped = false
		m.landingTimer = 0
	}
	m.onStateChanged.Emit(JumpTransition{From: prev, To: next})
}
