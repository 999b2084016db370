package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Movement turns a 2D input direction and the active speed tier into a
// per-tick displacement.
type Movement struct {
	cfg           MovementConfig
	dt            float64
	direction     mgl64.Vec2
	sprintToggled bool
}

func NewMovement(cfg *MovementConfig, dt float64) (*Movement, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkTimestep(dt); err != nil {
		return nil, err
	}
	return &Movement{cfg: *cfg, dt: dt}, nil
}

// SetDirection stores the latest move input.
func (m *Movement) SetDirection(dir mgl64.Vec2) { m.direction = dir }

func (m *Movement) Direction() mgl64.Vec2 { return m.direction }

// ToggleSprint flips between the normal and sprint tiers.
func (m *Movement) ToggleSprint() { m.sprintToggled = !m.sprintToggled }

func (m *Movement) SprintToggled() bool { return m.sprintToggled }

// IsSprinting is true only while sprint is toggled on and there is
// horizontal input. Standing still with sprint on drains nothing.
func (m *Movement) IsSprinting() bool {
	return m.sprintToggled && m.direction.X() != 0
}

// Speed returns the horizontal speed tier for this tick.
func (m *Movement) Speed(exhausted bool) float64 {
	switch {
	case exhausted:
		return m.cfg.TiredSpeed
	case m.IsSprinting():
		return m.cfg.SprintSpeed
	default:
		return m.cfg.NormalSpeed
	}
}

// Move builds the tick displacement. verticalDisplacement is already a
// per-tick distance (velocity * dt) and is passed through unchanged.
func (m *Movement) Move(verticalDisplacement float64, exhausted bool) mgl64.Vec3 {
	return mgl64.Vec3{
		m.direction.X() * m.Speed(exhausted) * m.dt,
		verticalDisplacement,
		0,
	}
}
