// Package locomotion is the per-tick character motion core: a gravity
// integrator, the jump state machine, horizontal movement tiers and the
// sprint stamina pool, composed by Controller into one displacement that a
// host collision primitive applies.
//
// Everything here runs on the fixed physics tick of the host. Nothing
// blocks and nothing reads the wall clock.
package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/cooldown"
	"github.com/milk9111/scrollin/event"
	"github.com/sirupsen/logrus"
)

// Mover is the host's character primitive. It applies a displacement with
// collision resolution and reports ground contact.
type Mover interface {
	Move(displacement mgl64.Vec3)
	IsGrounded() bool
	Position() mgl64.Vec3
}

// Snapshot is the observable outcome of the last tick.
type Snapshot struct {
	Tick            uint64
	State           JumpState
	Grounded        bool
	JumpVelocity    float64
	GravityVelocity float64
	Displacement    mgl64.Vec3
	Position        mgl64.Vec3
	Stamina         float64
	StaminaFraction float64
	Exhausted       bool
	CoolingDown     bool
	Sprinting       bool
}

// Controller owns one character's locomotion systems and drives them once
// per tick.
type Controller struct {
	log   *logrus.Entry
	dt    float64
	mover Mover

	gravity  *Gravity
	jump     *JumpMachine
	movement *Movement
	stamina  *Stamina
	cooldown *cooldown.Timer

	direction     mgl64.Vec2
	jumpEdges     []bool
	sprintPresses int

	lastPosition  mgl64.Vec3
	onTargetMoved *event.Signal[mgl64.Vec3]
	subs          []event.Subscription
	last          Snapshot
}

// NewController builds every subsystem up front. A missing tuning record
// or mover is rejected here; afterwards no call returns an error.
func NewController(cfg Config, mover Mover, log *logrus.Logger) (*Controller, error) {
	if mover == nil {
		return nil, ErrNilMover
	}
	dt, err := cfg.timestep()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	gravity, err := NewGravity(cfg.Gravity, dt)
	if err != nil {
		return nil, err
	}
	jump, err := NewJumpMachine(cfg.Jump, cfg.Gravity, dt)
	if err != nil {
		return nil, err
	}
	movement, err := NewMovement(cfg.Movement, dt)
	if err != nil {
		return nil, err
	}
	timer := cooldown.New(cfg.staminaCooldown())
	stamina, err := NewStamina(cfg.Stamina, timer)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		log:           log.WithField("system", "locomotion"),
		dt:            dt,
		mover:         mover,
		gravity:       gravity,
		jump:          jump,
		movement:      movement,
		stamina:       stamina,
		cooldown:      timer,
		lastPosition:  mover.Position(),
		onTargetMoved: event.NewSignal[mgl64.Vec3](),
	}
	c.last = c.snapshot(0, mover.IsGrounded(), 0, mgl64.Vec3{})
	c.subs = append(c.subs,
		jump.OnStateChanged().Subscribe(func(tr JumpTransition) {
			c.log.WithFields(logrus.Fields{"from": tr.From, "to": tr.To}).Debug("jump state changed")
		}),
		stamina.OnStartCooldown().Subscribe(func(struct{}) {
			c.log.WithField("cooldown", timer.Duration()).Debug("stamina exhausted")
		}),
		timer.OnComplete().Subscribe(func(ok bool) {
			c.log.WithField("completed", ok).Debug("stamina cooldown finished")
		}),
	)
	return c, nil
}

// Timestep is the fixed tick length in seconds.
func (c *Controller) Timestep() float64 { return c.dt }

// OnStaminaChanged publishes the stamina fraction in [0,1].
func (c *Controller) OnStaminaChanged() *event.Signal[float64] { return c.stamina.OnChanged() }

func (c *Controller) OnCooldownStarted() *event.Signal[struct{}] { return c.cooldown.OnStart() }

// OnCooldownCompleted reports true for a finished cooldown, false for a
// cancelled one.
func (c *Controller) OnCooldownCompleted() *event.Signal[bool] { return c.cooldown.OnComplete() }

// OnTargetMoved publishes the host position whenever it changes.
func (c *Controller) OnTargetMoved() *event.Signal[mgl64.Vec3] { return c.onTargetMoved }

func (c *Controller) OnJumpStateChanged() *event.Signal[JumpTransition] {
	return c.jump.OnStateChanged()
}

// SetMoveDirection records the latest move input for the next tick.
func (c *Controller) SetMoveDirection(dir mgl64.Vec2) { c.direction = dir }

// Jump queues a jump button edge.
func (c *Controller) Jump(pressed bool) { c.jumpEdges = append(c.jumpEdges, pressed) }

// Sprint queues a sprint button edge; each press toggles sprinting.
func (c *Controller) Sprint(pressed bool) {
	if pressed {
		c.sprintPresses++
	}
}

// CancelCooldown aborts a running stamina cooldown.
func (c *Controller) CancelCooldown() { c.cooldown.Cancel() }

// PauseCooldown freezes the stamina cooldown, e.g. while the game is paused.
func (c *Controller) PauseCooldown() { c.cooldown.Pause() }

func (c *Controller) ResumeCooldown() { c.cooldown.Resume() }

// Tick advances the simulation by one fixed step and hands the resulting
// displacement to the mover.
func (c *Controller) Tick() {
	c.applyInput()
	c.cooldown.Tick(c.dt)

	grounded := c.mover.IsGrounded()
	gravityVelocity := c.gravity.CalculateGravity(grounded)
	jumpDisplacement := c.jump.CalculateJumpVelocity(grounded)
	vertical := jumpDisplacement + gravityVelocity*c.dt

	if c.movement.IsSprinting() && !c.stamina.IsExhausted() {
		c.stamina.TryUseStamina(c.dt)
	} else {
		c.stamina.RecoverStamina(c.dt)
	}

	displacement := c.movement.Move(vertical, c.stamina.IsExhausted())
	c.mover.Move(displacement)

	if pos := c.mover.Position(); pos != c.lastPosition {
		c.lastPosition = pos
		c.onTargetMoved.Emit(pos)
	}
	c.last = c.snapshot(c.last.Tick+1, grounded, gravityVelocity, displacement)
}

// Snapshot returns the state recorded by the last Tick.
func (c *Controller) Snapshot() Snapshot { return c.last }

// Close releases every listener the controller registered.
func (c *Controller) Close() {
	for i := range c.subs {
		c.subs[i].Close()
	}
	c.subs = nil
	c.stamina.Close()
}

func (c *Controller) applyInput() {
	c.movement.SetDirection(c.direction)
	for ; c.sprintPresses > 0; c.sprintPresses-- {
		c.movement.ToggleSprint()
	}
	for _, pressed := range c.jumpEdges {
		c.jump.StartJump(pressed)
	}
	c.jumpEdges = c.jumpEdges[:0]
}

func (c *Controller) snapshot(tick uint64, grounded bool, gravityVelocity float64, displacement mgl64.Vec3) Snapshot {
	return Snapshot{
		Tick:            tick,
		State:           c.jump.State(),
		Grounded:        grounded,
		JumpVelocity:    c.jump.Velocity(),
		GravityVelocity: gravityVelocity,
		Displacement:    displacement,
		Position:        c.mover.Position(),
		Stamina:         c.stamina.Stamina(),
		StaminaFraction: c.stamina.Fraction(),
		Exhausted:       c.stamina.IsExhausted(),
		CoolingDown:     c.stamina.IsCoolingDown(),
		Sprinting:       c.movement.IsSprinting(),
	}
}
