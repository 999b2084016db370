package locomotion

import (
	"math"

	"github.com/milk9111/scrollin/cooldown"
	"github.com/milk9111/scrollin/event"
)

// Stamina is the sprint resource pool.
//
// Draining to zero marks the character exhausted and starts the cooldown
// timer. Nothing recovers until the timer completes; exhaustion clears once
// recovery climbs past the configured fraction of the maximum.
type Stamina struct {
	cfg   StaminaConfig
	timer *cooldown.Timer

	stamina      float64
	exhausted    bool
	coolingDown  bool
	lastFraction float64

	onChanged       *event.Signal[float64]
	onStartCooldown *event.Signal[struct{}]
	timerSub        event.Subscription
}

// NewStamina builds a full pool bound to timer. The pool listens to the
// timer's completion until Close is called.
func NewStamina(cfg *StaminaConfig, timer *cooldown.Timer) (*Stamina, error) {
	if cfg == nil || timer == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Stamina{
		cfg:             *cfg,
		timer:           timer,
		stamina:         cfg.MaxStamina,
		lastFraction:    1,
		onChanged:       event.NewSignal[float64](),
		onStartCooldown: event.NewSignal[struct{}](),
	}
	s.timerSub = timer.OnComplete().Subscribe(s.cooldownFinished)
	return s, nil
}

// OnChanged publishes stamina/max after every change.
func (s *Stamina) OnChanged() *event.Signal[float64] { return s.onChanged }

// OnStartCooldown fires when exhaustion begins, just before the timer starts.
func (s *Stamina) OnStartCooldown() *event.Signal[struct{}] { return s.onStartCooldown }

func (s *Stamina) Stamina() float64    { return s.stamina }
func (s *Stamina) Max() float64        { return s.cfg.MaxStamina }
func (s *Stamina) IsExhausted() bool   { return s.exhausted }
func (s *Stamina) IsCoolingDown() bool { return s.coolingDown }

// LastFraction is the value most recently published on OnChanged.
func (s *Stamina) LastFraction() float64 { return s.lastFraction }

func (s *Stamina) Fraction() float64 {
	return s.stamina / s.cfg.MaxStamina
}

// TryUseStamina drains one tick of sprinting. It returns false, without
// touching the pool, while exhausted or cooling down, and false on the tick
// that empties the pool.
func (s *Stamina) TryUseStamina(dt float64) bool {
	if s.exhausted || s.coolingDown {
		return false
	}
	s.stamina -= s.cfg.DrainRate * dt
	depleted := s.stamina <= 0
	if depleted {
		s.stamina = 0
	}
	s.emit()
	if !depleted {
		return true
	}
	s.exhausted = true
	s.coolingDown = true
	s.onStartCooldown.Emit(struct{}{})
	if !s.timer.Start() && !s.timer.Active() {
		// zero-length cooldown
		s.coolingDown = false
	}
	return false
}

// RecoverStamina refills one tick of idle time unless the cooldown runs.
func (s *Stamina) RecoverStamina(dt float64) {
	if s.coolingDown {
		return
	}
	s.stamina = math.Min(s.stamina+s.cfg.RecoveryRate*dt, s.cfg.MaxStamina)
	if s.stamina != s.cfg.MaxStamina {
		s.emit()
	}
	if s.stamina > s.cfg.ExhaustionThreshold*s.cfg.MaxStamina {
		s.exhausted = false
	}
}

// Close stops listening to the cooldown timer.
func (s *Stamina) Close() {
	s.timerSub.Close()
}

func (s *Stamina) emit() {
	s.lastFraction = s.Fraction()
	s.onChanged.Emit(s.lastFraction)
}

// cooldownFinished runs on both natural completion and cancellation; either
// way the lock is lifted.
func (s *Stamina) cooldownFinished(bool) {
	s.coolingDown = false
}
