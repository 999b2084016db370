// Package health is the player's hit point pool.
package health

import (
	"errors"
	"fmt"

	"github.com/milk9111/scrollin/event"
)

var (
	ErrNilConfig     = errors.New("health: config is nil")
	ErrInvalidConfig = errors.New("health: invalid config")
)

type Config struct {
	MaxHealth int `yaml:"max_health"`
}

// Change is published after every successful mutation. Delta is negative
// for damage.
type Change struct {
	Current int
	Max     int
	Delta   int
}

// System tracks current and maximum health. Invalid amounts are rejected
// with a false result rather than an error.
type System struct {
	current   int
	max       int
	onChanged *event.Signal[Change]
}

// New starts the pool at full health.
func New(cfg *Config) (*System, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.MaxHealth <= 0 {
		return nil, fmt.Errorf("%w: max_health must be positive, got %d", ErrInvalidConfig, cfg.MaxHealth)
	}
	return &System{
		current:   cfg.MaxHealth,
		max:       cfg.MaxHealth,
		onChanged: event.NewSignal[Change](),
	}, nil
}

func (s *System) OnChanged() *event.Signal[Change] { return s.onChanged }

func (s *System) Current() int { return s.current }
func (s *System) Max() int     { return s.max }
func (s *System) Dead() bool   { return s.current <= 0 }

// TryTakeDamage subtracts n, never going below zero. It fails for n <= 0
// or when already dead.
func (s *System) TryTakeDamage(n int) bool {
	if n <= 0 || s.Dead() {
		return false
	}
	before := s.current
	s.current = max(s.current-n, 0)
	s.emit(s.current - before)
	return true
}

// TryHeal adds n up to the maximum. It fails for n <= 0 or at full health.
func (s *System) TryHeal(n int) bool {
	if n <= 0 || s.current >= s.max {
		return false
	}
	before := s.current
	s.current = min(s.current+n, s.max)
	s.emit(s.current - before)
	return true
}

// IncreaseMaxHealth raises the cap without healing.
func (s *System) IncreaseMaxHealth(n int) {
	if n <= 0 {
		return
	}
	s.max += n
	s.emit(0)
}

// Restore refills the pool, as after a full reset.
func (s *System) Restore() {
	if s.current == s.max {
		return
	}
	before := s.current
	s.current = s.max
	s.emit(s.current - before)
}

func (s *System) emit(delta int) {
	s.onChanged.Emit(Change{Current: s.current, Max: s.max, Delta: delta})
}
