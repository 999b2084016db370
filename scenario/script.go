// Package scenario replays scripted input through a locomotion controller
// without a window, recording the trajectory tick by tick.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidScript = errors.New("scenario: invalid script")

const maxTicks = 1 << 16

const dispatch = `
if __phase == "input" {
	__out = input(__tick)
}
`

// Input is one tick of scripted input.
type Input struct {
	Move          mgl64.Vec2
	JumpPressed   bool
	JumpReleased  bool
	SprintPressed bool
}

// Script is a compiled scenario. A script declares `ticks` and a function
// `input(tick)` returning a map with optional keys move_x, move_y,
// jump ("press" or "release") and sprint (true on the press tick).
type Script struct {
	compiled *tengo.Compiled
	ticks    int
}

func Load(src []byte) (*Script, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), dispatch...))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("__phase", "")
	_ = script.Add("__tick", 0)
	_ = script.Add("__out", nil)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("scenario: run: %w", err)
	}
	if !compiled.IsDefined("input") {
		return nil, fmt.Errorf("%w: input(tick) is not defined", ErrInvalidScript)
	}
	ticks := compiled.Get("ticks").Int()
	if ticks <= 0 || ticks > maxTicks {
		return nil, fmt.Errorf("%w: ticks must be within 1..%d, got %d", ErrInvalidScript, maxTicks, ticks)
	}
	return &Script{compiled: compiled, ticks: ticks}, nil
}

func (s *Script) Ticks() int { return s.ticks }

// Input evaluates input(tick).
func (s *Script) Input(tick int) (Input, error) {
	if err := s.compiled.Set("__phase", "input"); err != nil {
		return Input{}, err
	}
	if err := s.compiled.Set("__tick", tick); err != nil {
		return Input{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return Input{}, fmt.Errorf("scenario: tick %d: %w", tick, err)
	}

	out := s.compiled.Get("__out")
	if out.IsUndefined() {
		return Input{}, nil
	}
	m := out.Map()
	if m == nil {
		return Input{}, fmt.Errorf("%w: tick %d: input must return a map, got %s", ErrInvalidScript, tick, out.ValueType())
	}

	in := Input{Move: mgl64.Vec2{number(m["move_x"]), number(m["move_y"])}}
	switch jump, _ := m["jump"].(string); strings.ToLower(jump) {
	case "press":
		in.JumpPressed = true
	case "release":
		in.JumpReleased = true
	case "":
	default:
		return Input{}, fmt.Errorf("%w: tick %d: jump must be \"press\" or \"release\", got %q", ErrInvalidScript, tick, jump)
	}
	in.SprintPressed, _ = m["sprint"].(bool)
	return in, nil
}

func number(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
