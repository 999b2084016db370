package scenario

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/locomotion"
	"github.com/sirupsen/logrus"
)

// Frame is the recorded state after one tick.
type Frame struct {
	Tick        int     `yaml:"tick"`
	State       string  `yaml:"state"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Grounded    bool    `yaml:"grounded"`
	Stamina     float64 `yaml:"stamina"`
	Exhausted   bool    `yaml:"exhausted"`
	CoolingDown bool    `yaml:"cooling_down"`
	Sprinting   bool    `yaml:"sprinting"`
}

// FlatGround is a mover over an infinite floor at GroundY.
type FlatGround struct {
	GroundY float64
	pos     mgl64.Vec3
}

func NewFlatGround(groundY float64) *FlatGround {
	return &FlatGround{GroundY: groundY, pos: mgl64.Vec3{0, groundY, 0}}
}

func (g *FlatGround) Move(d mgl64.Vec3) {
	g.pos = g.pos.Add(d)
	if g.pos.Y() < g.GroundY {
		g.pos[1] = g.GroundY
	}
}

func (g *FlatGround) IsGrounded() bool { return g.pos.Y() <= g.GroundY }

func (g *FlatGround) Position() mgl64.Vec3 { return g.pos }

// Run drives a fresh controller with the script's input and records one
// frame per tick.
func Run(script *Script, cfg locomotion.Config, ground *FlatGround, log *logrus.Logger) ([]Frame, error) {
	ctrl, err := locomotion.NewController(cfg, ground, log)
	if err != nil {
		return nil, err
	}
	defer ctrl.Close()

	frames := make([]Frame, 0, script.Ticks())
	for tick := 0; tick < script.Ticks(); tick++ {
		in, err := script.Input(tick)
		if err != nil {
			return frames, err
		}
		ctrl.SetMoveDirection(in.Move)
		if in.JumpPressed {
			ctrl.Jump(true)
		}
		if in.JumpReleased {
			ctrl.Jump(false)
		}
		if in.SprintPressed {
			ctrl.Sprint(true)
		}
		ctrl.Tick()

		snap := ctrl.Snapshot()
		pos := ground.Position()
		frames = append(frames, Frame{
			Tick:        tick,
			State:       snap.State.String(),
			X:           pos.X(),
			Y:           pos.Y(),
			Grounded:    ground.IsGrounded(),
			Stamina:     snap.Stamina,
			Exhausted:   snap.Exhausted,
			CoolingDown: snap.CoolingDown,
			Sprinting:   snap.Sprinting,
		})
	}
	return frames, nil
}
