package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scrollin/health"
	"github.com/milk9111/scrollin/locomotion"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Title    string     `yaml:"title"`
	Window   WindowSpec `yaml:"window"`
	TPS      int        `yaml:"tps"`
	LogLevel string     `yaml:"log_level"`
	Level    string     `yaml:"level"`
	Player   string     `yaml:"player"`
	Camera   string     `yaml:"camera"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	if spec.Window.Width <= 0 || spec.Window.Height <= 0 {
		spec.Window = WindowSpec{Width: 1280, Height: 720}
	}
	if spec.Level == "" || spec.Player == "" || spec.Camera == "" {
		return nil, fmt.Errorf("%w: game.yaml needs level, player and camera", ErrInvalidSpec)
	}
	return &spec, nil
}

// PlayerSpec is the full tuning of the player character.
type PlayerSpec struct {
	Name            string                    `yaml:"name"`
	Jump            locomotion.JumpConfig     `yaml:"jump"`
	Gravity         locomotion.GravityConfig  `yaml:"gravity"`
	Movement        locomotion.MovementConfig `yaml:"movement"`
	Stamina         locomotion.StaminaConfig  `yaml:"stamina"`
	StaminaCooldown float64                   `yaml:"stamina_cooldown"`
	Health          health.Config             `yaml:"health"`
	FallDamage      int                       `yaml:"fall_damage"`
	Collider        ColliderSpec              `yaml:"collider"`
	Color           YAMLColor                 `yaml:"color"`
	HUD             HUDSpec                   `yaml:"hud"`
	Companion       *CompanionSpec            `yaml:"companion"`
}

// LocomotionConfig copies the tuning into a controller config for the
// given tick length.
func (s *PlayerSpec) LocomotionConfig(timestep float64) locomotion.Config {
	jump, gravity, movement, stamina := s.Jump, s.Gravity, s.Movement, s.Stamina
	return locomotion.Config{
		Jump:            &jump,
		Gravity:         &gravity,
		Movement:        &movement,
		Stamina:         &stamina,
		Timestep:        timestep,
		StaminaCooldown: s.StaminaCooldown,
	}
}

func LoadPlayerSpec(name string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: collider must have a positive size", ErrInvalidSpec, name)
	}
	if c := spec.Companion; c != nil && c.Size <= 0 {
		return nil, fmt.Errorf("%w: %s: companion size must be positive", ErrInvalidSpec, name)
	}
	if spec.FallDamage < 0 {
		return nil, fmt.Errorf("%w: %s: fall_damage must not be negative", ErrInvalidSpec, name)
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CompanionSpec describes the optional follower that trails the player.
type CompanionSpec struct {
	Offset     Vec2Spec  `yaml:"offset"`
	SmoothTime float64   `yaml:"smooth_time"`
	Size       float64   `yaml:"size"`
	Color      YAMLColor `yaml:"color"`
}

type HUDSpec struct {
	StaminaBar StaminaBarSpec `yaml:"stamina_bar"`
}

type StaminaBarSpec struct {
	X             float64   `yaml:"x"`
	Y             float64   `yaml:"y"`
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	BlinkInterval float64   `yaml:"blink_interval"`
	FillColor     YAMLColor `yaml:"fill_color"`
	BackColor     YAMLColor `yaml:"back_color"`
}

type LevelSpec struct {
	Name       string    `yaml:"name"`
	Spawn      Vec2Spec  `yaml:"spawn"`
	KillY      float64   `yaml:"kill_y"`
	Background YAMLColor `yaml:"background"`
	Boxes      []BoxSpec `yaml:"boxes"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.KillY >= spec.Spawn.Y {
		return nil, fmt.Errorf("%w: %s: kill_y %g must be below spawn y %g", ErrInvalidSpec, name, spec.KillY, spec.Spawn.Y)
	}
	for i, b := range spec.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			return nil, fmt.Errorf("%w: %s: box %d must have a positive size", ErrInvalidSpec, name, i)
		}
	}
	return &spec, nil
}

// BoxSpec is an axis-aligned solid centered on (X, Y).
type BoxSpec struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

type CameraSpec struct {
	Offset        Vec2Spec `yaml:"offset"`
	SmoothTime    float64  `yaml:"smooth_time"`
	PixelsPerUnit float64  `yaml:"pixels_per_unit"`
}

func LoadCameraSpec(name string) (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.PixelsPerUnit <= 0 {
		spec.PixelsPerUnit = 32
	}
	return &spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, 0}
}

type YAMLColor struct {
	color.Color
}

// OrDefault returns the parsed color, or fallback when the field was absent.
func (c YAMLColor) OrDefault(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
