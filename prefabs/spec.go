package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/tilemap"
	"gopkg.in/yaml.v3"
)

const GameSpecFile = "game.yaml"

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

// GameSpec is the launch configuration. It is read once at startup and
// handed out as value types; nothing mutates it afterwards.
type GameSpec struct {
	Window  WindowSpec  `yaml:"window"`
	Physics PhysicsSpec `yaml:"physics"`
	Map     MapSpec     `yaml:"map"`
	Player  PlayerSpec  `yaml:"player"`
	Keys    KeysSpec    `yaml:"keys"`
}

type WindowSpec struct {
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Fullscreen bool      `yaml:"fullscreen"`
	VSync      bool      `yaml:"vsync"`
	ClearColor YAMLColor `yaml:"clear_color"`
}

// PhysicsSpec: Scale is pixels per world unit.
type PhysicsSpec struct {
	Scale      float64 `yaml:"scale"`
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
	TPS        int     `yaml:"tps"`
}

type MapSpec struct {
	Level         string    `yaml:"level"`
	TileColor     YAMLColor `yaml:"tile_color"`
	WallThickness float64   `yaml:"wall_thickness"`
}

type PlayerSpec struct {
	Size             float64   `yaml:"size"`
	Color            YAMLColor `yaml:"color"`
	Mass             float64   `yaml:"mass"`
	Speed            float64   `yaml:"speed"`
	SprintFactor     float64   `yaml:"sprint_factor"`
	JumpImpulse      float64   `yaml:"jump_impulse"`
	PowerJumpImpulse float64   `yaml:"power_jump_impulse"`
	LinearDamping    float64   `yaml:"linear_damping"`
	GravityScale     float64   `yaml:"gravity_scale"`
	SpawnInset       float64   `yaml:"spawn_inset"`
	SpawnY           float64   `yaml:"spawn_y"`
}

// KeysSpec names ebiten keys for the four logical actions.
type KeysSpec struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Sprint string `yaml:"sprint"`
	Jump   string `yaml:"jump"`
}

func LoadGameSpec(filename string) (GameSpec, error) {
	if filename == "" {
		filename = GameSpecFile
	}
	spec, err := LoadSpec[GameSpec](filename)
	if err != nil {
		return GameSpec{}, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return GameSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Window.Title == "" {
		s.Window.Title = "platformer"
	}
	if s.Window.ClearColor == (YAMLColor{}) {
		s.Window.ClearColor = YAMLColor{color.NRGBA{R: 0x78, G: 0xC7, B: 0xFF, A: 0xFF}}
	}
	if s.Map.TileColor == (YAMLColor{}) {
		s.Map.TileColor = YAMLColor{color.NRGBA{R: 0x14, G: 0x94, B: 0x00, A: 0xFF}}
	}
	if s.Player.Color == (YAMLColor{}) {
		s.Player.Color = YAMLColor{color.NRGBA{R: 0xB0, G: 0x75, B: 0x0D, A: 0xFF}}
	}
	if s.Physics.Gravity == 0 {
		s.Physics.Gravity = -9.81
	}
	if s.Physics.Iterations <= 0 {
		s.Physics.Iterations = 10
	}
	if s.Physics.TPS <= 0 {
		s.Physics.TPS = 60
	}
	if s.Map.WallThickness <= 0 {
		s.Map.WallThickness = tilemap.DefaultWallThickness
	}
	if s.Player.Mass <= 0 {
		s.Player.Mass = 1
	}
	tune := movement.DefaultTuning()
	if s.Player.SprintFactor == 0 {
		s.Player.SprintFactor = tune.SprintFactor
	}
	if s.Player.JumpImpulse == 0 {
		s.Player.JumpImpulse = tune.JumpImpulse
	}
	if s.Player.PowerJumpImpulse == 0 {
		s.Player.PowerJumpImpulse = tune.PowerJumpImpulse
	}
	if s.Player.GravityScale == 0 {
		s.Player.GravityScale = 1
	}
	if s.Keys.Left == "" {
		s.Keys.Left = "A"
	}
	if s.Keys.Right == "" {
		s.Keys.Right = "D"
	}
	if s.Keys.Sprint == "" {
		s.Keys.Sprint = "ShiftLeft"
	}
	if s.Keys.Jump == "" {
		s.Keys.Jump = "Space"
	}
}

// Validate reports values that would make the world unbuildable.
func (s GameSpec) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Physics.Scale <= 0 {
		errs = append(errs, fmt.Errorf("physics scale %g must be positive", s.Physics.Scale))
	}
	if s.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size %g must be positive", s.Player.Size))
	}
	if s.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed %g must be positive", s.Player.Speed))
	}
	if s.Player.LinearDamping < 0 {
		errs = append(errs, fmt.Errorf("player linear damping %g must not be negative", s.Player.LinearDamping))
	}
	return errors.Join(errs...)
}

func (s GameSpec) Viewport() tilemap.Viewport {
	return tilemap.Viewport{Width: float64(s.Window.Width), Height: float64(s.Window.Height)}
}

func (s GameSpec) Tuning() movement.Tuning {
	return movement.Tuning{
		Speed:            s.Player.Speed,
		SprintFactor:     s.Player.SprintFactor,
		JumpImpulse:      s.Player.JumpImpulse,
		PowerJumpImpulse: s.Player.PowerJumpImpulse,
	}
}

// Timestep is the physics step length in seconds.
func (s GameSpec) Timestep() float64 {
	return 1 / float64(s.Physics.TPS)
}

type YAMLColor struct {
	color.NRGBA
}

// ParseColor decodes #RRGGBB or #RRGGBBAA.
func ParseColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out color.NRGBA
	var err error
	if out.R, err = parse(0); err != nil {
		return color.NRGBA{}, err
	}
	if out.G, err = parse(2); err != nil {
		return color.NRGBA{}, err
	}
	if out.B, err = parse(4); err != nil {
		return color.NRGBA{}, err
	}
	out.A = 255
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.NRGBA{}, err
		}
	}
	return out, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A), nil
}
