package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/ping/physics"
	"gopkg.in/yaml.v3"
)

// DefaultArena is the prefab loaded when no other configuration is named.
const DefaultArena = "arena.yaml"

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

type ArenaSpec struct {
	Name        string        `yaml:"name"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Bodies      int           `yaml:"bodies"`
	MinDiameter float64       `yaml:"min_diameter"`
	MaxDiameter float64       `yaml:"max_diameter"`
	Step        float64       `yaml:"step"`
	Seed        uint64        `yaml:"seed"`
	ImageCount  int           `yaml:"image_count"`
	Images      []string      `yaml:"images"`
	Background  *YAMLColor    `yaml:"background"`
	Palette     []YAMLColor   `yaml:"palette"`
	Fixtures    []FixtureSpec `yaml:"fixtures"`
}

type FixtureSpec struct {
	Motion          string  `yaml:"motion"`
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Diameter        float64 `yaml:"diameter"`
	Image           int     `yaml:"image"`
	AngularVelocity float64 `yaml:"angular_velocity"`
	Speed           float64 `yaml:"speed"`
	PathStart       float64 `yaml:"path_start"`
	PathEnd         float64 `yaml:"path_end"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	if filename == "" {
		filename = DefaultArena
	}
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ImageTotal returns how many images bodies can select from: the listed image
// files if any, otherwise ImageCount.
func (s *ArenaSpec) ImageTotal() int {
	if len(s.Images) > 0 {
		return len(s.Images)
	}
	return s.ImageCount
}

// Config converts the spec into an arena configuration. Validation is left
// to the physics package.
func (s *ArenaSpec) Config() (physics.Config, error) {
	cfg := physics.Config{
		ImageCount:  s.ImageTotal(),
		BodyCount:   s.Bodies,
		MinDiameter: s.MinDiameter,
		MaxDiameter: s.MaxDiameter,
		Width:       s.Width,
		Height:      s.Height,
		Step:        s.Step,
	}
	for i, f := range s.Fixtures {
		kind, err := physics.ParseMotionKind(f.Motion)
		if err != nil {
			return physics.Config{}, fmt.Errorf("prefabs: fixture %d: %w", i, err)
		}
		cfg.Fixtures = append(cfg.Fixtures, physics.Fixture{
			Motion:          kind,
			X:               f.X,
			Y:               f.Y,
			Diameter:        f.Diameter,
			Image:           f.Image,
			AngularVelocity: f.AngularVelocity,
			Speed:           f.Speed,
			PathStart:       f.PathStart,
			PathEnd:         f.PathEnd,
		})
	}
	return cfg, nil
}

type YAMLColor struct {
	color.Color
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
