package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ping/common"
)

// PlacementAttempts is the number of random locations tried per body before
// the arena is declared full.
const PlacementAttempts = 100

// Config describes an arena to construct.
type Config struct {
	ImageCount  int
	BodyCount   int
	MinDiameter float64
	MaxDiameter float64
	Width       int
	Height      int
	// Step is the time advanced per frame, in seconds.
	Step float64
	// Fixtures are kinematic bodies placed at fixed centers before the
	// random bodies.
	Fixtures []Fixture
}

// Fixture is a kinematic body with an explicit location.
type Fixture struct {
	Motion   MotionKind
	X, Y     float64
	Diameter float64
	Image    int
	// AngularVelocity in degrees per second.
	AngularVelocity float64

	// Patrol only.
	Speed              float64
	PathStart, PathEnd float64
}

// DefaultConfig returns a 640x480 arena of 20 bodies 30 to 50 pixels across.
func DefaultConfig() Config {
	return Config{
		ImageCount:  2,
		BodyCount:   20,
		MinDiameter: 30,
		MaxDiameter: 50,
		Width:       common.BaseWidth,
		Height:      common.BaseHeight,
		Step:        0.01,
	}
}

// Validate checks the parameters that do not depend on random draws.
func (c Config) Validate() error {
	if c.BodyCount < 1 {
		return fmt.Errorf("physics: %w: there are no bodies", ErrInvalidConfig)
	}
	if err := validateBodyParams(c.ImageCount, c.MinDiameter, c.MaxDiameter, c.Width, c.Height); err != nil {
		return err
	}
	if c.Step <= 0 {
		return fmt.Errorf("physics: %w: step %g must be positive", ErrInvalidConfig, c.Step)
	}
	for i, f := range c.Fixtures {
		if err := f.validate(c.ImageCount, c.Width, c.Height); err != nil {
			return fmt.Errorf("physics: fixture %d: %w", i, err)
		}
	}
	return nil
}

func (f Fixture) validate(imageCount, width, height int) error {
	r := f.Diameter / 2
	if f.Diameter < 1 {
		return fmt.Errorf("%w: fixture diameter %g", ErrInvalidConfig, f.Diameter)
	}
	if f.Image < 0 || f.Image >= imageCount {
		return fmt.Errorf("%w: fixture image %d outside [0, %d)", ErrInvalidConfig, f.Image, imageCount)
	}
	if f.X < r || f.X > float64(width)-r || f.Y < r || f.Y > float64(height)-r {
		return fmt.Errorf("%w: fixture at (%g, %g) leaves the arena", ErrInvalidConfig, f.X, f.Y)
	}
	switch f.Motion {
	case MotionSpinner:
	case MotionPatrol:
		if f.PathStart > f.PathEnd || f.X < f.PathStart || f.X > f.PathEnd {
			return fmt.Errorf("%w: bad patrol path [%g, %g] for x %g", ErrInvalidConfig, f.PathStart, f.PathEnd, f.X)
		}
		if f.PathStart < r || f.PathEnd > float64(width)-r {
			return fmt.Errorf("%w: patrol path [%g, %g] leaves the arena", ErrInvalidConfig, f.PathStart, f.PathEnd)
		}
	default:
		return fmt.Errorf("%w: fixtures must be %s or %s, got %s", ErrInvalidConfig, MotionPatrol, MotionSpinner, f.Motion)
	}
	return nil
}

func (f Fixture) body(width, height int) Body {
	b := Body{
		radius:          f.Diameter / 2,
		width:           float64(width),
		height:          float64(height),
		center:          cp.Vector{X: f.X, Y: f.Y},
		angularVelocity: f.AngularVelocity,
		image:           f.Image,
		placed:          true,
	}
	switch f.Motion {
	case MotionPatrol:
		b.motion = Patrol{Start: f.PathStart, End: f.PathEnd}
		b.velocity.X = f.Speed
	default:
		b.motion = Spinner{}
	}
	return b
}
