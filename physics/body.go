package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ping/common"
)

// MaxInitialSpeed bounds the random linear (pixels/s) and angular (degrees/s)
// velocities drawn for a new body: each component is uniform in [-MaxInitialSpeed, MaxInitialSpeed].
const MaxInitialSpeed = 500.0

// Body is a circular rigid body. Its mass is the area-proportional radius²
// and its moment of inertia is mass·radius²; neither is stored.
type Body struct {
	radius float64

	// arena bounds the body reflects against
	width, height float64

	center          cp.Vector
	velocity        cp.Vector
	angle           float64 // degrees, unbounded
	angularVelocity float64 // degrees per second

	image   int
	motion  Motion
	bounced bool
	placed  bool
}

// NewBody creates a free body with random size, image and velocities.
// The body starts outside the arena until it is placed.
func NewBody(rng RandomSource, imageCount int, minDiameter, maxDiameter float64, width, height int) (*Body, error) {
	if err := validateBodyParams(imageCount, minDiameter, maxDiameter, width, height); err != nil {
		return nil, err
	}

	b := &Body{
		width:  float64(width),
		height: float64(height),
		motion: Free{},
	}
	b.radius = uniform(rng, minDiameter, maxDiameter) * 0.5
	b.image = rng.IntN(imageCount)
	b.velocity.X = uniform(rng, -MaxInitialSpeed, MaxInitialSpeed)
	b.velocity.Y = uniform(rng, -MaxInitialSpeed, MaxInitialSpeed)
	b.angularVelocity = uniform(rng, -MaxInitialSpeed, MaxInitialSpeed)
	b.center = cp.Vector{X: -b.radius, Y: -b.radius}
	return b, nil
}

func validateBodyParams(imageCount int, minDiameter, maxDiameter float64, width, height int) error {
	if imageCount < 1 {
		return fmt.Errorf("physics: %w: there are no images for drawing bodies", ErrInvalidConfig)
	}
	if minDiameter < 1 || maxDiameter < minDiameter {
		return fmt.Errorf("physics: %w: diameter range from %g to %g", ErrInvalidConfig, minDiameter, maxDiameter)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("physics: %w: arena dimension %d x %d", ErrInvalidConfig, width, height)
	}
	return nil
}

// Radius returns the body radius in pixels.
func (b *Body) Radius() float64 { return b.radius }

// Mass returns radius².
func (b *Body) Mass() float64 { return b.radius * b.radius }

// MomentOfInertia returns mass·radius².
func (b *Body) MomentOfInertia() float64 { return b.Mass() * b.radius * b.radius }

func (b *Body) Center() cp.Vector { return b.center }

func (b *Body) Velocity() cp.Vector { return b.velocity }

// Angle returns the rotation in degrees.
func (b *Body) Angle() float64 { return b.angle }

func (b *Body) AngularVelocity() float64 { return b.angularVelocity }

// Image returns the index of the image used to draw the body.
func (b *Body) Image() int { return b.image }

func (b *Body) Motion() MotionKind { return b.motion.Kind() }

// Bounced reports whether the body already bounced during the current step.
func (b *Body) Bounced() bool { return b.bounced }

// Placed reports whether the body has been given a location inside the arena.
func (b *Body) Placed() bool { return b.placed }

// X returns the rounded left edge of the square containing the body.
func (b *Body) X() int { return common.RoundPixel(b.center.X - b.radius) }

// Y returns the rounded top edge of the square containing the body.
func (b *Body) Y() int { return common.RoundPixel(b.center.Y - b.radius) }

// Diameter returns the rounded diameter.
func (b *Body) Diameter() int { return common.RoundPixel(2 * b.radius) }

// BB returns the bounding box of the body.
func (b *Body) BB() cp.BB { return cp.NewBBForCircle(b.center, b.radius) }

// fits reports whether the arena is large enough to hold the body at all.
func (b *Body) fits() bool {
	d := 2 * b.radius
	return d <= b.width && d <= b.height
}

// ChooseRandomLocation moves the center to a uniform point that keeps the
// body inside the arena.
func (b *Body) ChooseRandomLocation(rng RandomSource) {
	b.center.X = b.radius + rng.Float64()*(b.width-2*b.radius)
	b.center.Y = b.radius + rng.Float64()*(b.height-2*b.radius)
	b.placed = true
}

// Hits reports whether the two bodies overlap: the distance between the
// centers is strictly less than the sum of the radii.
func (b *Body) Hits(other *Body) bool {
	if !b.BB().Intersects(other.BB()) {
		return false
	}
	sum := b.radius + other.radius
	return b.center.DistanceSq(other.center) < sum*sum
}

// ClearBounce resets the per-step bounce flag.
func (b *Body) ClearBounce() { b.bounced = false }

// Integrate advances the body by dt seconds according to its motion policy.
func (b *Body) Integrate(dt float64) {
	b.motion.Integrate(b, dt)
}

// reflectWalls bounces the center off the arena walls, one pass per axis.
func (b *Body) reflectWalls() {
	r := b.radius
	if b.center.X < r {
		b.center.X = 2*r - b.center.X
		b.velocity.X = -b.velocity.X
	}
	if b.center.Y < r {
		b.center.Y = 2*r - b.center.Y
		b.velocity.Y = -b.velocity.Y
	}
	if b.center.X > b.width-r {
		b.center.X = 2*(b.width-r) - b.center.X
		b.velocity.X = -b.velocity.X
	}
	if b.center.Y > b.height-r {
		b.center.Y = 2*(b.height-r) - b.center.Y
		b.velocity.Y = -b.velocity.Y
	}
}

// View returns a read-only snapshot for display collaborators.
func (b *Body) View() BodyView {
	return BodyView{
		X:        b.X(),
		Y:        b.Y(),
		Diameter: b.Diameter(),
		Angle:    b.angle,
		Image:    b.image,
		Motion:   b.motion.Kind(),
		CenterX:  b.center.X,
		CenterY:  b.center.Y,
		Radius:   b.radius,
		VX:       b.velocity.X,
		VY:       b.velocity.Y,
		Bounced:  b.bounced,
	}
}

// BodyView is what a display needs to draw one body.
type BodyView struct {
	X, Y     int // top-left of the bounding square
	Diameter int
	Angle    float64 // degrees
	Image    int
	Motion   MotionKind

	CenterX, CenterY float64
	Radius           float64
	VX, VY           float64
	Bounced          bool
}
