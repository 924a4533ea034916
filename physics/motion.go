package physics

import (
	"fmt"
	"math"
	"strings"
)

// MotionKind selects how a body integrates. It is fixed at construction.
type MotionKind uint8

const (
	// MotionFree bodies fly at their velocity and reflect off the walls.
	MotionFree MotionKind = iota
	// MotionPatrol bodies sweep back and forth along a horizontal path.
	MotionPatrol
	// MotionSpinner bodies stay in place and rotate.
	MotionSpinner
)

func (k MotionKind) String() string {
	switch k {
	case MotionFree:
		return "free"
	case MotionPatrol:
		return "patrol"
	case MotionSpinner:
		return "spinner"
	}
	return fmt.Sprintf("MotionKind(%d)", uint8(k))
}

// ParseMotionKind accepts the names produced by MotionKind.String.
// An empty name is MotionFree.
func ParseMotionKind(s string) (MotionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "free":
		return MotionFree, nil
	case "patrol":
		return MotionPatrol, nil
	case "spinner":
		return MotionSpinner, nil
	}
	return 0, fmt.Errorf("physics: %w: unknown motion %q", ErrInvalidConfig, s)
}

// Motion is the per-step integration rule of a body.
type Motion interface {
	Kind() MotionKind
	// Kinematic motions are not driven by collisions; they act as infinite mass.
	Kinematic() bool
	Integrate(b *Body, dt float64)
}

// Free translates, rotates, then reflects off the arena walls.
type Free struct{}

func (Free) Kind() MotionKind { return MotionFree }

func (Free) Kinematic() bool { return false }

func (Free) Integrate(b *Body, dt float64) {
	b.center.X += dt * b.velocity.X
	b.center.Y += dt * b.velocity.Y
	b.angle += dt * b.angularVelocity
	b.reflectWalls()
}

// Patrol sweeps the center between Start and End at a constant speed,
// turning around at either end. The center never leaves [Start, End].
type Patrol struct {
	Start, End float64
}

func (Patrol) Kind() MotionKind { return MotionPatrol }

func (Patrol) Kinematic() bool { return true }

func (p Patrol) Integrate(b *Body, dt float64) {
	b.center.X += dt * b.velocity.X
	b.angle += dt * b.angularVelocity
	if b.center.X >= p.End {
		b.center.X = 2*p.End - b.center.X
		b.velocity.X = -math.Abs(b.velocity.X)
	} else if b.center.X <= p.Start {
		b.center.X = 2*p.Start - b.center.X
		b.velocity.X = math.Abs(b.velocity.X)
	}
	// A step longer than the path would carry the reflection past the
	// other end.
	b.center.X = math.Max(p.Start, math.Min(p.End, b.center.X))
}

// Spinner never translates.
type Spinner struct{}

func (Spinner) Kind() MotionKind { return MotionSpinner }

func (Spinner) Kinematic() bool { return true }

func (Spinner) Integrate(b *Body, dt float64) {
	b.angle += dt * b.angularVelocity
}
