package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Handle refers to a body by its position in the arena.
type Handle int

// Arena owns a fixed collection of bodies inside a width x height rectangle.
type Arena struct {
	width, height int
	step          float64
	rng           RandomSource
	bodies        []Body
	fixtures      int
	lastBounces   int
}

// NewArena constructs the bodies, places them without overlap and returns a
// ready arena. It fails with ErrInvalidConfig or ErrCapacity; no partial
// arena is ever returned.
func NewArena(cfg Config, rng RandomSource) (*Arena, error) {
	if rng == nil {
		return nil, fmt.Errorf("physics: %w: no random source", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Arena{
		width:    cfg.Width,
		height:   cfg.Height,
		step:     cfg.Step,
		rng:      rng,
		bodies:   make([]Body, 0, len(cfg.Fixtures)+cfg.BodyCount),
		fixtures: len(cfg.Fixtures),
	}

	for _, f := range cfg.Fixtures {
		a.bodies = append(a.bodies, f.body(cfg.Width, cfg.Height))
	}
	for i := 0; i < cfg.BodyCount; i++ {
		b, err := NewBody(rng, cfg.ImageCount, cfg.MinDiameter, cfg.MaxDiameter, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		a.bodies = append(a.bodies, *b)
	}

	if err := a.place(); err != nil {
		return nil, err
	}
	return a, nil
}

// place checks the fixtures against each other, then drops every random
// body at a random location that misses all bodies placed before it.
// A body larger than the arena fails with ErrCapacity at once, without
// spending its attempts.
func (a *Arena) place() error {
	for i := 0; i < a.fixtures; i++ {
		for j := 0; j < i; j++ {
			if a.bodies[i].Hits(&a.bodies[j]) {
				return fmt.Errorf("physics: %w: fixtures %d and %d overlap", ErrCapacity, j, i)
			}
		}
	}

	for i := a.fixtures; i < len(a.bodies); i++ {
		b := &a.bodies[i]
		if !b.fits() {
			return fmt.Errorf("physics: %w: body %d of diameter %d exceeds %d x %d", ErrCapacity, i, b.Diameter(), a.width, a.height)
		}

		hitsAnother := true
		for n := 0; n < PlacementAttempts && hitsAnother; n++ {
			b.ChooseRandomLocation(a.rng)
			hitsAnother = false
			for j := 0; j < i; j++ {
				if b.Hits(&a.bodies[j]) {
					hitsAnother = true
					break
				}
			}
		}
		if hitsAnother {
			return fmt.Errorf("physics: %w: body %d not placed after %d attempts", ErrCapacity, i, PlacementAttempts)
		}
	}
	return nil
}

// Step advances every body by dt: clear the bounce flags, bounce every
// overlapping pair, then integrate.
func (a *Arena) Step(dt float64) {
	for i := range a.bodies {
		a.bodies[i].ClearBounce()
	}

	a.lastBounces = 0
	for j := range a.bodies {
		for i := 0; i < j; i++ {
			if ResolveCollision(&a.bodies[j], &a.bodies[i]) {
				a.lastBounces++
			}
		}
	}

	for i := range a.bodies {
		a.bodies[i].Integrate(dt)
	}
}

// Advance steps by the configured step size.
func (a *Arena) Advance() { a.Step(a.step) }

// StepSize returns the configured step size in seconds.
func (a *Arena) StepSize() float64 { return a.step }

// LastBounces returns the number of pairs that bounced during the last step.
func (a *Arena) LastBounces() int { return a.lastBounces }

func (a *Arena) Len() int { return len(a.bodies) }

func (a *Arena) Width() int { return a.width }

func (a *Arena) Height() int { return a.height }

// View returns the snapshot of one body.
func (a *Arena) View(h Handle) (BodyView, bool) {
	if h < 0 || int(h) >= len(a.bodies) {
		return BodyView{}, false
	}
	return a.bodies[h].View(), true
}

// Views returns a fresh snapshot of every body in construction order.
func (a *Arena) Views() []BodyView {
	views := make([]BodyView, len(a.bodies))
	for i := range a.bodies {
		views[i] = a.bodies[i].View()
	}
	return views
}

// Stats summarizes the conserved quantities of the free bodies.
type Stats struct {
	KineticEnergy   float64 // ½·m·|v|² + ½·I·ω²
	Momentum        cp.Vector
	AngularMomentum float64
}

// Stats sums the conserved quantities over the free bodies. Kinematic
// fixtures are excluded since they act as infinite mass.
func (a *Arena) Stats() Stats {
	var s Stats
	for i := range a.bodies {
		b := &a.bodies[i]
		if b.motion.Kinematic() {
			continue
		}
		m, mi := b.Mass(), b.MomentOfInertia()
		s.KineticEnergy += 0.5*m*b.velocity.LengthSq() + 0.5*mi*b.angularVelocity*b.angularVelocity
		s.Momentum = s.Momentum.Add(b.velocity.Mult(m))
		s.AngularMomentum += mi * b.angularVelocity
	}
	return s
}

// Seed returns the seed of the arena's random source when it is a *Rand.
func (a *Arena) Seed() (uint64, bool) {
	r, ok := a.rng.(*Rand)
	if !ok {
		return 0, false
	}
	return r.Seed(), true
}
