package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestResolveCollisionConservation(t *testing.T) {
	cases := []struct {
		name string
		a, b *Body
	}{
		{"x_only", freeBody(100, 100, 10, 120, 5, 40), freeBody(120, 100, 15, -80, 5, -60)},
		{"y_only", freeBody(100, 100, 20, 0, 300, 10), freeBody(100, 130, 12, 0, -20, 0)},
		{"both_axes", freeBody(100, 100, 18, 200, 150, -300), freeBody(120, 115, 9, -50, -250, 450)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m1, m2 := c.a.Mass(), c.b.Mass()
			i1, i2 := c.a.MomentOfInertia(), c.b.MomentOfInertia()
			va, vb := c.a.Velocity(), c.b.Velocity()
			wa, wb := c.a.AngularVelocity(), c.b.AngularVelocity()

			if !ResolveCollision(c.a, c.b) {
				t.Fatalf("expected a collision")
			}

			na, nb := c.a.Velocity(), c.b.Velocity()
			for _, axis := range []struct {
				name           string
				v1, v2, n1, n2 float64
			}{
				{"x", va.X, vb.X, na.X, nb.X},
				{"y", va.Y, vb.Y, na.Y, nb.Y},
			} {
				if !near(m1*axis.v1+m2*axis.v2, m1*axis.n1+m2*axis.n2) {
					t.Fatalf("%s momentum changed: %v -> %v", axis.name, m1*axis.v1+m2*axis.v2, m1*axis.n1+m2*axis.n2)
				}
				before := m1*axis.v1*axis.v1 + m2*axis.v2*axis.v2
				after := m1*axis.n1*axis.n1 + m2*axis.n2*axis.n2
				if !near(before, after) {
					t.Fatalf("%s energy changed: %v -> %v", axis.name, before, after)
				}
			}

			nwa, nwb := c.a.AngularVelocity(), c.b.AngularVelocity()
			if !near(i1*wa+i2*wb, i1*nwa+i2*nwb) {
				t.Fatalf("angular momentum changed: %v -> %v", i1*wa+i2*wb, i1*nwa+i2*nwb)
			}
			if !near(i1*wa*wa+i2*wb*wb, i1*nwa*nwa+i2*nwb*nwb) {
				t.Fatalf("rotational energy changed")
			}
		})
	}
}

func TestResolveCollisionEqualMassSwap(t *testing.T) {
	a := freeBody(100, 100, 10, 50, 0, 0)
	b := freeBody(115, 100, 10, -50, 0, 0)

	if !ResolveCollision(a, b) {
		t.Fatalf("expected a collision")
	}
	if a.Velocity() != (cp.Vector{X: -50, Y: 0}) || b.Velocity() != (cp.Vector{X: 50, Y: 0}) {
		t.Fatalf("expected swapped velocities, got %v and %v", a.Velocity(), b.Velocity())
	}
	if a.Center() != (cp.Vector{X: 100, Y: 100}) || b.Center() != (cp.Vector{X: 115, Y: 100}) {
		t.Fatalf("collision must not move bodies")
	}
}

func TestResolveCollisionOncePerStep(t *testing.T) {
	a := freeBody(100, 100, 10, 50, 0, 0)
	b := freeBody(115, 100, 10, -50, 0, 0)
	ResolveCollision(a, b)
	va, vb := a.Velocity(), b.Velocity()

	if ResolveCollision(a, b) {
		t.Fatalf("second resolution in the same step should be a no-op")
	}
	if ResolveCollision(b, a) {
		t.Fatalf("reversed resolution in the same step should be a no-op")
	}
	if a.Velocity() != va || b.Velocity() != vb {
		t.Fatalf("velocities changed on a no-op")
	}

	c := freeBody(108, 108, 10, -10, -10, 0)
	if ResolveCollision(c, a) {
		t.Fatalf("an already bounced body must not bounce with a third body")
	}
	if c.Bounced() {
		t.Fatalf("third body should not be marked when the pair is skipped")
	}
}

func TestResolveCollisionSeparating(t *testing.T) {
	a := freeBody(100, 100, 10, -50, -10, 30)
	b := freeBody(115, 105, 10, 50, 10, -40)

	if ResolveCollision(a, b) {
		t.Fatalf("separating bodies should not resolve")
	}
	if !a.Bounced() || !b.Bounced() {
		t.Fatalf("overlapping bodies are marked even when separating")
	}
	if a.Velocity() != (cp.Vector{X: -50, Y: -10}) || b.Velocity() != (cp.Vector{X: 50, Y: 10}) {
		t.Fatalf("velocities changed: %v %v", a.Velocity(), b.Velocity())
	}
	if a.AngularVelocity() != 30 || b.AngularVelocity() != -40 {
		t.Fatalf("angular velocities changed")
	}
}

func TestResolveCollisionNotHitting(t *testing.T) {
	a := freeBody(100, 100, 10, 50, 0, 0)
	b := freeBody(130, 100, 10, -50, 0, 0)
	if ResolveCollision(a, b) {
		t.Fatalf("distant bodies should not collide")
	}
	if a.Bounced() || b.Bounced() {
		t.Fatalf("distant bodies should not be marked")
	}
}

func TestApproachingTieBreak(t *testing.T) {
	cases := []struct {
		name   string
		delta  float64
		v1, v2 float64
		want   bool
	}{
		{"ahead_closing", 5, 10, 0, true},
		{"ahead_opening", 5, 0, 10, false},
		{"behind_closing", -5, 0, 10, true},
		{"behind_opening", -5, 10, 0, false},
		{"aligned_first_faster", 0, 10, 0, true},
		{"aligned_second_faster", 0, 0, 10, false},
		{"equal_speed", 5, 10, 10, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := approaching(c.delta, c.v1, c.v2); got != c.want {
				t.Fatalf("approaching(%v, %v, %v) = %v, want %v", c.delta, c.v1, c.v2, got, c.want)
			}
		})
	}
}

func TestResolveCollisionKinematic(t *testing.T) {
	spinner := Fixture{Motion: MotionSpinner, X: 100, Y: 100, Diameter: 40, AngularVelocity: 90}.body(640, 480)
	free := freeBody(130, 100, 15, -100, 0, 20)

	if !ResolveCollision(free, &spinner) {
		t.Fatalf("expected a collision with the spinner")
	}
	if free.Velocity().X != 100 {
		t.Fatalf("expected the free body to rebound at 100, got %v", free.Velocity().X)
	}
	if spinner.Velocity() != (cp.Vector{}) || spinner.AngularVelocity() != 90 {
		t.Fatalf("kinematic body must keep its motion, got %v / %v", spinner.Velocity(), spinner.AngularVelocity())
	}
	if free.AngularVelocity() != 160 {
		t.Fatalf("expected angular rebound 160, got %v", free.AngularVelocity())
	}

	other := Fixture{Motion: MotionSpinner, X: 120, Y: 100, Diameter: 40}.body(640, 480)
	spinner.ClearBounce()
	if ResolveCollision(&spinner, &other) {
		t.Fatalf("two kinematic bodies never resolve")
	}
	if spinner.Bounced() || other.Bounced() {
		t.Fatalf("two kinematic bodies are never marked")
	}
}
