package physics

// ResolveCollision bounces a and b off each other if they overlap. Each axis
// is resolved independently with the 1-D elastic formula, and only when the
// bodies approach each other on that axis. If any axis resolved, the angular
// velocities are exchanged the same way using the moments of inertia.
//
// A body bounces at most once per step: once either flag is set the call is a
// no-op. Positions are never changed. It reports whether any axis resolved.
func ResolveCollision(a, b *Body) bool {
	if a.bounced || b.bounced {
		return false
	}
	ka, kb := a.motion.Kinematic(), b.motion.Kinematic()
	if ka && kb {
		return false
	}
	if !a.Hits(b) {
		return false
	}

	a.bounced = true
	b.bounced = true

	m1, m2 := a.Mass(), b.Mass()
	dx := b.center.X - a.center.X
	dy := b.center.Y - a.center.Y
	collided := false

	if approaching(dx, a.velocity.X, b.velocity.X) {
		a.velocity.X, b.velocity.X = elastic(m1, m2, a.velocity.X, b.velocity.X, ka, kb)
		collided = true
	}
	if approaching(dy, a.velocity.Y, b.velocity.Y) {
		a.velocity.Y, b.velocity.Y = elastic(m1, m2, a.velocity.Y, b.velocity.Y, ka, kb)
		collided = true
	}

	if collided {
		a.angularVelocity, b.angularVelocity = elastic(a.MomentOfInertia(), b.MomentOfInertia(),
			a.angularVelocity, b.angularVelocity, ka, kb)
	}
	return collided
}

// approaching reports whether two bodies close on one axis, where delta is
// the second body's coordinate minus the first's. A zero delta counts as the
// second body being ahead.
func approaching(delta, v1, v2 float64) bool {
	return (delta >= 0 && v1 > v2) || (delta < 0 && v1 < v2)
}

// elastic returns the post-collision velocities of a 1-D elastic collision.
// A kinematic side behaves as infinite mass: it keeps its velocity and the
// other side rebounds off it.
func elastic(m1, m2, v1, v2 float64, k1, k2 bool) (float64, float64) {
	switch {
	case k1 && k2:
		return v1, v2
	case k1:
		return v1, 2*v1 - v2
	case k2:
		return 2*v2 - v1, v2
	}
	total := m1 + m2
	return ((m1-m2)*v1 + 2*m2*v2) / total,
		(2*m1*v1 + (m2-m1)*v2) / total
}
