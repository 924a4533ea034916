package system

// PhysicsSystem advances the arena by its configured step each frame.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *World) {
	if w == nil || w.Arena == nil || w.Paused {
		return
	}
	w.Arena.Advance()
	w.Frame++
	w.Bounces += w.Arena.LastBounces()
}
