package physics

import "github.com/vlife-go/vlife/vmath"

// Particle is a point mass integrated with a Verlet scheme: velocity is
// never stored directly but reconstructed from the current and previous
// position, so `velocity = position - previous` always holds between
// sub-steps.
type Particle struct {
	Mass         float32
	Radius       float32
	Position     vmath.Vector2
	Previous     vmath.Vector2
	Acceleration vmath.Vector2
}

// NewParticle returns a particle at rest at position, with the given mass
// and radius.
func NewParticle(mass, radius float32, position vmath.Vector2) Particle {
	return Particle{
		Mass:     mass,
		Radius:   radius,
		Position: position,
		Previous: position,
	}
}

// WithVelocity returns a copy of p with its previous position set so that
// the reconstructed velocity equals velocity.
func (p Particle) WithVelocity(velocity vmath.Vector2) Particle {
	p.Previous = p.Position
	p.Previous.Sub(velocity)
	return p
}

// Velocity reconstructs this particle's velocity from its current and
// previous position.
func (p *Particle) Velocity() vmath.Vector2 {
	var v vmath.Vector2
	v.SubVectors(p.Position, p.Previous)
	return v
}

// InvMass returns 1/Mass. Particle.Mass is an invariant-held positive real,
// so this never divides by zero.
func (p *Particle) InvMass() float32 {
	return 1 / p.Mass
}
