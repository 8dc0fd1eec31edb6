package physics

import "github.com/vlife-go/vlife/objectset"

// ParticleHandle references a Particle owned by an Engine.
type ParticleHandle = objectset.Handle[Particle]

// Spring binds two particles with a distance constraint: a rest length and
// a stiffness in [0, 1].
type Spring struct {
	Particle1 ParticleHandle
	Particle2 ParticleHandle
	Length    float32
	Stiffness float32
}

// NewSpring returns a spring joining p1 and p2 at the given rest length
// and stiffness.
func NewSpring(p1, p2 ParticleHandle, length, stiffness float32) Spring {
	return Spring{Particle1: p1, Particle2: p2, Length: length, Stiffness: stiffness}
}
