package cell

import (
	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/physics"
	"github.com/vlife-go/vlife/vmath"
)

// ringSpringStiffness and centerSpringStiffness mirror the stiffnesses
// Simulator::create_random_cell hard-codes for the spokes (center to ring,
// 0.4), ring neighbor segments (0.6) and the ring-closing segment (1.0).
const (
	centerSpringStiffness = 0.4
	ringSpringStiffness   = 0.6
	closingSpringStiffness = 1.0

	centerParticleMass = 1.0
	ringParticleMass    = 6.0
)

// BuildRing creates a cell's center particle, its membrane ring of
// NumRingParticles particles, the spoke and neighbor springs joining
// them, and a polygon collider over the ring — all owned by engine — and
// attaches their handles to c. Grounded in
// original_source/vlife-simulator/src/simulator.rs's
// Simulator::create_random_cell.
func BuildRing(c *Cell, cfg config.Config, engine *physics.Engine, center, velocity vmath.Vector2) {
	radius := c.Radius(cfg)
	angleStep := vmath.TwoPi / float32(NumRingParticles)

	centerParticle := physics.NewParticle(centerParticleMass, radius, center).WithVelocity(velocity)
	centerHandle := engine.Particles.Insert(centerParticle)

	particles := make([]physics.ParticleHandle, 0, NumRingParticles)
	springs := make([]physics.SpringHandle, 0, NumRingParticles*2+1)

	var lastHandle physics.ParticleHandle
	var lastPosition vmath.Vector2
	var firstPosition vmath.Vector2
	haveLast := false

	spoke := vmath.Vector2{X: radius, Y: 0}
	for i := 0; i < NumRingParticles; i++ {
		position := center
		position.Add(spoke)

		particle := physics.NewParticle(ringParticleMass, 1, position).WithVelocity(velocity)
		handle := engine.Particles.Insert(particle)
		particles = append(particles, handle)

		spokeSpring := physics.NewSpring(centerHandle, handle, radius, centerSpringStiffness)
		springs = append(springs, engine.Springs.Insert(spokeSpring))

		if haveLast {
			length := position.DistanceTo(lastPosition)
			ringSpring := physics.NewSpring(lastHandle, handle, length, ringSpringStiffness)
			springs = append(springs, engine.Springs.Insert(ringSpring))
		} else {
			firstPosition = position
		}

		lastHandle = handle
		lastPosition = position
		haveLast = true

		spoke = spoke.Rotated(-angleStep)
	}

	closingLength := lastPosition.DistanceTo(firstPosition)
	closingSpring := physics.NewSpring(lastHandle, particles[0], closingLength, closingSpringStiffness)
	springs = append(springs, engine.Springs.Insert(closingSpring))

	collider := physics.NewPolygonCollider(append([]physics.ParticleHandle(nil), particles...), cfg.Restitution)
	colliderHandle := engine.Colliders.Insert(collider)

	c.Center = centerHandle
	c.Particles = particles
	c.Springs = springs
	c.Collider = colliderHandle
}

// ReleasePhysics removes every physics resource a dead or absorbed cell
// owns from engine.
func ReleasePhysics(c *Cell, engine *physics.Engine) {
	engine.Particles.Remove(c.Center)
	for _, h := range c.Particles {
		engine.Particles.Remove(h)
	}
	for _, h := range c.Springs {
		engine.Springs.Remove(h)
	}
	engine.Colliders.Remove(c.Collider)
}
