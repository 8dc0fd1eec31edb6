package sim

import (
	"github.com/vlife-go/vlife/cell"
	"github.com/vlife-go/vlife/genome"
	"github.com/vlife-go/vlife/physics"
	"github.com/vlife-go/vlife/vmath"
)

// Update advances the simulation by one fixed step: it runs the physics
// engine's sub-steps, credits the contacts they surfaced, updates every
// cell, reconciles deaths and births, and tops up the population from the
// genome rank. Follows spec.md §4.6's five-step order exactly.
func (s *Simulator) Update() {
	dt := s.cfg.StepTime

	for _, h := range s.cells.Handles() {
		if c, ok := s.cells.Get(h); ok {
			c.BeginContactTick()
		}
	}

	contacts := s.engine.Update(dt, s.cfg.SubSteps, s.rng)
	s.creditContacts(contacts, dt)

	dead, children := s.updateCells(dt)

	s.reconcileDeaths(dead)
	s.reconcileBirths(children)
	s.topUpPopulation()

	s.time += dt
}

// particleOwner maps a physics particle handle back to the cell handle
// that owns it, built fresh each tick since the cell arena is the source
// of truth for ownership.
func (s *Simulator) particleOwner() map[physics.ParticleHandle]cell.Handle {
	owner := make(map[physics.ParticleHandle]cell.Handle)
	for _, h := range s.cells.Handles() {
		c, ok := s.cells.Get(h)
		if !ok {
			continue
		}
		owner[c.Center] = h
		for _, ph := range c.Particles {
			owner[ph] = h
		}
	}
	return owner
}

// colliderOwner maps a physics collider handle back to its owning cell.
func (s *Simulator) colliderOwner() map[physics.ColliderHandle]cell.Handle {
	owner := make(map[physics.ColliderHandle]cell.Handle)
	for _, h := range s.cells.Handles() {
		c, ok := s.cells.Get(h)
		if ok {
			owner[c.Collider] = h
		}
	}
	return owner
}

// creditContacts replays every contact physics surfaced against the cell
// that owns the implicated particle (and, for collider contacts, the cell
// that owns the other collider), crediting contact accumulators and
// running the cell-cell energy exchange rule.
func (s *Simulator) creditContacts(contacts []physics.Contact, dt float32) {
	owningCell := s.particleOwner()
	owningCollider := s.colliderOwner()

	for _, contact := range contacts {
		selfHandle, ok := owningCell[contact.Particle]
		if !ok {
			continue
		}
		self, ok := s.cells.Get(selfHandle)
		if !ok {
			continue
		}
		self.AddContact(contact.Normal)

		if contact.Kind != physics.ColliderContact {
			continue
		}
		otherHandle, ok := owningCollider[contact.Other]
		if !ok || otherHandle == selfHandle {
			continue
		}
		other, ok := s.cells.Get(otherHandle)
		if !ok {
			continue
		}
		other.AddContact(contact.Normal)
		cell.ExchangeEnergy(self, other, dt)
	}
}

// pendingBirth pairs a newly-divided sibling with the world position it
// should be spawned at.
type pendingBirth struct {
	child    *cell.Cell
	position vmath.Vector2
}

// updateCells runs every live cell's per-tick update, syncs its physics
// state, and collects the handles that died or divided this tick.
func (s *Simulator) updateCells(dt float32) (dead []cell.Handle, children []pendingBirth) {
	for _, h := range s.cells.Handles() {
		c, ok := s.cells.Get(h)
		if !ok {
			continue
		}

		input := s.sensorInput(c)
		c.Update(s.cfg, dt, input)
		s.syncPhysics(c)

		if c.IsDead(s.cfg) {
			dead = append(dead, h)
			continue
		}

		if c.CanDivide(s.cfg) {
			sibling, displacement := c.Divide(s.cfg, s.rng)
			s.syncPhysics(c)

			position := vmath.Vector2{}
			if p, ok := s.engine.Particles.Get(c.Center); ok {
				position = p.Position
			}
			position.Add(displacement)
			children = append(children, pendingBirth{child: sibling, position: position})
		}
	}
	return dead, children
}

func (s *Simulator) sensorInput(c *cell.Cell) cell.SensorInput {
	p, ok := s.engine.Particles.Get(c.Center)
	if !ok {
		return cell.SensorInput{}
	}
	return cell.SensorInput{
		Velocity:              p.Velocity(),
		AccelerationMagnitude: p.Acceleration.Length(),
		Mass:                  p.Mass,
	}
}

// syncPhysics writes a cell's intended state back onto its owning
// particle: radius set to the contracted size, velocity set to the
// average of the particle's current velocity and the cell's intended
// movement velocity, per spec.md §4.6 step 3.
func (s *Simulator) syncPhysics(c *cell.Cell) {
	p, ok := s.engine.Particles.Get(c.Center)
	if !ok {
		return
	}
	p.Radius = c.ContractedSize(s.cfg)

	current := p.Velocity()
	average := current
	average.Add(c.MovementVelocity)
	average.MultiplyScalar(0.5)
	*p = p.WithVelocity(average)
}

// reconcileDeaths removes every dead cell's physics resources and inserts
// its genome into the rank at its fitness score.
func (s *Simulator) reconcileDeaths(dead []cell.Handle) {
	for _, h := range dead {
		c, ok := s.cells.Get(h)
		if !ok {
			continue
		}
		builder := genome.NewBuilder()
		cell.Build(c, builder)
		s.rank.Insert(builder.Build(), c.Fitness())

		cell.ReleasePhysics(c, s.engine)
		s.cells.Remove(h)

		log.Debug("cell died", "run_id", s.RunID, "handle", h, "fitness", c.Fitness(), "rank_size", s.rank.Len())
	}
}

// reconcileBirths spawns every queued child at the position recorded by
// Divide.
func (s *Simulator) reconcileBirths(children []pendingBirth) {
	for _, birth := range children {
		s.spawn(birth.child, birth.position, vmath.Vector2{})
	}
}

// topUpPopulation adds cells until the population meets the configured
// minimum, synthesizing from the rank by crossover whenever it holds at
// least one genome (a lone genome crosses against itself, which is a
// valid no-op crossover), otherwise adding a fresh random cell.
func (s *Simulator) topUpPopulation() {
	for s.cells.Len() < s.cfg.MinCells {
		if s.rank.Len() >= 1 {
			a, _ := s.rank.ChooseRandomGenome(s.rng)
			b, _ := s.rank.ChooseRandomGenome(s.rng)
			child := genome.Crossover(a, b, s.rng)
			c := cell.FromGenome(s.cfg, child, s.rng)
			s.spawn(c, s.randomPosition(c), vmath.Vector2{})
			continue
		}
		s.CreateRandomCell()
	}
}
