// Package physics implements the mass-spring particle solver and
// polygon-vs-polygon penetration resolution that drive the simulation's
// world. It follows g3n-engine's split of a Simulation owning typed
// object arenas (bodies, materials, constraints) into an Engine owning
// ObjectSet arenas of Particle, Spring and PolygonCollider.
package physics

import (
	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/vmath"

	"log/slog"
	"math/rand"
)

var log = slog.Default().With("component", "physics")

// logFatal logs msg at ERROR level with args, then panics, mirroring the
// "log and crash" contract numerical-invariant violations demand: a NaN
// or infinite particle state is a programming error, not a recoverable
// condition, so it must stop the simulation rather than propagate.
func logFatal(msg string, args ...any) {
	log.Error(msg, args...)
	panic(msg)
}

// ContactKind distinguishes the two contact variants the simulator must
// credit separately: a particle striking the world boundary, or a particle
// of one collider penetrating another collider's polygon.
type ContactKind int

const (
	BoundaryContact ContactKind = iota
	ColliderContact
)

// Contact is one penetration event surfaced by a sub-step, reported so the
// simulator can credit the owning cell's contact accumulator and (for
// ColliderContact) run its energy-exchange rule.
type Contact struct {
	Kind     ContactKind
	Particle ParticleHandle
	Other    ColliderHandle // zero value for BoundaryContact
	Normal   vmath.Vector2
}

// EngineConfig carries the physics tunables an Engine needs. It mirrors
// config.Config's physics fields without importing package config, keeping
// physics free of a dependency on the simulator's configuration layer.
type EngineConfig struct {
	Gravity     float32
	Drag        float32
	Restitution float32
	Friction    float32
}

// Engine owns the particle, spring and collider arenas and advances them
// through the four-phase sub-step order: integrate, world boundaries,
// spring relaxation, collision resolution.
type Engine struct {
	Particles *objectset.Set[Particle]
	Springs   *objectset.Set[Spring]
	Colliders *objectset.Set[PolygonCollider]

	WorldMin vmath.Vector2
	WorldMax vmath.Vector2
	Config   EngineConfig

	resolver CollisionResolver
}

// NewEngine returns an Engine bounded by [worldMin, worldMax], configured
// with cfg.
func NewEngine(worldMin, worldMax vmath.Vector2, cfg EngineConfig) *Engine {
	return &Engine{
		Particles: objectset.New[Particle](),
		Springs:   objectset.New[Spring](),
		Colliders: objectset.New[PolygonCollider](),
		WorldMin:  worldMin,
		WorldMax:  worldMax,
		Config:    cfg,
		resolver:  NewCollisionResolver(),
	}
}

// Update runs numSubSteps sub-steps of length dt/numSubSteps, in the fixed
// order integrate → boundaries → springs → collisions, and returns every
// contact surfaced across all of them. Phase order must never be
// reordered — see SPEC_FULL.md §5.
func (e *Engine) Update(dt float32, numSubSteps int, rng *rand.Rand) []Contact {
	if numSubSteps <= 0 {
		return nil
	}
	subDt := dt / float32(numSubSteps)

	var contacts []Contact
	for i := 0; i < numSubSteps; i++ {
		e.integrate(subDt)
		contacts = append(contacts, e.applyBoundaries()...)
		e.relaxSprings()
		contacts = append(contacts, e.resolveCollisions(rng)...)
	}
	return contacts
}

// integrate reconstructs each particle's velocity, applies gravity and a
// quadratic drag force, and advances position with the Verlet update
// position += velocity + acceleration*dt^2.
func (e *Engine) integrate(dt float32) {
	particles := e.Particles.Slice()
	for i := range particles {
		p := &particles[i]

		velocity := p.Velocity()
		speed := velocity.Length()

		var drag vmath.Vector2
		if speed > 0 {
			dragMag := 0.5 * e.Config.Drag * speed * speed
			drag = velocity
			drag.Normalize()
			drag.MultiplyScalar(dragMag / p.Mass)
		}

		p.Acceleration.Y += e.Config.Gravity
		p.Acceleration.Sub(drag)

		if vmath.IsNaN(p.Acceleration.X) || vmath.IsNaN(p.Acceleration.Y) {
			logFatal("non-finite acceleration for particle", "x", p.Acceleration.X, "y", p.Acceleration.Y)
		}

		next := p.Position
		next.Add(velocity)
		next.AddScaled(p.Acceleration, dt*dt)

		p.Previous = p.Position
		p.Position = next
		p.Acceleration = vmath.Vector2{}
	}
}

// applyBoundaries reflects any particle that has penetrated a world wall,
// scaling its reconstructed normal-velocity component by -restitution and
// its tangential component by (1-friction), and reports a BoundaryContact
// for each reflected particle.
func (e *Engine) applyBoundaries() []Contact {
	var contacts []Contact

	particles := e.Particles.Slice()
	for i := range particles {
		p := &particles[i]
		h := e.Particles.HandleAt(i)

		if normal, hit := e.reflect(p); hit {
			contacts = append(contacts, Contact{Kind: BoundaryContact, Particle: h, Normal: normal})
		}
	}
	return contacts
}

// reflect clamps p to the world bounds on each axis that is violated,
// reflecting its position and velocity about the wall plane it crossed.
// Returns the outward wall normal and whether any reflection occurred.
func (e *Engine) reflect(p *Particle) (vmath.Vector2, bool) {
	velocity := p.Velocity()
	hit := false
	var normal vmath.Vector2

	if p.Position.X < e.WorldMin.X {
		p.Position.X = 2*e.WorldMin.X - p.Position.X
		velocity.X = -velocity.X * e.Config.Restitution
		velocity.Y *= 1 - e.Config.Friction
		normal.X = 1
		hit = true
	} else if p.Position.X > e.WorldMax.X {
		p.Position.X = 2*e.WorldMax.X - p.Position.X
		velocity.X = -velocity.X * e.Config.Restitution
		velocity.Y *= 1 - e.Config.Friction
		normal.X = -1
		hit = true
	}

	if p.Position.Y < e.WorldMin.Y {
		p.Position.Y = 2*e.WorldMin.Y - p.Position.Y
		velocity.Y = -velocity.Y * e.Config.Restitution
		velocity.X *= 1 - e.Config.Friction
		normal.Y = 1
		hit = true
	} else if p.Position.Y > e.WorldMax.Y {
		p.Position.Y = 2*e.WorldMax.Y - p.Position.Y
		velocity.Y = -velocity.Y * e.Config.Restitution
		velocity.X *= 1 - e.Config.Friction
		normal.Y = -1
		hit = true
	}

	if !hit {
		return vmath.Vector2{}, false
	}

	p.Previous = p.Position
	p.Previous.Sub(velocity)
	return normal, true
}

// relaxSprings applies a mass-weighted positional correction to every
// spring's two particles, proportional to half the stiffness times the
// length error over the current distance times the combined inverse mass;
// each particle moves in proportion to its own inverse mass, so the heavier
// one moves less.
func (e *Engine) relaxSprings() {
	springs := e.Springs.Slice()
	for i := range springs {
		s := &springs[i]

		p1, p2, ok := e.Particles.GetPairMut(s.Particle1, s.Particle2)
		if !ok {
			continue
		}

		var axis vmath.Vector2
		axis.SubVectors(p2.Position, p1.Position)
		distance := axis.Length()
		if distance == 0 {
			continue
		}

		invMass1, invMass2 := p1.InvMass(), p2.InvMass()
		totalInvMass := invMass1 + invMass2
		if totalInvMass == 0 {
			continue
		}

		diff := distance - s.Length
		factor := s.Stiffness * diff / (distance * totalInvMass)

		var correction vmath.Vector2
		correction = axis
		correction.MultiplyScalar(0.5 * factor)

		p1.Position.AddScaled(correction, invMass1)
		p2.Position.AddScaled(correction, -invMass2)
	}
}

// resolveCollisions rebuilds every collider's polygon cache, then for
// every ordered pair of colliders whose bounding boxes overlap, resolves
// penetration in both directions: each vertex of the first collider that
// lies inside the second collider's polygon is pushed out along the
// closest eligible segment's outward normal.
func (e *Engine) resolveCollisions(rng *rand.Rand) []Contact {
	colliders := e.Colliders.Slice()
	for i := range colliders {
		colliders[i].rebuild(e.Particles)
	}

	var contacts []Contact
	n := len(colliders)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			a := &colliders[i]
			b := &colliders[j]
			if !a.IntersectsBoundingBox(b) {
				continue
			}
			bHandle := e.Colliders.HandleAt(j)
			contacts = append(contacts, e.resolvePair(a, b, bHandle, rng)...)
		}
	}
	return contacts
}

// resolvePair pushes every vertex of a that lies inside b's polygon back
// outside it, and reports a ColliderContact for each one resolved.
func (e *Engine) resolvePair(a, b *PolygonCollider, bHandle ColliderHandle, rng *rand.Rand) []Contact {
	var contacts []Contact
	bbox := b.polygon.BoundingBox()

	for _, particleHandle := range a.Particles {
		particle, ok := e.Particles.Get(particleHandle)
		if !ok {
			continue
		}
		point := particle.Position

		if !b.polygon.HasPointInside(point) {
			continue
		}

		segment, found := b.polygon.ClosestSegmentWithinBoundingBox(point, bbox, rng)
		if !found {
			continue
		}

		seg1Handle := b.Particles[segment.Index1]
		seg2Handle := b.Particles[segment.Index2]
		if seg1Handle == particleHandle || seg2Handle == particleHandle {
			continue
		}

		event := pointInPolygon{
			particle:  particleHandle,
			point:     point,
			segment1:  seg1Handle,
			segment2:  seg2Handle,
			segPoint1: segment.Point1,
			segPoint2: segment.Point2,
			ratio:     segment.Ratio,
			depth:     segment.Depth,
		}

		normal, ok := e.resolver.resolve(e.Particles, event)
		if !ok {
			continue
		}

		contacts = append(contacts, Contact{
			Kind:     ColliderContact,
			Particle: particleHandle,
			Other:    bHandle,
			Normal:   normal,
		})
	}

	return contacts
}
