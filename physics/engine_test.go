package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlife-go/vlife/vmath"
)

func newTestEngine() *Engine {
	return NewEngine(
		vmath.Vector2{X: 0, Y: 0},
		vmath.Vector2{X: 100, Y: 100},
		EngineConfig{Gravity: 10, Drag: 0, Restitution: 1, Friction: 0},
	)
}

func TestEngine_IntegrateAppliesGravity(t *testing.T) {
	e := newTestEngine()
	h := e.Particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 50, Y: 50}))

	e.Update(1.0, 1, rand.New(rand.NewSource(1)))

	p, _ := e.Particles.Get(h)
	assert.Greater(t, p.Position.Y, float32(50))
}

func TestEngine_BoundaryReflection(t *testing.T) {
	e := newTestEngine()
	p := NewParticle(1, 1, vmath.Vector2{X: 0, Y: 50})
	p = p.WithVelocity(vmath.Vector2{X: -5, Y: 0})
	h := e.Particles.Insert(p)

	contacts := e.Update(1.0/60.0, 1, rand.New(rand.NewSource(1)))

	found, _ := e.Particles.Get(h)
	assert.GreaterOrEqual(t, found.Position.X, float32(0))

	var boundaryHit bool
	for _, c := range contacts {
		if c.Kind == BoundaryContact && c.Particle == h {
			boundaryHit = true
		}
	}
	assert.True(t, boundaryHit)
}

func TestEngine_SpringPullsParticlesTogether(t *testing.T) {
	e := NewEngine(vmath.Vector2{X: -1000, Y: -1000}, vmath.Vector2{X: 1000, Y: 1000},
		EngineConfig{Gravity: 0, Drag: 0, Restitution: 1, Friction: 0})

	h1 := e.Particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 0, Y: 0}))
	h2 := e.Particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 10, Y: 0}))
	e.Springs.Insert(NewSpring(h1, h2, 1, 0.5))

	e.Update(1.0/60.0, 1, rand.New(rand.NewSource(1)))

	p1, _ := e.Particles.Get(h1)
	p2, _ := e.Particles.Get(h2)
	distance := p1.Position.DistanceTo(p2.Position)
	assert.Less(t, distance, float32(10))
}

func TestEngine_CollisionReportsContactsForPenetratingVertices(t *testing.T) {
	e := NewEngine(vmath.Vector2{X: -1000, Y: -1000}, vmath.Vector2{X: 1000, Y: 1000},
		EngineConfig{Gravity: 0, Drag: 0, Restitution: 0.5, Friction: 0})

	square := []vmath.Vector2{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
	ringHandles := make([]ParticleHandle, len(square))
	for i, pt := range square {
		ringHandles[i] = e.Particles.Insert(NewParticle(1, 1, pt))
	}
	e.Colliders.Insert(NewPolygonCollider(ringHandles, 0.5))

	// a second, smaller square whose center sits inside the first.
	intruderPoints := []vmath.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	intruderHandles := make([]ParticleHandle, len(intruderPoints))
	for i, pt := range intruderPoints {
		intruderHandles[i] = e.Particles.Insert(NewParticle(1, 0.1, pt))
	}
	e.Colliders.Insert(NewPolygonCollider(intruderHandles, 0.5))

	contacts := e.Update(1.0/60.0, 1, rand.New(rand.NewSource(1)))
	assert.NotEmpty(t, contacts)
}
