package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/vmath"
)

func TestCollisionResolver_PushesPointAlongNormal(t *testing.T) {
	particles := objectset.New[Particle]()
	point := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 0, Y: 0}))
	seg1 := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: -5, Y: 5}))
	seg2 := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 5, Y: 5}))

	resolver := NewCollisionResolver()
	event := pointInPolygon{
		particle:  point,
		point:     vmath.Vector2{X: 0, Y: 0},
		segment1:  seg1,
		segment2:  seg2,
		segPoint1: vmath.Vector2{X: -5, Y: 5},
		segPoint2: vmath.Vector2{X: 5, Y: 5},
		depth:     2,
	}

	normal, ok := resolver.resolve(particles, event)
	assert.True(t, ok)

	p, _ := particles.Get(point)
	assert.NotEqual(t, vmath.Vector2{}, p.Position)
	assert.InDelta(t, 2.0/3.0, p.Position.Dot(normal), 1e-5)
}

func TestCollisionResolver_SegmentEndpointsUnchanged(t *testing.T) {
	particles := objectset.New[Particle]()
	point := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 0, Y: 0}))
	seg1 := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: -5, Y: 5}))
	seg2 := particles.Insert(NewParticle(1, 1, vmath.Vector2{X: 5, Y: 5}))

	before1, _ := particles.Get(seg1)
	before2, _ := particles.Get(seg2)
	pos1, pos2 := before1.Position, before2.Position

	resolver := NewCollisionResolver()
	resolver.resolve(particles, pointInPolygon{
		particle:  point,
		segment1:  seg1,
		segment2:  seg2,
		segPoint1: vmath.Vector2{X: -5, Y: 5},
		segPoint2: vmath.Vector2{X: 5, Y: 5},
		depth:     2,
	})

	after1, _ := particles.Get(seg1)
	after2, _ := particles.Get(seg2)
	assert.Equal(t, pos1, after1.Position)
	assert.Equal(t, pos2, after2.Position)
}

func TestCollisionResolver_MissingParticleReturnsNotOK(t *testing.T) {
	particles := objectset.New[Particle]()
	point := particles.Insert(NewParticle(1, 1, vmath.Vector2{}))
	seg1 := particles.Insert(NewParticle(1, 1, vmath.Vector2{}))
	var missing ParticleHandle

	resolver := NewCollisionResolver()
	_, ok := resolver.resolve(particles, pointInPolygon{particle: point, segment1: seg1, segment2: missing})
	assert.False(t, ok)
}
