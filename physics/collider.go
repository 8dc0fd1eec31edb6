package physics

import (
	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/vmath"
)

// SpringHandle references a Spring owned by an Engine.
type SpringHandle = objectset.Handle[Spring]

// ColliderHandle references a PolygonCollider owned by an Engine.
type ColliderHandle = objectset.Handle[PolygonCollider]

// PolygonCollider aggregates an ordered ring of particle handles into a
// closed polygon used for penetration queries. The polygon cache and its
// bounding box are rebuilt every sub-step from the particles' current
// positions — never memoized across sub-steps.
type PolygonCollider struct {
	Particles   []ParticleHandle
	Restitution float32
	polygon     *vmath.ClosedPolygon
}

// NewPolygonCollider returns a collider over the given ring of particle
// handles, in ring order.
func NewPolygonCollider(particles []ParticleHandle, restitution float32) PolygonCollider {
	return PolygonCollider{
		Particles:   particles,
		Restitution: restitution,
		polygon:     vmath.EmptyClosedPolygon(),
	}
}

// Polygon returns this collider's cached polygon geometry.
func (c *PolygonCollider) Polygon() *vmath.ClosedPolygon {
	return c.polygon
}

// rebuild refreshes this collider's polygon cache from the live positions
// of its particles, skipping any handle that no longer resolves (a
// reference miss is a silent no-op, per the engine's error model).
func (c *PolygonCollider) rebuild(particles *objectset.Set[Particle]) {
	points := make([]vmath.Vector2, 0, len(c.Particles))
	for _, h := range c.Particles {
		if p, ok := particles.Get(h); ok {
			points = append(points, p.Position)
		}
	}
	if c.polygon == nil {
		c.polygon = vmath.EmptyClosedPolygon()
	}
	c.polygon.Update(points)
}

// IntersectsBoundingBox reports whether this collider's cached bounding
// box overlaps other's.
func (c *PolygonCollider) IntersectsBoundingBox(other *PolygonCollider) bool {
	return c.polygon.BoundingBox().Intersects(other.polygon.BoundingBox())
}
