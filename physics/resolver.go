package physics

import (
	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/vmath"
)

// pointInPolygon is one elementary penetration event: particleHandle (a
// vertex of one collider) lies inside the polygon of another collider,
// and its closest eligible boundary segment runs from segment1 to
// segment2.
type pointInPolygon struct {
	particle  ParticleHandle
	point     vmath.Vector2
	segment1  ParticleHandle
	segment2  ParticleHandle
	segPoint1 vmath.Vector2
	segPoint2 vmath.Vector2
	ratio     float32
	depth     float32
}

// CollisionResolver resolves point-in-polygon contacts by mass-weighted
// displacement of the penetrating point only; the segment's two endpoints
// are left unchanged. This is the engine's stated canonical behavior — see
// SPEC_FULL.md §9 — not a partially-implemented feature.
type CollisionResolver struct{}

// NewCollisionResolver returns a resolver. It carries no state: all inputs
// come from the collision event and the particle arena.
func NewCollisionResolver() CollisionResolver {
	return CollisionResolver{}
}

// resolve moves the penetrating particle outward along the contact normal
// and returns that normal, for the caller to fold into contact-reporting
// stats. Returns ok=false if any of the three particles involved is a
// reference miss.
func (CollisionResolver) resolve(particles *objectset.Set[Particle], c pointInPolygon) (normal vmath.Vector2, ok bool) {

	point, okP := particles.Get(c.particle)
	seg1, seg2, okSeg := particles.GetPairMut(c.segment1, c.segment2)
	if !okP || !okSeg {
		return vmath.Vector2{}, false
	}

	invMass0 := point.InvMass()
	invMass1 := seg1.InvMass()
	invMass2 := seg2.InvMass()
	totalInvMass := invMass0 + invMass1 + invMass2

	var dir vmath.Vector2
	dir.SubVectors(c.segPoint2, c.segPoint1)
	dir.Normalize()
	// Normal: the segment's direction rotated a quarter turn, (-dir.Y, dir.X).
	// Scaled by the signed depth, it moves the point toward the segment's
	// line, out of the polygon.
	normal = vmath.Vector2{X: -dir.Y, Y: dir.X}

	particleDepth := c.depth * invMass0 / totalInvMass

	newPoint, _ := particles.Get(c.particle)
	newPoint.Position.AddScaled(normal, particleDepth)

	return normal, true
}
