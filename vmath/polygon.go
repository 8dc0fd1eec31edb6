// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import "math/rand"

// segmentPoint is one vertex of a ClosedPolygon ring, together with the
// inverse length of the segment that starts at it and runs to the next
// vertex in ring order. Caching the inverse length avoids a division per
// candidate segment in ClosestSegmentWithinBoundingBox.
type segmentPoint struct {
	point      Vector2
	invLength  float32
}

// ClosedPolygon is an ordered ring of points, rebuilt every physics
// sub-step from the current positions of a PolygonCollider's particles.
// It caches the per-segment inverse length and the bounding box of its
// points so repeated queries within the same sub-step are cheap.
type ClosedPolygon struct {
	segments []segmentPoint
	bbox     AABB
}

// NewClosedPolygon returns a polygon built from points.
func NewClosedPolygon(points []Vector2) *ClosedPolygon {

	p := &ClosedPolygon{}
	p.Update(points)
	return p
}

// EmptyClosedPolygon returns a polygon with no points, ready for Update.
func EmptyClosedPolygon() *ClosedPolygon {

	return &ClosedPolygon{bbox: EmptyAABB()}
}

// BoundingBox returns the cached bounding box of this polygon's points.
func (p *ClosedPolygon) BoundingBox() AABB {

	return p.bbox
}

// Points returns this polygon's vertices in ring order.
func (p *ClosedPolygon) Points() []Vector2 {

	points := make([]Vector2, len(p.segments))
	for i, s := range p.segments {
		points[i] = s.point
	}
	return points
}

// Update rebuilds this polygon's segment cache and bounding box from
// points, in ring order. Must be called every sub-step before any query —
// the cache is never valid across sub-steps.
func (p *ClosedPolygon) Update(points []Vector2) {

	p.segments = p.segments[:0]
	builder := NewBuilder()

	if len(points) == 0 {
		p.bbox = builder.Build()
		return
	}

	first := points[0]
	builder.AddPoint(first)
	prev := first
	for _, point := range points[1:] {
		builder.AddPoint(point)
		invLength := 1 / prev.DistanceTo(point)
		p.segments = append(p.segments, segmentPoint{point: prev, invLength: invLength})
		prev = point
	}
	invLength := 1 / first.DistanceTo(prev)
	p.segments = append(p.segments, segmentPoint{point: prev, invLength: invLength})

	p.bbox = builder.Build()
}

// HasPointInside reports whether point lies strictly inside this polygon,
// using the standard ray-cast parity test with a rightward horizontal ray.
func (p *ClosedPolygon) HasPointInside(point Vector2) bool {

	count := 0
	n := len(p.segments)
	for i := 0; i < n; i++ {
		a := p.segments[i].point
		b := p.segments[(i+1)%n].point
		if (point.Y < a.Y) != (point.Y < b.Y) &&
			point.X < a.X+((point.Y-a.Y)/(b.Y-a.Y))*(b.X-a.X) {
			count++
		}
	}
	return count%2 == 1
}

// ClosestSegment describes the nearest eligible ring segment found by
// ClosestSegmentWithinBoundingBox.
type ClosestSegment struct {
	Index1, Index2 int
	Point1, Point2 Vector2
	Depth          float32 // signed perpendicular distance from the query point
	Ratio          float32 // projection ratio of the query point onto the segment, in [0, 1]
}

// ClosestSegmentWithinBoundingBox scans this polygon's ring segments and
// returns the minimum-depth segment that (a) has at least one endpoint
// inside bbox and (b) has the query point's projection ratio onto it in
// [0, 1]. Ties in depth are broken by a coin flip drawn from rng, matching
// the source's randomized tie-break.
func (p *ClosedPolygon) ClosestSegmentWithinBoundingBox(point Vector2, bbox AABB, rng *rand.Rand) (ClosestSegment, bool) {

	var closest ClosestSegment
	found := false

	n := len(p.segments)
	for index1 := 0; index1 < n; index1++ {
		index2 := (index1 + 1) % n
		s1 := p.segments[index1]
		s2 := p.segments[index2]

		if !bbox.ContainsPoint(s1.point) && !bbox.ContainsPoint(s2.point) {
			continue
		}

		depth, ratio, ok := distanceToSegment(point, s1.point, s2.point, s1.invLength)
		if !ok {
			continue
		}

		candidate := ClosestSegment{
			Index1: index1, Index2: index2,
			Point1: s1.point, Point2: s2.point,
			Depth: depth, Ratio: ratio,
		}

		switch {
		case !found:
			closest, found = candidate, true
		case candidate.Depth < closest.Depth:
			closest = candidate
		case candidate.Depth == closest.Depth:
			if rng.Intn(2) == 0 {
				closest = candidate
			}
		}
	}

	return closest, found
}

// distanceToSegment computes the signed perpendicular distance from point
// to the line through a-b, and the projection ratio of point onto the
// segment. Returns ok=false when the projection falls outside [0, 1].
//
// https://en.wikipedia.org/wiki/Distance_from_a_point_to_a_line#Line_defined_by_two_points
func distanceToSegment(point, a, b Vector2, invLength float32) (depth, ratio float32, ok bool) {

	var ab, ap Vector2
	ab.SubVectors(b, a)
	ap.SubVectors(point, a)

	ratio = ap.Dot(ab) * invLength * invLength
	if ratio < 0 || ratio > 1 {
		return 0, 0, false
	}

	depth = (ab.X*(a.Y-point.Y) - (a.X-point.X)*ab.Y) * invLength
	return depth, ratio, true
}
