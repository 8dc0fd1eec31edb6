// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

// AABB represents a 2-D axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type AABB struct {
	Min Vector2
	Max Vector2
}

// NewAABB creates a new AABB from its minimum and maximum coordinates.
func NewAABB(min, max Vector2) AABB {

	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an AABB set to the empty state (Min at +Infinity,
// Max at -Infinity), ready to be grown with ExpandByPoint.
func EmptyAABB() AABB {

	b := AABB{}
	b.MakeEmpty()
	return b
}

// MakeEmpty resets this bounding box to the empty state.
// Returns the pointer to this updated bounding box.
func (b *AABB) MakeEmpty() *AABB {

	b.Min.X = Infinity
	b.Min.Y = Infinity
	b.Max.X = -Infinity
	b.Max.Y = -Infinity
	return b
}

// Empty returns whether this bounding box is empty.
func (b AABB) Empty() bool {

	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint grows this bounding box, if needed, to include point.
// Returns the pointer to this updated bounding box.
func (b *AABB) ExpandByPoint(point Vector2) *AABB {

	b.Min.X = Min(b.Min.X, point.X)
	b.Min.Y = Min(b.Min.Y, point.Y)
	b.Max.X = Max(b.Max.X, point.X)
	b.Max.Y = Max(b.Max.Y, point.Y)
	return b
}

// Center returns the center point of this bounding box.
func (b AABB) Center() Vector2 {

	var c Vector2
	return *c.AddVectors(b.Min, b.Max).MultiplyScalar(0.5)
}

// Size returns the size of this bounding box: the vector from its minimum
// point to its maximum point.
func (b AABB) Size() Vector2 {

	var s Vector2
	return *s.SubVectors(b.Max, b.Min)
}

// ContainsPoint returns whether this bounding box contains point.
func (b AABB) ContainsPoint(point Vector2) bool {

	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// Intersects reports whether this bounding box and other overlap.
//
// Per spec, two boxes intersect iff 2*|c1-c2| < s1+s2 componentwise, where
// c is each box's center and s its size — equivalent to the standard
// separating-axis test but expressed the way the source computes it.
func (b AABB) Intersects(other AABB) bool {

	c1, c2 := b.Center(), other.Center()
	s1, s2 := b.Size(), other.Size()

	dx := Abs(c1.X - c2.X)
	dy := Abs(c1.Y - c2.Y)

	return 2*dx < s1.X+s2.X && 2*dy < s1.Y+s2.Y
}

// Builder accumulates points into an AABB, mirroring the source's
// AxisAlignedBoundingBox::builder() pattern: start empty, add every point
// of the polygon being rebuilt, then Build() the final box.
type Builder struct {
	box AABB
}

// NewBuilder returns a new, empty AABB builder.
func NewBuilder() Builder {

	b := Builder{}
	b.box.MakeEmpty()
	return b
}

// AddPoint grows the box under construction to include point.
func (b *Builder) AddPoint(point Vector2) {

	b.box.ExpandByPoint(point)
}

// Build returns the accumulated bounding box.
func (b Builder) Build() AABB {

	return b.box
}
