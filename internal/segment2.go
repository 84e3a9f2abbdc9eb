package internal

import "math"

// A line segment [a, b].
type Segment2 struct {
	A, B Vec2
}

// The direction of the segment.
func (s Segment2) AsVec2() Vec2 {
	return s.B.Sub(s.A)
}

// A segment with no length.
func (s Segment2) IsDegenerate() bool {
	return Equal(s.A.X, s.B.X) && Equal(s.A.Y, s.B.Y)
}

func (s Segment2) BoundingRect() Rect {
	return NewRect(s.A, s.B)
}

// YIntercept of the segment's supporting line. NaN for verticals.
func (s Segment2) YIntercept() float64 {
	v := s.AsVec2()
	if math.Abs(v.X) < Epsilon {
		return math.NaN()
	}
	return s.A.Y - v.Slope()*s.A.X
}

// Contains reports whether the point lies on the segment.
func (s Segment2) Contains(p Vec2) bool {
	if s.IsDegenerate() {
		return false
	}
	if !s.BoundingRect().ContainsPoint(p) {
		return false
	}

	v := s.AsVec2()
	if math.Abs(v.X) < Epsilon {
		// Vertical: the bounding rect already pinned the y range.
		return Equal(p.X, s.A.X)
	}
	return Equal(v.Slope()*p.X+s.YIntercept(), p.Y)
}

// Intersects reports whether the two segments share at least one point.
func (s Segment2) Intersects(other Segment2) bool {
	if s.IsDegenerate() || other.IsDegenerate() {
		return false
	}

	if s.AsVec2().Collinear(other.AsVec2()) {
		return s.Contains(other.A) || s.Contains(other.B)
	}

	p := s.Intersection(other)
	return s.Contains(p) && other.Contains(p)
}

// Intersection returns the point where the segments' supporting lines
// cross, or NaN coordinates for parallel lines. Combine with Contains
// (or use Intersects) when the crossing must lie on both segments.
func (s Segment2) Intersection(other Segment2) Vec2 {
	v1 := s.AsVec2()
	v2 := other.AsVec2()
	if v1.Collinear(v2) {
		return Vec2{math.NaN(), math.NaN()}
	}

	// A vertical line pins x directly; solve the other line at that x.
	if math.Abs(v1.X) < Epsilon {
		x := s.A.X
		return Vec2{x, v2.Slope()*(x-other.A.X) + other.A.Y}
	}
	if math.Abs(v2.X) < Epsilon {
		x := other.A.X
		return Vec2{x, v1.Slope()*(x-s.A.X) + s.A.Y}
	}

	a1, b1 := v1.Slope(), s.YIntercept()
	a2, b2 := v2.Slope(), other.YIntercept()
	x := (b2 - b1) / (a1 - a2)
	return Vec2{x, a1*x + b1}
}
