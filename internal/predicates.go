package internal

import "math"

const Epsilon = 1e-5

// To compensate for imprecision in floats, equality is tolerance based.
// Every predicate in this package uses the same tolerance; mixing bands
// is how flip oscillation bugs happen.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

type Winding int

const (
	// Collinear within tolerance.
	Straight Winding = iota
	CW
	CCW
)

// Twice the signed area of triangle abc. Positive when abc winds
// counterclockwise.
func Shoelace(a, b, c Vec2) float64 {
	return a.X*b.Y - b.X*a.Y + b.X*c.Y - c.X*b.Y + c.X*a.Y - a.X*c.Y
}

func Orientation(a, b, c Vec2) Winding {
	s := Shoelace(a, b, c)
	if s > Epsilon {
		return CCW
	}
	if s < -Epsilon {
		return CW
	}
	return Straight
}

func IsCW(a, b, c Vec2) bool {
	return Orientation(a, b, c) == CW
}

func IsCCW(a, b, c Vec2) bool {
	return Orientation(a, b, c) == CCW
}

// InCircleViolated reports whether the edge shared by t1 and t2 violates
// the Delaunay criterion, i.e. whether the vertex of t2 opposite the
// shared edge lies strictly inside the circumcircle of t1.
//
// This is the classic determinant test: for rows [x, y, x²+y², 1] over
// t1's vertices and the query point, the determinant is positive exactly
// when the query point is inside the circumcircle of a counterclockwise
// t1. A clockwise t1 flips the sign. We evaluate the equivalent 3x3
// determinant obtained by subtracting the query row from the others.
//
// Results within the tolerance band count as "not violated": flipping a
// near-cocircular quad buys nothing and can cycle forever.
func InCircleViolated(t1, t2 Triangle, points []Vec2) bool {
	_, opposite, ok := t1.SharedEdge(t2)
	if !ok {
		return false
	}
	a, b, c := points[t1.A], points[t1.B], points[t1.C]
	d := points[opposite[1]]

	row := func(p Vec2) [3]float64 {
		dx := p.X - d.X
		dy := p.Y - d.Y
		return [3]float64{dx, dy, dx*(p.X+d.X) + dy*(p.Y+d.Y)}
	}
	m := [3][3]float64{row(a), row(b), row(c)}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	switch Orientation(a, b, c) {
	case CCW:
		return det > Epsilon
	case CW:
		return det < -Epsilon
	default:
		// A degenerate triangle has no circumcircle to violate.
		return false
	}
}
