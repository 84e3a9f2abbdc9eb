package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/delaunay/dbg"
)

// A triangle is an unordered triple of indices into a point slice. The
// stored order carries no winding guarantee; derive winding through
// Orientation when it matters. Identity and adjacency treat the three
// indices as a set.
type Triangle struct {
	A, B, C int
}

// A flat index list; every consecutive run of three indices is one
// triangle. This is the only artifact the renderer ever consumes.
type IndexList []int

func (list IndexList) Triangles() []Triangle {
	triangles := make([]Triangle, 0, len(list)/3)
	for i := 0; i+2 < len(list); i += 3 {
		triangles = append(triangles, Triangle{list[i], list[i+1], list[i+2]})
	}
	return triangles
}

func (t Triangle) appendTo(list IndexList) IndexList {
	return append(list, t.A, t.B, t.C)
}

func (t Triangle) sortedIndices() [3]int {
	s := [3]int{t.A, t.B, t.C}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	return s
}

// Set equality over the index triples.
func (t Triangle) SameTriangle(other Triangle) bool {
	return t.sortedIndices() == other.sortedIndices()
}

func (t Triangle) contains(index int) bool {
	return t.A == index || t.B == index || t.C == index
}

// SharedEdge finds the edge common to two triangles. Two triangles are
// adjacent when they share exactly two indices. On success, edge holds
// the two shared indices and opposite holds t's and other's non-shared
// vertices, in that order.
func (t Triangle) SharedEdge(other Triangle) (edge [2]int, opposite [2]int, ok bool) {
	shared := make([]int, 0, 3)
	tOpposite := -1
	for _, index := range []int{t.A, t.B, t.C} {
		if other.contains(index) {
			shared = append(shared, index)
		} else {
			tOpposite = index
		}
	}
	if len(shared) != 2 {
		return edge, opposite, false
	}
	otherOpposite := -1
	for _, index := range []int{other.A, other.B, other.C} {
		if !t.contains(index) {
			otherOpposite = index
		}
	}
	if otherOpposite == -1 {
		// The triangles share all three indices.
		return edge, opposite, false
	}
	return [2]int{shared[0], shared[1]}, [2]int{tOpposite, otherOpposite}, true
}

// Pretty formats the triangle with a stable random name, colored by its
// winding over the given points. Debugging only.
func (t Triangle) Pretty(points []Vec2) string {
	name := dbg.Name(t)
	switch Orientation(points[t.A], points[t.B], points[t.C]) {
	case CCW:
		name = aurora.Green(name).String()
	case CW:
		name = aurora.Red(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return fmt.Sprintf("%s(%d %d %d)", name, t.A, t.B, t.C)
}

type TriangleStack []Triangle

func (s *TriangleStack) Push(t Triangle) {
	*s = append(*s, t)
}

func (s *TriangleStack) Pop() Triangle {
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

func (s *TriangleStack) Remove(i int) {
	*s = append((*s)[:i], (*s)[i+1:]...)
}

func (s *TriangleStack) Empty() bool {
	return len(*s) == 0
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
