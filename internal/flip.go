package internal

// Delaunay legalization by edge flipping.
//
// The triangulator fans triangles off the hull with no regard for their
// circumcircles, so its output is full of skinny triangles. Flipping the
// shared edge of any adjacent pair that violates the in-circle criterion
// trades them for a fatter pair covering the same quad.

// FlipEdges returns a legalized copy of the index list. Points are read
// but never reordered.
//
// Triangles live on a worklist processed as a stack. Each popped triangle
// is tested against every triangle still on the worklist that shares an
// edge with it; the first violating pair is flipped, replacing both
// triangles with the two formed across the opposite vertices, winding
// preserved from the popped triangle. The flipped first triangle goes
// back on the worklist for another look. What happens to the second
// depends on requeueBoth:
//
// Historically only the first triangle was re-examined and the second was
// finalized immediately (requeueBoth false). That sweep is not a full
// Lawson fixed point — two triangles that were both finalized before ever
// meeting are never tested against each other — but repeated application
// converges. With requeueBoth true, both halves of every flip stay on the
// worklist, which legalizes more per pass at the same termination bound.
//
// Pairs inside the tolerance band around cocircular are left alone; so
// are triangles with no adjacent partner on the worklist.
func FlipEdges(indices IndexList, points []Vec2, requeueBoth bool) IndexList {
	worklist := TriangleStack(indices.Triangles())
	var finalized []Triangle

	for !worklist.Empty() {
		t1 := worklist.Pop()

		flipped := false
		for k := len(worklist) - 1; k >= 0; k-- {
			t2 := worklist[k]
			if !InCircleViolated(t1, t2, points) {
				continue
			}

			first, second := flip(t1, t2, points)
			worklist.Remove(k)
			worklist.Push(first)
			if requeueBoth {
				worklist.Push(second)
			} else {
				finalized = append([]Triangle{second}, finalized...)
			}
			flipped = true
			break
		}
		if !flipped {
			finalized = append([]Triangle{t1}, finalized...)
		}
	}

	result := make(IndexList, 0, len(finalized)*3)
	for _, t := range finalized {
		result = t.appendTo(result)
	}
	return result
}

// Replace the diagonal of the quad formed by t1 and t2 with the segment
// between their opposite vertices. Both replacement triangles take t1's
// winding.
func flip(t1, t2 Triangle, points []Vec2) (first, second Triangle) {
	edge, opposite, ok := t1.SharedEdge(t2)
	if !ok {
		fatalf("flip of non-adjacent triangles %s and %s", t1.Pretty(points), t2.Pretty(points))
	}
	winding := Orientation(points[t1.A], points[t1.B], points[t1.C])
	first = withWinding(Triangle{opposite[0], opposite[1], edge[0]}, winding, points)
	second = withWinding(Triangle{opposite[0], opposite[1], edge[1]}, winding, points)
	return first, second
}

// Swap two vertices if needed so the triangle winds the given way.
// Degenerate targets and degenerate triangles are left as they are.
func withWinding(t Triangle, winding Winding, points []Vec2) Triangle {
	if winding == Straight {
		return t
	}
	current := Orientation(points[t.A], points[t.B], points[t.C])
	if current == Straight || current == winding {
		return t
	}
	return Triangle{t.A, t.C, t.B}
}
