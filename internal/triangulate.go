package internal

import "sort"

// Incremental triangulation of a point set.
//
// Points are processed left to right. The already-triangulated region (the
// polygon-in-progress) only ever grows, and because every remaining point
// is to the right of it, the next point can only ever see hull edges. So
// each insertion recomputes the hull of the region and fans triangles from
// the new point to every hull edge it is clockwise of.
//
// The region is seeded with the maximal run of collinear points at the
// start of the sorted order. A collinear seed is a degenerate polygon (a
// segment chain), which is fine: its "hull" is the chain itself, and the
// first non-collinear point fans across it.

// Triangulate sorts points in place by x (ties by y) and returns the
// triangle index list over the sorted order. Callers that track point
// identities must re-derive them from the reordered slice.
//
// Fewer than three points, or a fully collinear set, triangulate to
// nothing.
func Triangulate(points []Vec2) IndexList {
	n := len(points)
	if n < 3 {
		return nil
	}

	sortPoints(points)
	indices := IndexList{}

	// Seed the polygon-in-progress with the initial collinear run.
	polygon := []Vec2{points[0]}
	firstIndex := 0
	var lastCollinear Vec2
	for i := 1; i < n; i++ {
		s := points[i-1].Sub(points[i])
		if i > 1 && !lastCollinear.Collinear(s) {
			firstIndex = i
			break
		}
		lastCollinear = s
		polygon = append(polygon, points[i])
	}
	if len(polygon) == n {
		// Every point is on one line; no triangle can be formed.
		return nil
	}

	for i := firstIndex; i < n; i++ {
		// Refresh the convex hull of the region.
		hullIndices := JarvisMarch(polygon)

		// Fan from the new point to every hull edge it can see. The point
		// joins the polygon at most once, no matter how many edges it sees.
		addedToPolygon := false
		hullSize := len(hullIndices)
		for j := 0; j < hullSize; j++ {
			indexB := hullIndices[j]
			indexA := hullIndices[CircularIndex(j+1, hullSize)]
			a := polygon[indexA]
			b := polygon[indexB]
			c := points[i]
			if IsCW(a, b, c) {
				indices = append(indices, indexA, indexB, i)
				if !addedToPolygon {
					polygon = append(polygon, c)
					addedToPolygon = true
				}
			}
		}
	}

	return indices
}

// Sort by increasing x, and by increasing y for points on the same
// vertical line (within tolerance).
func sortPoints(points []Vec2) {
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i], points[j]
		return a.X < b.X || Equal(a.X, b.X) && a.Y < b.Y
	})
}
