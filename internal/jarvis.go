package internal

// Jarvis march (gift wrapping). This is the hull helper the incremental
// triangulator leans on: it recomputes the hull of the polygon-in-progress
// from scratch on every insertion, so it has to be robust against the
// junk that accumulates there — repeated points and collinear runs.

// JarvisMarch returns the indices of the convex hull of points, starting
// from the leftmost point (ties broken by lowest y) and winding clockwise.
// Indices refer to the input slice; callers map them back themselves.
//
// Fewer than two points have no hull. Degenerate inputs (duplicate points
// arranged just wrong) can make the wrap step orbit without ever closing;
// a hull can never have more vertices than the input has points, so we
// treat exceeding that bound as an invariant violation and throw.
func JarvisMarch(points []Vec2) []int {
	if len(points) < 2 {
		return nil
	}

	leftmost := leftmostPoint(points)
	hull := []int{}
	hullPoint := leftmost
	for {
		hull = append(hull, hullPoint)
		if len(hull) > len(points) {
			fatalf("hull walk failed to terminate over %d points", len(points))
		}

		// Pick the candidate making the smallest clockwise turn from the
		// current hull point. The seed is candidate 0; while the best
		// candidate is still the hull point itself, anything beats it.
		best := 0
		for checked := range points {
			toChecked := points[checked].Sub(points[hullPoint])
			toBest := points[best].Sub(points[hullPoint])
			if best == hullPoint || toChecked.SignedAngle(toBest) < 0 {
				best = checked
			}
		}
		hullPoint = best

		if hullPoint == leftmost {
			break
		}
	}
	return hull
}

func leftmostPoint(points []Vec2) int {
	leftmost := 0
	for i, p := range points {
		lp := points[leftmost]
		if p.X < lp.X || Equal(p.X, lp.X) && p.Y < lp.Y {
			leftmost = i
		}
	}
	return leftmost
}
