package internal

import "sort"

// GrahamScan returns the convex hull of points as a point slice, in
// counterclockwise order starting from the bottommost point (ties broken
// by lowest x). The input is not reordered.
//
// Unlike the march, this is a one-shot hull: sort the remaining points by
// polar angle around the bottommost point, then sweep once with a stack,
// popping while the top two points and the candidate make a right turn.
func GrahamScan(points []Vec2) []Vec2 {
	if len(points) < 2 {
		return nil
	}

	bottommost := bottommostPoint(points)
	bottom := points[bottommost]

	rest := make([]Vec2, 0, len(points)-1)
	for i, p := range points {
		if i == bottommost {
			continue
		}
		rest = append(rest, p)
	}
	sort.SliceStable(rest, func(i, j int) bool {
		v1 := rest[i].Sub(bottom)
		v2 := rest[j].Sub(bottom)
		return v1.SignedAngle(v2) > 0
	})

	hull := []Vec2{bottom}
	for _, p := range rest {
		for len(hull) > 1 && prodVec(hull[len(hull)-2], hull[len(hull)-1], p) < 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// Cross product of ab and ac; positive when abc turns left.
func prodVec(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func bottommostPoint(points []Vec2) int {
	bottommost := 0
	for i, p := range points {
		bp := points[bottommost]
		if p.Y < bp.Y || Equal(p.Y, bp.Y) && p.X < bp.X {
			bottommost = i
		}
	}
	return bottommost
}
