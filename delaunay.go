// Classic computational geometry over small interactive point sets: an
// incremental 2D triangulator with Delaunay edge flipping, plus the
// convex hull routines it grew up alongside (Jarvis march, Graham scan,
// and the seed of a 3D hull).
//
// This package converts a set of 2D points into a flat triangle index
// list suitable for use as a rendering index buffer, and can legalize
// that list so that no triangle's circumcircle contains another
// triangle's vertex.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Vec2 = internal.Vec2
type Vec3 = internal.Vec3
type Triangle = internal.Triangle
type IndexList = internal.IndexList

// Triangulate converts a point set into a triangle index list.
//
// The points are sorted in place by x (ties by y); the returned indices
// refer to the sorted order, so callers tracking point identities must
// re-derive them from the reordered slice. Point sets with fewer than
// three points, or with all points on one line, produce an empty list.
func Triangulate(points []Vec2) (result IndexList, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(points), nil
}

// FlipEdges legalizes a triangle index list: wherever two adjacent
// triangles violate the Delaunay in-circle criterion, their shared edge
// is flipped. Points are read but never reordered.
//
// This preserves the historical sweep in which only one triangle of each
// flip is re-examined, so a single pass may leave violations between
// triangles it already finalized; repeated application converges. Use
// FlipEdgesLawson for the stronger per-pass guarantee.
func FlipEdges(indices IndexList, points []Vec2) IndexList {
	return internal.FlipEdges(indices, points, false)
}

// FlipEdgesLawson is FlipEdges with both triangles of every flip kept on
// the worklist, in the manner of Lawson's algorithm.
func FlipEdgesLawson(indices IndexList, points []Vec2) IndexList {
	return internal.FlipEdges(indices, points, true)
}

// ConvexHull returns the indices of the convex hull of the point set by
// Jarvis march, winding clockwise from the leftmost point. The error is
// an internal invariant violation on pathological inputs (duplicate
// points can defeat the wrap step); well-formed inputs never fail.
func ConvexHull(points []Vec2) (hull []int, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	return internal.JarvisMarch(points), nil
}

// GrahamScan returns the convex hull as points, counterclockwise from
// the bottommost point. The input is not reordered.
func GrahamScan(points []Vec2) []Vec2 {
	return internal.GrahamScan(points)
}

// Hull3D returns the face index list of the 3D convex hull seed
// tetrahedron over the first four points.
func Hull3D(points []Vec3) IndexList {
	return internal.Hull3D(points)
}
