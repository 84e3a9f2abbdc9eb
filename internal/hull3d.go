package internal

import "math"

// A 3D coordinate, used only by the spatial hull.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Hull3D returns the face index list of the convex hull seed: the
// tetrahedron over the first four points. Fewer than four points have no
// volume and yield nothing.
//
// TODO: insert the remaining points by removing the faces visible from
// each point and re-tiling the horizon loop against it.
func Hull3D(points []Vec3) IndexList {
	if len(points) < 4 {
		return nil
	}
	return IndexList{
		0, 1, 2,
		0, 1, 3,
		0, 2, 3,
		1, 2, 3,
	}
}

// FaceNormal of face i of the index list (not normalized).
func FaceNormal(faces IndexList, points []Vec3, i int) Vec3 {
	p1 := points[faces[3*i]]
	p2 := points[faces[3*i+1]]
	p3 := points[faces[3*i+2]]
	return p2.Sub(p1).Cross(p3.Sub(p1))
}

// ComputeNormals averages the normals of every face incident to each
// vertex, for shading. Vertices on no face keep a zero normal.
func ComputeNormals(faces IndexList, points []Vec3) []Vec3 {
	normals := make([]Vec3, len(points))
	for i := 0; i+2 < len(faces); i += 3 {
		normal := FaceNormal(faces, points, i/3)
		for _, vertex := range faces[i : i+3] {
			normals[vertex] = normals[vertex].Add(normal)
		}
	}
	for i, n := range normals {
		if n == (Vec3{}) {
			continue
		}
		normals[i] = n.Normalized()
	}
	return normals
}
