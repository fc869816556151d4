package mesh

import "slices"

// FaceID addresses a face in the arena of a Mesh.
type FaceID int

// Face is a planar polygon of the boundary, in either winding order.
// A face is never modified once inserted.
type Face struct {
	Points []VertexID
}

// Contains reports whether v is one of the points of the face.
func (f Face) Contains(v VertexID) bool {
	return slices.Contains(f.Points, v)
}

// ContainsAll reports whether every given point is a point of the face.
func (f Face) ContainsAll(points []VertexID) bool {
	for _, p := range points {
		if !f.Contains(p) {
			return false
		}
	}
	return true
}
