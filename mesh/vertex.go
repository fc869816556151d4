package mesh

import "github.com/go-gl/mathgl/mgl64"

// VertexID addresses a vertex in the arena of a Mesh.
// Handles are stable: removing a vertex never renumbers the others.
type VertexID int

// NoVertex stands for the absence of a vertex.
const NoVertex VertexID = -1

// Vertex is a point of the boundary together with its adjacency.
// Two vertices are different entities even when their positions are equal.
type Vertex struct {
	Position mgl64.Vec3

	// incident edges, in rotational order once ordered is set
	edges []EdgeID
	faces []FaceID

	ordered bool
	member  bool
}

// Degree returns the number of edges incident to the vertex.
func (v Vertex) Degree() int {
	return len(v.edges)
}

// Member reports whether the vertex belongs to the vertex set of its mesh.
// Points allocated with NewPoint become members when a face or edge uses them.
func (v Vertex) Member() bool {
	return v.member
}
