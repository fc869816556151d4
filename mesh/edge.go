package mesh

// EdgeID addresses an edge in the arena of a Mesh.
type EdgeID int

// NoEdge stands for the absence of an edge.
const NoEdge EdgeID = -1

// Edge is an unordered pair of distinct vertices.
type Edge struct {
	A, B VertexID

	alive bool
}

// Other returns the endpoint of the edge that is not v.
func (e Edge) Other(v VertexID) VertexID {
	if v == e.A {
		return e.B
	}
	return e.A
}

// Has reports whether v is one of the endpoints.
func (e Edge) Has(v VertexID) bool {
	return e.A == v || e.B == v
}

// Alive reports whether the edge is still part of its mesh.
func (e Edge) Alive() bool {
	return e.alive
}
