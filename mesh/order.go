package mesh

import (
	"fmt"
	"slices"
)

// OrderEdges sorts the edges of v in rotational order around it.
//
// Two edges are neighbours when their far endpoints lie together on a face
// incident to v. Starting from the first incident edge, the next edge is the
// first unordered one that is a neighbour of the last ordered edge. The order
// is cached until a new edge is attached to v.
//
// Returns an error wrapping ErrUnorderableStar when no neighbour is found
// before every edge is ordered.
func (m *Mesh) OrderEdges(v VertexID) error {
	if !m.ContainsVertex(v) {
		return fmt.Errorf("%w: handle %d is not in the vertex set", ErrUnknownVertex, v)
	}

	vertex := &m.vertices[v]
	if vertex.ordered {
		return nil
	}
	if len(vertex.edges) == 0 {
		vertex.ordered = true
		return nil
	}

	last := vertex.edges[0]
	ordered := make([]EdgeID, 1, len(vertex.edges))
	ordered[0] = last

	for len(ordered) != len(vertex.edges) {
		next := NoEdge
		for _, candidate := range vertex.edges {
			if slices.Contains(ordered, candidate) {
				continue
			}
			if m.sameFace(v, m.edges[last].Other(v), m.edges[candidate].Other(v)) {
				next = candidate
				break
			}
		}

		if next == NoEdge {
			return fmt.Errorf("%w: vertex %d at %v, %d of %d edges ordered",
				ErrUnorderableStar, v, vertex.Position, len(ordered), len(vertex.edges))
		}

		last = next
		ordered = append(ordered, next)
	}

	vertex.edges = ordered
	vertex.ordered = true

	return nil
}

// sameFace reports whether a face incident to v holds p, and q as well
// unless q is NoVertex.
func (m *Mesh) sameFace(v, p, q VertexID) bool {
	for _, f := range m.vertices[v].faces {
		face := m.faces[f]
		if face.Contains(p) && (q == NoVertex || face.Contains(q)) {
			return true
		}
	}
	return false
}
