package mesh

import (
	"fmt"
	"slices"
)

// Tetrahedrons decomposes the solid into tetrahedra whose volumes sum to the
// volume of the solid. The mesh is left untouched.
//
// The boundary must be closed, manifold and connected; otherwise an error
// wrapping ErrUnorderableStar may be returned.
func (m *Mesh) Tetrahedrons() ([]*Tetrahedron, error) {
	return m.Snapshot().decompose()
}

// decompose removes vertices one at a time, fanning the cavity each one
// leaves into tetrahedra. It destroys m.
func (m *Mesh) decompose() ([]*Tetrahedron, error) {
	var tetrahedrons []*Tetrahedron

	for len(m.order) >= 4 {
		apex := m.order[0]

		// Nothing left to fan around
		if m.Degree(apex) < 3 {
			break
		}

		if err := m.OrderEdges(apex); err != nil {
			return nil, fmt.Errorf("decompose: %w", err)
		}

		star := slices.Clone(m.vertices[apex].edges)
		p1 := m.edges[star[0]].Other(apex)
		for i := 0; i < len(star)-2; i++ {
			p2 := m.edges[star[i+1]].Other(apex)
			p3 := m.edges[star[i+2]].Other(apex)

			if err := m.capCavity(p1, p2, p3); err != nil {
				return nil, fmt.Errorf("decompose: cap around vertex %d: %w", apex, err)
			}

			tetrahedrons = append(tetrahedrons, NewTetrahedron(
				m.Position(apex), m.Position(p1), m.Position(p2), m.Position(p3),
			))
		}

		m.removeVertex(apex)
		m.pruneVertices()
	}

	return tetrahedrons, nil
}

// capCavity makes sure the triangle (p1, p2, p3) is part of the boundary, so
// the solid stays closed once the apex is removed.
func (m *Mesh) capCavity(p1, p2, p3 VertexID) error {
	if !m.ContainsEdge(p1, p2) {
		m.addEdge(p1, p2)
	}
	if !m.ContainsEdge(p3, p2) {
		m.addEdge(p3, p2)
	}
	if !m.ContainsEdge(p1, p3) {
		m.addEdge(p1, p3)
	}

	return m.AddFace([]VertexID{p1, p2, p3})
}
