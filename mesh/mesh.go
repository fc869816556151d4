// Package mesh implements a boundary representation of polyhedral solids and
// computes their volume and centroid by tetrahedralization through vertex removal.
//
// A Mesh owns an arena of vertices, edges and faces addressed by handles.
// Faces are inserted one polygon at a time with AddFace; every insertion
// deduplicates edges and records adjacency on the vertices. The mesh is then
// decomposed into tetrahedra:
//  1. Take the first remaining vertex and order its edges around it
//  2. Fan the cavity around it into triangles, emitting one tetrahedron per triangle
//  3. Cap the cavity with those triangles and remove the vertex
//  4. Remove vertices left with fewer than 3 edges, and repeat
//
// Decomposition runs on a snapshot, the mesh itself is never modified by it.
//
// Membership is by identity: two points with equal coordinates are two
// vertices. Merging coincident points is a separate pass, see Weld.
package mesh

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a polyhedral boundary made of vertices, edges and faces.
type Mesh struct {
	vertices []Vertex
	// members of the vertex set, in insertion order
	order []VertexID

	edges     []Edge
	edgeCount int

	faces []Face

	// Cached by VolumeAndCentroid, cleared by any face or edge insertion
	volume   float64
	centroid mgl64.Vec3
	measured bool
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// NewPoint allocates a point at the given position and returns its handle.
// The point joins the vertex set once a face or an edge uses it.
func (m *Mesh) NewPoint(position mgl64.Vec3) VertexID {
	m.vertices = append(m.vertices, Vertex{Position: position})
	return VertexID(len(m.vertices) - 1)
}

func (m *Mesh) valid(v VertexID) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

func (m *Mesh) checkVertex(v VertexID) error {
	if !m.valid(v) {
		return fmt.Errorf("%w: handle %d", ErrUnknownVertex, v)
	}
	return nil
}

// Vertex returns the vertex addressed by v.
func (m *Mesh) Vertex(v VertexID) Vertex {
	return m.vertices[v]
}

// Position returns the coordinates of v.
func (m *Mesh) Position(v VertexID) mgl64.Vec3 {
	return m.vertices[v].Position
}

// Degree returns the number of edges incident to v.
func (m *Mesh) Degree(v VertexID) int {
	return len(m.vertices[v].edges)
}

// IncidentEdges returns the edges of v, in rotational order after OrderEdges.
func (m *Mesh) IncidentEdges(v VertexID) []EdgeID {
	return slices.Clone(m.vertices[v].edges)
}

// IncidentFaces returns the faces v belongs to.
func (m *Mesh) IncidentFaces(v VertexID) []FaceID {
	return slices.Clone(m.vertices[v].faces)
}

// Edge returns the edge addressed by e.
func (m *Mesh) Edge(e EdgeID) Edge {
	return m.edges[e]
}

// Face returns the face addressed by f.
func (m *Mesh) Face(f FaceID) Face {
	return Face{Points: slices.Clone(m.faces[f].Points)}
}

// Vertices returns the members of the vertex set in insertion order.
func (m *Mesh) Vertices() []VertexID {
	return slices.Clone(m.order)
}

// Edges returns the edges currently in the mesh.
func (m *Mesh) Edges() []Edge {
	edges := make([]Edge, 0, m.edgeCount)
	for _, e := range m.edges {
		if e.alive {
			edges = append(edges, e)
		}
	}
	return edges
}

// Faces returns the faces of the mesh in insertion order.
func (m *Mesh) Faces() []Face {
	faces := make([]Face, len(m.faces))
	for i := range m.faces {
		faces[i] = m.Face(FaceID(i))
	}
	return faces
}

func (m *Mesh) VertexCount() int {
	return len(m.order)
}

func (m *Mesh) EdgeCount() int {
	return m.edgeCount
}

func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// ContainsVertex reports whether this exact vertex is a member of the vertex set.
// Coordinates are never compared.
func (m *Mesh) ContainsVertex(v VertexID) bool {
	return m.valid(v) && m.vertices[v].member
}

// ContainsEdge reports whether an edge joins a and b.
func (m *Mesh) ContainsEdge(a, b VertexID) bool {
	return m.findEdge(a, b) != NoEdge
}

func (m *Mesh) findEdge(a, b VertexID) EdgeID {
	if !m.valid(a) || !m.valid(b) {
		return NoEdge
	}
	for _, e := range m.vertices[a].edges {
		if m.edges[e].Other(a) == b {
			return e
		}
	}
	return NoEdge
}

// ContainsFace reports whether one face of the mesh holds every given point.
// The check is set containment, so a triangle lying on an existing quad is
// already contained.
func (m *Mesh) ContainsFace(points []VertexID) bool {
	if len(points) == 0 || !m.valid(points[0]) {
		return false
	}
	// a face holding every point is incident to the first one
	for _, f := range m.vertices[points[0]].faces {
		if m.faces[f].ContainsAll(points) {
			return true
		}
	}
	return false
}

func (m *Mesh) addVertex(v VertexID) {
	if m.vertices[v].member {
		return
	}
	m.vertices[v].member = true
	m.order = append(m.order, v)
}

// AddEdge joins a and b, adding both to the vertex set. Joining two vertices
// that already share an edge is a no-op.
func (m *Mesh) AddEdge(a, b VertexID) error {
	if err := m.checkVertex(a); err != nil {
		return err
	}
	if err := m.checkVertex(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: vertex %d", ErrDegenerateEdge, a)
	}

	m.addVertex(a)
	m.addVertex(b)
	if !m.ContainsEdge(a, b) {
		m.addEdge(a, b)
	}
	return nil
}

// addEdge appends the edge to the arena and to both endpoints, which
// invalidates their rotational order.
func (m *Mesh) addEdge(a, b VertexID) {
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, Edge{A: a, B: b, alive: true})
	m.edgeCount++

	m.vertices[a].edges = append(m.vertices[a].edges, id)
	m.vertices[a].ordered = false
	m.vertices[b].edges = append(m.vertices[b].edges, id)
	m.vertices[b].ordered = false

	m.measured = false
}

// AddFace inserts the polygon through the given points.
//
// Points not yet in the vertex set join it, and each point is joined to its
// cyclic predecessor unless an edge already exists. A polygon whose points all
// lie on one existing face is ignored.
func (m *Mesh) AddFace(points []VertexID) error {
	if len(points) < 3 {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}
	for i, p := range points {
		if err := m.checkVertex(p); err != nil {
			return err
		}
		if slices.Contains(points[:i], p) {
			return fmt.Errorf("%w: vertex %d repeated in face", ErrDegenerateEdge, p)
		}
	}

	if m.ContainsFace(points) {
		return nil
	}

	id := FaceID(len(m.faces))
	m.faces = append(m.faces, Face{Points: slices.Clone(points)})

	for i, p := range points {
		m.addVertex(p)

		previous := points[(i+len(points)-1)%len(points)]
		if !m.ContainsEdge(p, previous) {
			m.addEdge(p, previous)
		}

		m.vertices[p].faces = append(m.vertices[p].faces, id)
	}
	m.measured = false

	return nil
}

// Snapshot returns an independent deep copy of the mesh topology.
// Handles keep their meaning in the copy.
func (m *Mesh) Snapshot() *Mesh {
	s := &Mesh{
		vertices:  make([]Vertex, len(m.vertices)),
		order:     slices.Clone(m.order),
		edges:     slices.Clone(m.edges),
		edgeCount: m.edgeCount,
		faces:     make([]Face, len(m.faces)),
	}

	for i, v := range m.vertices {
		v.edges = slices.Clone(v.edges)
		v.faces = slices.Clone(v.faces)
		s.vertices[i] = v
	}
	for i, f := range m.faces {
		s.faces[i] = Face{Points: slices.Clone(f.Points)}
	}

	return s
}

// removeVertex deletes every edge of v, then v itself.
// Faces are kept: they only serve as the adjacency oracle of OrderEdges.
func (m *Mesh) removeVertex(v VertexID) {
	vertex := &m.vertices[v]
	for _, e := range vertex.edges {
		other := &m.vertices[m.edges[e].Other(v)]
		if k := slices.Index(other.edges, e); k != -1 {
			other.edges = slices.Delete(other.edges, k, k+1)
		}

		m.edges[e].alive = false
		m.edgeCount--
	}
	vertex.edges = nil
	vertex.member = false

	if k := slices.Index(m.order, v); k != -1 {
		m.order = slices.Delete(m.order, k, k+1)
	}
	m.measured = false
}

// pruneVertices removes vertices left with fewer than 3 edges until none remains.
func (m *Mesh) pruneVertices() {
	for {
		k := slices.IndexFunc(m.order, func(v VertexID) bool {
			return len(m.vertices[v].edges) < 3
		})
		if k == -1 {
			return
		}
		m.removeVertex(m.order[k])
	}
}
