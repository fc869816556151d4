package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// tetrahedronFaces lists the corners of each face of a tetrahedron.
var tetrahedronFaces = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// Tetrahedron is a 4-vertex mesh produced by decomposition.
// Its volume and centroid are computed once, at construction.
type Tetrahedron struct {
	corners [4]mgl64.Vec3
	mesh    *Mesh

	centroid mgl64.Vec3
	volume   float64
}

// NewTetrahedron builds a tetrahedron from copies of the four corners.
// The corner order is kept: it is the row order of the volume determinant.
func NewTetrahedron(a, b, c, d mgl64.Vec3) *Tetrahedron {
	t := &Tetrahedron{
		corners: [4]mgl64.Vec3{a, b, c, d},
		mesh:    New(),
	}

	var ids [4]VertexID
	for i, corner := range t.corners {
		ids[i] = t.mesh.NewPoint(corner)
	}
	for _, face := range tetrahedronFaces {
		// four distinct handles from this mesh: AddFace cannot fail
		_ = t.mesh.AddFace([]VertexID{ids[face[0]], ids[face[1]], ids[face[2]]})
	}

	t.centroid = t.computeCentroid()
	t.volume = t.computeVolume()

	return t
}

// Corners returns the corners in construction order.
func (t *Tetrahedron) Corners() [4]mgl64.Vec3 {
	return t.corners
}

// Mesh returns the boundary of the tetrahedron.
func (t *Tetrahedron) Mesh() *Mesh {
	return t.mesh
}

// Centroid returns the arithmetic mean of the corners.
func (t *Tetrahedron) Centroid() mgl64.Vec3 {
	return t.centroid
}

// Volume returns the unsigned volume of the tetrahedron.
func (t *Tetrahedron) Volume() float64 {
	return t.volume
}

// SignedVolume returns det(b-a, c-a, d-a) / 6. Its sign depends on the corner
// order; aggregation never uses it.
func (t *Tetrahedron) SignedVolume() float64 {
	a, b, c, d := t.corners[0], t.corners[1], t.corners[2], t.corners[3]
	return mgl64.Mat3FromRows(b.Sub(a), c.Sub(a), d.Sub(a)).Det() / 6.0
}

func (t *Tetrahedron) computeCentroid() mgl64.Vec3 {
	var centroid mgl64.Vec3
	for _, corner := range t.corners {
		centroid[0] += corner[0] / 4
		centroid[1] += corner[1] / 4
		centroid[2] += corner[2] / 4
	}
	return centroid
}

// computeVolume uses the successive differences a-b, b-c, c-d as rows.
// Row operations make it equal to the textbook determinant up to sign and
// rounding; the absolute value drops the sign.
func (t *Tetrahedron) computeVolume() float64 {
	a, b, c, d := t.corners[0], t.corners[1], t.corners[2], t.corners[3]
	rows := mgl64.Mat3FromRows(a.Sub(b), b.Sub(c), c.Sub(d))

	return math.Abs(determinant3x3(rows)) / 6.0
}

// determinant3x3 expands along the first column.
func determinant3x3(m mgl64.Mat3) float64 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(1, 0)*(m.At(0, 1)*m.At(2, 2)-m.At(0, 2)*m.At(2, 1)) +
		m.At(2, 0)*(m.At(0, 1)*m.At(1, 2)-m.At(0, 2)*m.At(1, 1))
}
