// Package shape builds closed polyhedral meshes for common solids.
//
// Each shape only uses the face insertion of package mesh and knows its exact
// volume and centroid, which makes shapes convenient fixtures for checking
// the decomposition.
package shape

import (
	"fmt"

	"github.com/akmonengine/volume/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a solid that can produce its boundary mesh.
type Shape interface {
	// Mesh builds the boundary of the shape in world space
	Mesh() (*mesh.Mesh, error)
	// Volume is the exact volume of the shape
	Volume() float64
	// Centroid is the exact centroid in world space
	Centroid() mgl64.Vec3
}

// Compile-time interface checks.
var (
	_ Shape = (*Cuboid)(nil)
	_ Shape = (*Pyramid)(nil)
	_ Shape = (*Prism)(nil)
	_ Shape = (*Octahedron)(nil)
)

// build transforms the local corners and inserts one face per polygon.
func build(name string, transform Transform, corners []mgl64.Vec3, polygons [][]int) (*mesh.Mesh, error) {
	positions := make([]mgl64.Vec3, len(corners))
	for i, corner := range corners {
		positions[i] = transform.Apply(corner)
	}

	m, err := mesh.FromPolygons(positions, polygons)
	if err != nil {
		return nil, fmt.Errorf("shape: %s: %w", name, err)
	}
	return m, nil
}

// Cuboid is an axis-aligned box with its minimum corner at the local origin.
type Cuboid struct {
	Size      mgl64.Vec3
	Transform Transform
}

// NewCuboid returns a box of the given dimensions with its minimum corner at the origin.
func NewCuboid(lx, ly, lz float64) *Cuboid {
	return &Cuboid{
		Size:      mgl64.Vec3{lx, ly, lz},
		Transform: NewTransform(),
	}
}

func (c *Cuboid) Mesh() (*mesh.Mesh, error) {
	x, y, z := c.Size.X(), c.Size.Y(), c.Size.Z()

	corners := []mgl64.Vec3{
		{0, 0, 0},
		{0, 0, z},
		{0, y, z},
		{0, y, 0},
		{x, 0, 0},
		{x, 0, z},
		{x, y, z},
		{x, y, 0},
	}
	polygons := [][]int{
		{0, 1, 2, 3}, // -X
		{4, 5, 6, 7}, // +X
		{0, 1, 5, 4}, // -Y
		{1, 2, 6, 5}, // +Z
		{2, 3, 7, 6}, // +Y
		{3, 0, 4, 7}, // -Z
	}

	return build("cuboid", c.Transform, corners, polygons)
}

func (c *Cuboid) Volume() float64 {
	return c.Size.X() * c.Size.Y() * c.Size.Z()
}

func (c *Cuboid) Centroid() mgl64.Vec3 {
	return c.Transform.Apply(c.Size.Mul(0.5))
}

// Pyramid has a square base of side Base on the local XY plane, from the
// origin, and its apex Height above the center of the base.
type Pyramid struct {
	Base      float64
	Height    float64
	Transform Transform
}

func NewPyramid(base, height float64) *Pyramid {
	return &Pyramid{Base: base, Height: height, Transform: NewTransform()}
}

func (p *Pyramid) Mesh() (*mesh.Mesh, error) {
	b, h := p.Base, p.Height

	corners := []mgl64.Vec3{
		{0, 0, 0},
		{b, 0, 0},
		{b, b, 0},
		{0, b, 0},
		{b / 2, b / 2, h},
	}
	polygons := [][]int{
		{0, 1, 2, 3},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}

	return build("pyramid", p.Transform, corners, polygons)
}

// Volume = base area * height / 3
func (p *Pyramid) Volume() float64 {
	return p.Base * p.Base * p.Height / 3.0
}

// Centroid sits a quarter of the height above the base.
func (p *Pyramid) Centroid() mgl64.Vec3 {
	return p.Transform.Apply(mgl64.Vec3{p.Base / 2, p.Base / 2, p.Height / 4})
}

// Prism is a right triangular prism: the triangle with legs A along X and B
// along Y, extruded by Length along Z.
type Prism struct {
	A, B      float64
	Length    float64
	Transform Transform
}

func NewPrism(a, b, length float64) *Prism {
	return &Prism{A: a, B: b, Length: length, Transform: NewTransform()}
}

func (p *Prism) Mesh() (*mesh.Mesh, error) {
	a, b, l := p.A, p.B, p.Length

	corners := []mgl64.Vec3{
		{0, 0, 0},
		{a, 0, 0},
		{0, b, 0},
		{0, 0, l},
		{a, 0, l},
		{0, b, l},
	}
	polygons := [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	}

	return build("prism", p.Transform, corners, polygons)
}

func (p *Prism) Volume() float64 {
	return p.A * p.B / 2.0 * p.Length
}

func (p *Prism) Centroid() mgl64.Vec3 {
	return p.Transform.Apply(mgl64.Vec3{p.A / 3, p.B / 3, p.Length / 2})
}

// Octahedron is the regular octahedron with vertices at distance Radius on
// each local axis.
type Octahedron struct {
	Radius    float64
	Transform Transform
}

func NewOctahedron(radius float64) *Octahedron {
	return &Octahedron{Radius: radius, Transform: NewTransform()}
}

func (o *Octahedron) Mesh() (*mesh.Mesh, error) {
	r := o.Radius

	corners := []mgl64.Vec3{
		{r, 0, 0},
		{-r, 0, 0},
		{0, r, 0},
		{0, -r, 0},
		{0, 0, r},
		{0, 0, -r},
	}
	polygons := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{0, 2, 5}, {2, 1, 5}, {1, 3, 5}, {3, 0, 5},
	}

	return build("octahedron", o.Transform, corners, polygons)
}

// Volume = (4/3) * r³
func (o *Octahedron) Volume() float64 {
	return 4.0 / 3.0 * o.Radius * o.Radius * o.Radius
}

func (o *Octahedron) Centroid() mgl64.Vec3 {
	return o.Transform.Apply(mgl64.Vec3{})
}
