package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/volume"
	"github.com/akmonengine/volume/mesh"
	"github.com/akmonengine/volume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// Debugger prints the steps of a measure
type Debugger interface {
	DebugMesh(m *mesh.Mesh)
	DebugTetrahedron(i int, t *mesh.Tetrahedron)
	DebugResult(volume float64, centroid mgl64.Vec3)
}

type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugMesh(m *mesh.Mesh) {
	fmt.Printf("🧊 Mesh: %d vertices, %d edges, %d faces\n", m.VertexCount(), m.EdgeCount(), m.FaceCount())
	bounds := m.Bounds()
	fmt.Printf("   Bounds: %v -> %v\n", bounds.Min, bounds.Max)
}

func (d *SimpleDebugger) DebugTetrahedron(i int, t *mesh.Tetrahedron) {
	fmt.Printf("   Tetrahedron %d: corners=%v volume=%.6f centroid=%v\n", i, t.Corners(), t.Volume(), t.Centroid())
}

func (d *SimpleDebugger) DebugResult(volume float64, centroid mgl64.Vec3) {
	fmt.Printf("📐 Volume: %v\n", volume)
	fmt.Printf("   Centroid: %v\n", centroid)
}

// MeasureCuboid decomposes the reference box and prints every tetrahedron
func MeasureCuboid(debugger Debugger) error {
	cuboid := shape.NewCuboid(1, 1, 0.5)
	m, err := cuboid.Mesh()
	if err != nil {
		return err
	}
	debugger.DebugMesh(m)

	tetrahedrons, err := m.Tetrahedrons()
	if err != nil {
		return err
	}

	total := 0.0
	for i, t := range tetrahedrons {
		debugger.DebugTetrahedron(i, t)
		total += t.Volume()
	}
	fmt.Printf("   Sum of tetrahedra: %v (expected %v)\n", total, cuboid.Volume())

	volume, centroid, err := m.VolumeAndCentroid()
	if err != nil {
		return err
	}
	debugger.DebugResult(volume, centroid)

	return nil
}

// MeasureShapes measures a few solids concurrently
func MeasureShapes() error {
	shapes := []shape.Shape{
		shape.NewCuboid(2, 3, 4),
		shape.NewPyramid(2, 3),
		shape.NewPrism(1, 1, 2),
		shape.NewOctahedron(1),
	}

	batch := volume.Batch{Workers: 2}
	for _, s := range shapes {
		m, err := s.Mesh()
		if err != nil {
			return err
		}
		batch.Add(m)
	}

	fmt.Println("📦 Batch:")
	for i, result := range batch.Measure() {
		if result.Err != nil {
			fmt.Printf("   %T: %v\n", shapes[i], result.Err)
			continue
		}
		fmt.Printf("   %T: volume=%v (exact %v) centroid=%v, %d tetrahedra\n",
			shapes[i], result.Volume, shapes[i].Volume(), result.Centroid, result.Tetrahedrons)
	}

	return nil
}

func main() {
	if err := MeasureCuboid(&SimpleDebugger{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println()
	if err := MeasureShapes(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
