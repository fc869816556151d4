package mesh

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultWeldTolerance is the per-axis distance under which Weld merges points.
const DefaultWeldTolerance = 1e-9

// FromPolygons builds a mesh from indexed polygons: one point per position,
// shared by every polygon that refers to its index.
func FromPolygons(positions []mgl64.Vec3, polygons [][]int) (*Mesh, error) {
	m := New()
	ids := make([]VertexID, len(positions))
	for i, p := range positions {
		ids[i] = m.NewPoint(p)
	}

	if err := m.addPolygons(ids, polygons); err != nil {
		return nil, err
	}
	return m, nil
}

// Weld builds a mesh like FromPolygons, but positions closer than tolerance on
// every axis become a single point. It is the only place where coordinates
// decide vertex identity.
func Weld(positions []mgl64.Vec3, polygons [][]int, tolerance float64) (*Mesh, error) {
	m := New()
	w := welder{tolerance: tolerance}
	ids := make([]VertexID, len(positions))
	for i, p := range positions {
		if id, ok := w.find(p); ok {
			ids[i] = id
			continue
		}
		ids[i] = m.NewPoint(p)
		w.insert(p, ids[i])
	}

	if err := m.addPolygons(ids, polygons); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) addPolygons(ids []VertexID, polygons [][]int) error {
	for i, polygon := range polygons {
		points := make([]VertexID, len(polygon))
		for j, index := range polygon {
			if index < 0 || index >= len(ids) {
				return fmt.Errorf("polygon %d: %w: index %d out of %d positions", i, ErrUnknownVertex, index, len(ids))
			}
			points[j] = ids[index]
		}

		if err := m.AddFace(points); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	return nil
}

type weldEntry struct {
	position mgl64.Vec3
	id       VertexID
}

// welder keeps merged points sorted lexicographically, so every candidate
// within tolerance on X sits in one contiguous run.
type welder struct {
	tolerance float64
	entries   []weldEntry
}

func (w *welder) find(p mgl64.Vec3) (VertexID, bool) {
	start, _ := slices.BinarySearchFunc(w.entries, p.X()-w.tolerance, func(e weldEntry, x float64) int {
		if e.position.X() < x {
			return -1
		}
		return 1
	})

	for i := start; i < len(w.entries) && w.entries[i].position.X() <= p.X()+w.tolerance; i++ {
		if vec3Within(w.entries[i].position, p, w.tolerance) {
			return w.entries[i].id, true
		}
	}
	return NoVertex, false
}

func (w *welder) insert(p mgl64.Vec3, id VertexID) {
	k, _ := slices.BinarySearchFunc(w.entries, p, func(e weldEntry, target mgl64.Vec3) int {
		return compareVec3(e.position, target)
	})
	w.entries = slices.Insert(w.entries, k, weldEntry{position: p, id: id})
}

// compareVec3 orders vectors lexicographically (x, then y, then z).
func compareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// vec3Within reports whether a and b differ by at most tolerance on every axis.
func vec3Within(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance &&
		math.Abs(a.Y()-b.Y()) <= tolerance &&
		math.Abs(a.Z()-b.Z()) <= tolerance
}
