package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Bounds returns the box enclosing the vertex set. An empty mesh has a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.order) == 0 {
		return AABB{}
	}

	first := m.Position(m.order[0])
	bounds := AABB{Min: first, Max: first}
	for _, v := range m.order[1:] {
		p := m.Position(v)
		for i := 0; i < 3; i++ {
			bounds.Min[i] = math.Min(bounds.Min[i], p[i])
			bounds.Max[i] = math.Max(bounds.Max[i], p[i])
		}
	}

	return bounds
}
