package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// VolumeAndCentroid decomposes the solid and returns its volume and centroid.
// The result is cached until the next face or edge insertion.
func (m *Mesh) VolumeAndCentroid() (float64, mgl64.Vec3, error) {
	if m.measured {
		return m.volume, m.centroid, nil
	}

	tetrahedrons, err := m.Tetrahedrons()
	if err != nil {
		return 0, mgl64.Vec3{}, err
	}

	volume, centroid, err := Aggregate(tetrahedrons)
	if err != nil {
		return 0, mgl64.Vec3{}, err
	}

	m.volume = volume
	m.centroid = centroid
	m.measured = true

	return volume, centroid, nil
}

// Aggregate sums the volumes of the tetrahedra and weights their centroids by
// volume. Tetrahedra of zero volume do not contribute to the centroid.
//
// Returns an error wrapping ErrDegenerateVolume when the total is zero.
func Aggregate(tetrahedrons []*Tetrahedron) (float64, mgl64.Vec3, error) {
	var volume float64
	var weighted mgl64.Vec3

	for _, t := range tetrahedrons {
		v := t.Volume()
		volume += v
		if v > 0 {
			weighted = weighted.Add(t.Centroid().Mul(v))
		}
	}

	if volume == 0 {
		return 0, mgl64.Vec3{}, fmt.Errorf("%w: %d tetrahedra", ErrDegenerateVolume, len(tetrahedrons))
	}

	centroid := mgl64.Vec3{
		weighted[0] / volume,
		weighted[1] / volume,
		weighted[2] / volume,
	}

	return volume, centroid, nil
}
