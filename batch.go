// Package volume measures polyhedral solids in batches.
//
// Every mesh of a Batch is decomposed on its own snapshot, so meshes can be
// measured concurrently without sharing state. See package mesh for the
// decomposition itself and package shape for ready-made solids.
package volume

import (
	"github.com/akmonengine/volume/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Result holds the measure of one mesh of a batch.
type Result struct {
	Volume       float64
	Centroid     mgl64.Vec3
	Tetrahedrons int
	// Err is set when the mesh could not be measured; the other fields are then zero
	Err error
}

type Batch struct {
	// Meshes to measure; a mesh may appear more than once
	Meshes  []*mesh.Mesh
	Workers int
}

// Add appends a mesh to the batch
func (b *Batch) Add(m *mesh.Mesh) {
	b.Meshes = append(b.Meshes, m)
}

// Remove removes the first occurrence of a mesh from the batch
func (b *Batch) Remove(m *mesh.Mesh) {
	k := -1
	for i, other := range b.Meshes {
		if other == m {
			k = i
			break
		}
	}

	if k != -1 {
		b.Meshes = append(b.Meshes[:k], b.Meshes[k+1:]...)
	}
}

type job struct {
	index int
	mesh  *mesh.Mesh
}

// Measure decomposes every mesh and returns one result per mesh, in order.
// Meshes are only read, so their cached measures are left untouched.
func (b *Batch) Measure() []Result {
	workers := max(DEFAULT_WORKERS, b.Workers)

	results := make([]Result, len(b.Meshes))
	jobs := make([]job, len(b.Meshes))
	for i, m := range b.Meshes {
		jobs[i] = job{index: i, mesh: m}
	}

	task(workers, jobs, func(j job) {
		results[j.index] = measure(j.mesh)
	})

	return results
}

func measure(m *mesh.Mesh) Result {
	tetrahedrons, err := m.Tetrahedrons()
	if err != nil {
		return Result{Err: err}
	}

	volume, centroid, err := mesh.Aggregate(tetrahedrons)
	if err != nil {
		return Result{Err: err}
	}

	return Result{
		Volume:       volume,
		Centroid:     centroid,
		Tetrahedrons: len(tetrahedrons),
	}
}
