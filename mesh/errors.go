package mesh

import "errors"

var (
	// ErrInsufficientPoints is returned by AddFace for polygons with fewer than 3 points.
	ErrInsufficientPoints = errors.New("mesh: a face needs at least 3 points")

	// ErrUnknownVertex is returned when a handle was not allocated by the mesh.
	ErrUnknownVertex = errors.New("mesh: unknown vertex")

	// ErrDegenerateEdge is returned when both endpoints of an edge are the same vertex.
	ErrDegenerateEdge = errors.New("mesh: edge endpoints must be distinct")

	// ErrUnorderableStar is returned when the edges around a vertex cannot be put
	// in rotational order from the faces incident to it. The boundary is either
	// non-manifold or missing a face; retrying with the same topology fails again.
	ErrUnorderableStar = errors.New("mesh: vertex star cannot be ordered")

	// ErrDegenerateVolume is returned when the tetrahedra of a mesh sum to zero volume.
	ErrDegenerateVolume = errors.New("mesh: total volume is zero")
)
