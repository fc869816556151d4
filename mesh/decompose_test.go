package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var tetrahedronCorners = []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

var tetrahedronPolygons = [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

var pyramidCorners = []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}, {1, 1, 3}}

var pyramidPolygons = [][]int{{0, 1, 2, 3}, {0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}}

var prismCorners = []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 2}, {1, 0, 2}, {0, 1, 2}}

var prismPolygons = [][]int{{0, 1, 2}, {3, 4, 5}, {0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5}}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name             string
		corners          []mgl64.Vec3
		polygons         [][]int
		wantTetrahedrons int
		wantVolume       float64
	}{
		{name: "box", corners: boxCorners(1, 1, 0.5), polygons: boxFaces, wantTetrahedrons: 7, wantVolume: 0.5},
		{name: "box 2x3x4", corners: boxCorners(2, 3, 4), polygons: boxFaces, wantTetrahedrons: 7, wantVolume: 24},
		{name: "tetrahedron", corners: tetrahedronCorners, polygons: tetrahedronPolygons, wantTetrahedrons: 1, wantVolume: 1.0 / 6.0},
		{name: "square pyramid", corners: pyramidCorners, polygons: pyramidPolygons, wantTetrahedrons: 2, wantVolume: 4},
		{name: "triangular prism", corners: prismCorners, polygons: prismPolygons, wantTetrahedrons: 3, wantVolume: 1},
		{name: "octahedron", corners: octahedronCorners(1), polygons: octahedronFaces, wantTetrahedrons: 4, wantVolume: 4.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromPolygons(tt.corners, tt.polygons)
			if err != nil {
				t.Fatalf("FromPolygons() error = %v", err)
			}

			work := m.Snapshot()
			tetrahedrons, err := work.decompose()
			if err != nil {
				t.Fatalf("decompose() error = %v", err)
			}

			if len(tetrahedrons) != tt.wantTetrahedrons {
				t.Errorf("decompose() returned %d tetrahedra, want %d", len(tetrahedrons), tt.wantTetrahedrons)
			}
			if work.VertexCount() >= 4 {
				t.Errorf("decompose() left %d vertices, want fewer than 4", work.VertexCount())
			}

			var volume float64
			for _, tetra := range tetrahedrons {
				if tetra.Volume() < 0 {
					t.Errorf("tetrahedron volume %v is negative", tetra.Volume())
				}
				volume += tetra.Volume()
			}
			if !floatEqual(volume, tt.wantVolume, 1e-9*tt.wantVolume) {
				t.Errorf("sum of volumes = %v, want %v", volume, tt.wantVolume)
			}
		})
	}
}

func TestTetrahedronsLeavesMeshUntouched(t *testing.T) {
	m := newBox(t, 1, 2, 3)
	before := m.Snapshot()

	for i := 0; i < 2; i++ {
		tetrahedrons, err := m.Tetrahedrons()
		if err != nil {
			t.Fatalf("Tetrahedrons() error = %v", err)
		}
		if len(tetrahedrons) != 7 {
			t.Errorf("Tetrahedrons() returned %d tetrahedra, want 7", len(tetrahedrons))
		}
	}

	if m.VertexCount() != before.VertexCount() || m.EdgeCount() != before.EdgeCount() || m.FaceCount() != before.FaceCount() {
		t.Errorf("counts = (%d, %d, %d), want (%d, %d, %d)",
			m.VertexCount(), m.EdgeCount(), m.FaceCount(),
			before.VertexCount(), before.EdgeCount(), before.FaceCount())
	}
	for _, v := range m.Vertices() {
		got, want := m.IncidentEdges(v), before.IncidentEdges(v)
		if len(got) != len(want) {
			t.Fatalf("vertex %d: %d edges, want %d", v, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("vertex %d: edge order changed to %v, want %v", v, got, want)
				break
			}
		}
	}
}

func TestDecomposeCapsCavity(t *testing.T) {
	m := newBox(t, 1, 1, 1)
	work := m.Snapshot()

	apex := work.Vertices()[0]
	if err := work.OrderEdges(apex); err != nil {
		t.Fatalf("OrderEdges() error = %v", err)
	}
	star := work.IncidentEdges(apex)
	p1 := work.Edge(star[0]).Other(apex)
	p2 := work.Edge(star[1]).Other(apex)
	p3 := work.Edge(star[2]).Other(apex)

	if err := work.capCavity(p1, p2, p3); err != nil {
		t.Fatalf("capCavity() error = %v", err)
	}

	if !work.ContainsEdge(p1, p2) || !work.ContainsEdge(p2, p3) || !work.ContainsEdge(p1, p3) {
		t.Errorf("capCavity() did not join the three far endpoints")
	}
	if !work.ContainsFace([]VertexID{p1, p2, p3}) {
		t.Errorf("capCavity() did not add the cap face")
	}
	if work.FaceCount() != 7 || work.EdgeCount() != 15 {
		t.Errorf("counts = (%d faces, %d edges), want (7, 15)", work.FaceCount(), work.EdgeCount())
	}

	// Capping again changes nothing
	if err := work.capCavity(p1, p2, p3); err != nil {
		t.Fatalf("capCavity() error = %v", err)
	}
	if work.FaceCount() != 7 || work.EdgeCount() != 15 {
		t.Errorf("counts after second cap = (%d faces, %d edges), want (7, 15)", work.FaceCount(), work.EdgeCount())
	}
}

func TestDecomposeStopsOnLowDegree(t *testing.T) {
	// Four points on a path: nothing to fan
	m := New()
	var ids []VertexID
	for i := 0; i < 4; i++ {
		ids = append(ids, m.NewPoint(mgl64.Vec3{float64(i), 0, 0}))
	}
	for i := 1; i < len(ids); i++ {
		if err := m.AddEdge(ids[i-1], ids[i]); err != nil {
			t.Fatalf("AddEdge() error = %v", err)
		}
	}

	tetrahedrons, err := m.Tetrahedrons()
	if err != nil {
		t.Fatalf("Tetrahedrons() error = %v", err)
	}
	if len(tetrahedrons) != 0 {
		t.Errorf("Tetrahedrons() returned %d tetrahedra, want 0", len(tetrahedrons))
	}
}
