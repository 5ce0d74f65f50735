package reactphysics3d

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestUnitCubeMeshTopology(t *testing.T) {
	mesh := newUnitCubeMesh()
	test.That(t, mesh.NbFaces(), test.ShouldEqual, 6)
	test.That(t, mesh.NbVertices(), test.ShouldEqual, 8)
	test.That(t, mesh.NbHalfEdges(), test.ShouldEqual, 24)

	for e := 0; e < mesh.NbHalfEdges(); e++ {
		he := mesh.HalfEdge(e)
		twin := mesh.HalfEdge(int(he.TwinEdgeIndex))
		test.That(t, int(twin.TwinEdgeIndex), test.ShouldEqual, e)
	}
}

func TestUnitCubeFaceNormalsAreAxisAligned(t *testing.T) {
	mesh := newUnitCubeMesh()
	seen := map[[3]int]bool{}
	for i := 0; i < mesh.NbFaces(); i++ {
		n := mesh.FaceNormal(i)
		test.That(t, n.Norm(), test.ShouldAlmostEqual, 1.0, 1e-9)
		key := [3]int{int(n.X), int(n.Y), int(n.Z)}
		seen[key] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 6)
}

func TestNewHalfEdgeMeshRejectsOpenMesh(t *testing.T) {
	// A single quad face has no twin half-edges: not a closed manifold.
	vertices := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	_, err := NewHalfEdgeMesh(vertices, [][]int{{0, 1, 2, 3}})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewHalfEdgeMeshRejectsTooFewVertices(t *testing.T) {
	_, err := NewHalfEdgeMesh([]r3.Vector{{}, {}, {}}, [][]int{{0, 1, 2}})
	test.That(t, err, test.ShouldNotBeNil)
}
