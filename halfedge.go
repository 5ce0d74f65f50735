package reactphysics3d

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// HalfEdge is a single directed edge of a half-edge mesh. Half-edges are
// stored twin-adjacent: for an even index e, e and e+1 are always twins.
type HalfEdge struct {
	VertexIndex   uint32
	NextEdgeIndex uint32
	TwinEdgeIndex uint32
	FaceIndex     uint32
}

// Face is a single face of a half-edge mesh: its starting half-edge and the
// CCW (viewed from outside) list of vertex indices bounding it.
type Face struct {
	EdgeIndex uint32
	Vertices  []uint32
}

// HalfEdgeMesh is a read-only convex-polyhedron boundary representation.
// Faces, half-edges, and vertices are plain slices linked only by index,
// never by pointer, so the structure is trivially copyable and free of
// reference cycles.
type HalfEdgeMesh struct {
	vertices    []r3.Vector
	faces       []Face
	halfEdges   []HalfEdge
	faceNormals []r3.Vector
	centroid    r3.Vector
}

// NewHalfEdgeMesh builds a half-edge mesh from a vertex list and a list of
// faces, each given as a CCW (viewed from outside) list of vertex indices.
// It derives the half-edge twin/next links and per-face outward normals; it
// does not repair non-manifold or non-convex input.
func NewHalfEdgeMesh(vertices []r3.Vector, faceVertexLists [][]int) (*HalfEdgeMesh, error) {
	if len(vertices) < 4 {
		return nil, errors.Errorf("half-edge mesh needs at least 4 vertices, got %d", len(vertices))
	}
	if len(faceVertexLists) < 4 {
		return nil, errors.Errorf("half-edge mesh needs at least 4 faces, got %d", len(faceVertexLists))
	}

	m := &HalfEdgeMesh{vertices: vertices}
	var err error
	m.halfEdges, m.faces, err = buildTwinPairedHalfEdges(vertices, faceVertexLists)
	if err != nil {
		return nil, err
	}

	m.faceNormals = make([]r3.Vector, len(m.faces))
	for fi, f := range m.faces {
		m.faceNormals[fi] = faceNormalFromVertices(vertices, f.Vertices)
	}

	var sum r3.Vector
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	m.centroid = sum.Mul(1 / float64(len(vertices)))

	return m, nil
}

// buildTwinPairedHalfEdges builds half-edges for faceVertexLists such that
// every twin pair occupies consecutive final indices (2k, 2k+1), matching
// the HalfEdge doc comment's invariant. It does this in two passes: first
// collecting every directed edge in face-ring order, then walking that list
// and, for each not-yet-assigned edge, locating its reverse-direction
// partner and assigning both members of the pair their final slot together.
func buildTwinPairedHalfEdges(vertices []r3.Vector, faceVertexLists [][]int) ([]HalfEdge, []Face, error) {
	type provisional struct {
		from, to   uint32
		faceIndex  uint32
		nextInFace int // index into the provisional slice of the next edge in this face's ring
	}

	var prov []provisional
	faces := make([]Face, 0, len(faceVertexLists))

	for fi, verts := range faceVertexLists {
		if len(verts) < 3 {
			return nil, nil, errors.Errorf("face %d has fewer than 3 vertices", fi)
		}
		faceVerts := make([]uint32, len(verts))
		firstProv := len(prov)
		for k, vi := range verts {
			if vi < 0 || vi >= len(vertices) {
				return nil, nil, errors.Errorf("face %d references out-of-range vertex %d", fi, vi)
			}
			faceVerts[k] = uint32(vi)
		}
		for k := range verts {
			from := faceVerts[k]
			to := faceVerts[(k+1)%len(faceVerts)]
			nextInFace := firstProv
			if k+1 < len(verts) {
				nextInFace = firstProv + k + 1
			}
			prov = append(prov, provisional{from: from, to: to, faceIndex: uint32(fi), nextInFace: nextInFace})
		}
		faces = append(faces, Face{EdgeIndex: uint32(firstProv), Vertices: faceVerts})
	}

	type edgeKey struct{ from, to uint32 }
	pending := make(map[edgeKey]int, len(prov))
	finalIndex := make([]int, len(prov))
	for i := range finalIndex {
		finalIndex[i] = -1
	}

	pairCount := 0
	for i, p := range prov {
		if finalIndex[i] != -1 {
			continue
		}
		partner, ok := pending[edgeKey{p.to, p.from}]
		if !ok {
			pending[edgeKey{p.from, p.to}] = i
			continue
		}
		delete(pending, edgeKey{p.to, p.from})
		base := pairCount * 2
		finalIndex[partner] = base
		finalIndex[i] = base + 1
		pairCount++
	}
	if len(pending) > 0 {
		for key := range pending {
			return nil, nil, errors.Errorf("edge %d->%d has no twin; mesh is not a closed manifold", key.from, key.to)
		}
	}

	halfEdges := make([]HalfEdge, len(prov))
	for i, p := range prov {
		fi := finalIndex[i]
		halfEdges[fi] = HalfEdge{
			VertexIndex:   p.from,
			NextEdgeIndex: uint32(finalIndex[p.nextInFace]),
			TwinEdgeIndex: uint32(fi ^ 1),
			FaceIndex:     p.faceIndex,
		}
	}
	for fi := range faces {
		faces[fi].EdgeIndex = uint32(finalIndex[int(faces[fi].EdgeIndex)])
	}

	return halfEdges, faces, nil
}

func faceNormalFromVertices(vertices []r3.Vector, idx []uint32) r3.Vector {
	a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	return n.Normalize()
}

// NbFaces returns the number of faces in the mesh.
func (m *HalfEdgeMesh) NbFaces() int { return len(m.faces) }

// NbHalfEdges returns the number of half-edges in the mesh (always even).
func (m *HalfEdgeMesh) NbHalfEdges() int { return len(m.halfEdges) }

// NbVertices returns the number of vertices in the mesh.
func (m *HalfEdgeMesh) NbVertices() int { return len(m.vertices) }

// Face returns the face at index i.
func (m *HalfEdgeMesh) Face(i int) Face { return m.faces[i] }

// HalfEdge returns the half-edge at index i.
func (m *HalfEdgeMesh) HalfEdge(i int) HalfEdge { return m.halfEdges[i] }

// VertexPosition returns the local-space position of vertex i.
func (m *HalfEdgeMesh) VertexPosition(i int) r3.Vector { return m.vertices[i] }

// FaceNormal returns the outward unit normal of face i.
func (m *HalfEdgeMesh) FaceNormal(i int) r3.Vector { return m.faceNormals[i] }

// Centroid returns the mesh centroid.
func (m *HalfEdgeMesh) Centroid() r3.Vector { return m.centroid }

// AdjacentFaceNormals returns the outward normals of the two faces bounding
// half-edge pair e (e and e's twin), used by the Gauss-map pruning tests.
func (m *HalfEdgeMesh) AdjacentFaceNormals(e int) (n1, n2 r3.Vector) {
	he := m.halfEdges[e]
	twin := m.halfEdges[he.TwinEdgeIndex]
	return m.faceNormals[he.FaceIndex], m.faceNormals[twin.FaceIndex]
}

// EdgeVertices returns the two endpoint positions of half-edge e, in the
// order origin then destination.
func (m *HalfEdgeMesh) EdgeVertices(e int) (from, to r3.Vector) {
	he := m.halfEdges[e]
	twin := m.halfEdges[he.TwinEdgeIndex]
	return m.vertices[he.VertexIndex], m.vertices[twin.VertexIndex]
}
