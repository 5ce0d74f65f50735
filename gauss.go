package reactphysics3d

import "github.com/golang/geo/r3"

// IsMinkowskiFaceCapsuleVsEdge is the Gauss-map pruning test for §4.4: a
// polyhedron edge bounded by faces with outward normals n1, n2 needs to be
// tested as a capsule-segment x edge-direction axis only if the edge's arc
// on the unit sphere crosses the capsule's Gauss map (the great circle
// perpendicular to the capsule's axis s).
func IsMinkowskiFaceCapsuleVsEdge(capsuleAxis, n1, n2 r3.Vector) bool {
	return capsuleAxis.Dot(n1)*capsuleAxis.Dot(n2) < 0
}

// TestEdgesBuildMinkowskiFace is the Gauss-map pruning test for §4.5: edge 1
// (direction dir1, adjacent outward normals a, b, all in polyhedron 2's
// frame) and edge 2 (direction dir2, adjacent outward normals c, d, already
// negated by the caller since polyhedron 2's Gauss map flips in the
// Minkowski difference) form a face of the Minkowski difference iff all
// three conditions hold.
func TestEdgesBuildMinkowskiFace(a, b, c, d, dir1, dir2 r3.Vector) bool {
	cba := c.Dot(dir1)
	dba := d.Dot(dir1)
	adc := a.Dot(dir2)
	bdc := b.Dot(dir2)
	return cba*dba < 0 && adc*bdc < 0 && cba*bdc > 0
}
