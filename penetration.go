package reactphysics3d

import "github.com/golang/geo/r3"

// faceVsSpherePenetrationDepth computes the §4.1 per-face probe: face f's
// outward normal and any face vertex, against a sphere center, all in the
// polyhedron's local space.
func faceVsSpherePenetrationDepth(mesh *HalfEdgeMesh, faceIndex int, sphereCenter r3.Vector, sphereRadius float64) float64 {
	normal := mesh.FaceNormal(faceIndex)
	face := mesh.Face(faceIndex)
	vertex := mesh.VertexPosition(int(face.Vertices[0]))
	return vertex.Sub(sphereCenter).Dot(normal) + sphereRadius
}

// faceVsCapsulePenetrationDepth computes the §4.2 per-face probe, all
// quantities already expressed in capsule-local space.
func faceVsCapsulePenetrationDepth(facePoint, faceNormal r3.Vector, capsule *Capsule) float64 {
	support := capsule.SupportPointWithMargin(faceNormal.Mul(-1))
	return facePoint.Sub(support).Dot(faceNormal)
}

// edgeVsCapsulePenetrationDepth computes the §4.2 per-edge probe. capsuleAxis,
// edgeDir, edgePoint, and polyhedronCentroid are all in capsule-local space.
// ok is false when the candidate axis is degenerate (near-parallel vectors)
// and must be skipped.
func edgeVsCapsulePenetrationDepth(capsuleAxis, edgeDir, edgePoint, polyhedronCentroid r3.Vector, capsule *Capsule) (depth float64, axis r3.Vector, ok bool) {
	ax := capsuleAxis.Cross(edgeDir)
	if ax.Dot(ax) < parallelAxisEpsSq {
		return 0, r3.Vector{}, false
	}
	ax = ax.Normalize()
	if ax.Dot(edgePoint.Sub(polyhedronCentroid)) < 0 {
		ax = ax.Mul(-1)
	}
	support := capsule.SupportPointWithMargin(ax.Mul(-1))
	depth = edgePoint.Sub(support).Dot(ax)
	return depth, ax, true
}

// faceDirectionPenetrationDepth computes the §4.3 face-direction probe: a
// face of polyhedron A with outward normal and vertex already expressed in
// polyhedron B's local space, against B's support function.
func faceDirectionPenetrationDepth(faceNormalInB, faceVertexInB r3.Vector, other *ConvexPolyhedron) float64 {
	support := other.SupportPointWithoutMargin(faceNormalInB.Mul(-1))
	return faceVertexInB.Sub(support).Dot(faceNormalInB)
}

// edgeEdgePenetrationDepth computes the §4.3 edge-edge probe. a, b (edge 1
// endpoints) and c, d (edge 2 endpoints) and centroid2 are all expressed in
// polyhedron 2's local space. ok is false when the edges are parallel.
func edgeEdgePenetrationDepth(a, b, c, d, centroid2 r3.Vector) (depth float64, axis r3.Vector, ok bool) {
	d1 := b.Sub(a)
	d2 := d.Sub(c)
	if AreParallelVectors(d1, d2) {
		return DecimalLargest, r3.Vector{}, false
	}
	ax := d1.Cross(d2).Normalize()
	if ax.Dot(c.Sub(centroid2)) > 0 {
		ax = ax.Mul(-1)
	}
	depth = -ax.Dot(c.Sub(a))
	return depth, ax, true
}
