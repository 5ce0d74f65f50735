package reactphysics3d

import "github.com/golang/geo/r3"

type axisKind int

const (
	axisFace1 axisKind = iota
	axisFace2
	axisEdgePair
)

// TestCollisionConvexPolyhedronVsConvexPolyhedron implements §4.3. Both
// shapes must be ConvexPolyhedron (or a Triangle, which is represented as
// one); any other combination is a programmer error and panics.
func TestCollisionConvexPolyhedronVsConvexPolyhedron(info *NarrowPhaseInfo, manifold *ContactManifoldInfo) bool {
	poly1, ok := info.Shape1.(*ConvexPolyhedron)
	if !ok {
		panic("TestCollisionConvexPolyhedronVsConvexPolyhedron: shape1 is not a convex polyhedron")
	}
	poly2, ok := info.Shape2.(*ConvexPolyhedron)
	if !ok {
		panic("TestCollisionConvexPolyhedronVsConvexPolyhedron: shape2 is not a convex polyhedron")
	}
	mesh1, mesh2 := poly1.Mesh, poly2.Mesh
	poly1ToWorld, poly2ToWorld := info.Shape1ToWorld, info.Shape2ToWorld

	poly1To2 := poly2ToWorld.Inverse().Compose(poly1ToWorld)
	poly2To1 := poly1To2.Inverse()

	isTriangle1 := poly1.Type() == TriangleShape
	isTriangle2 := poly2.Type() == TriangleShape
	anyTriangle := isTriangle1 || isTriangle2
	lf := info.LastFrameInfo

	faceProbe1 := func(faceIndex int) float64 {
		normalIn2 := poly1To2.RotationMatrix().MulVector(mesh1.FaceNormal(faceIndex))
		vertexIn2 := poly1To2.TransformPoint(mesh1.VertexPosition(int(mesh1.Face(faceIndex).Vertices[0])))
		return faceDirectionPenetrationDepth(normalIn2, vertexIn2, poly2)
	}
	faceProbe2 := func(faceIndex int) float64 {
		normalIn1 := poly2To1.RotationMatrix().MulVector(mesh2.FaceNormal(faceIndex))
		vertexIn1 := poly2To1.TransformPoint(mesh2.VertexPosition(int(mesh2.Face(faceIndex).Vertices[0])))
		return faceDirectionPenetrationDepth(normalIn1, vertexIn1, poly1)
	}
	edgeProbe := func(edge1, edge2 int) (depth float64, axis r3.Vector, ok bool) {
		from1, to1 := mesh1.EdgeVertices(edge1)
		a := poly1To2.TransformPoint(from1)
		b := poly1To2.TransformPoint(to1)
		c, d := mesh2.EdgeVertices(edge2)
		return edgeEdgePenetrationDepth(a, b, c, d, mesh2.Centroid())
	}

	minKind := axisFace1
	minIndex1, minIndex2 := -1, -1
	minDepth := DecimalLargest
	var minAxis r3.Vector
	temporalCoherenceHit := false

	if !anyTriangle && lf.IsValid && lf.WasUsingSAT {
		switch {
		case lf.SatIsAxisFacePolyhedron1:
			idx := int(lf.SatMinAxisFaceIndex)
			depth := faceProbe1(idx)
			if depth <= 0 {
				lf.setFace1(uint32(idx), false)
				return false
			}
			if lf.WasColliding {
				minKind, minIndex1, minDepth = axisFace1, idx, depth
				temporalCoherenceHit = true
			}
		case lf.SatIsAxisFacePolyhedron2:
			idx := int(lf.SatMinAxisFaceIndex)
			depth := faceProbe2(idx)
			if depth <= 0 {
				lf.setFace2(uint32(idx), false)
				return false
			}
			if lf.WasColliding {
				minKind, minIndex1, minDepth = axisFace2, idx, depth
				temporalCoherenceHit = true
			}
		default:
			e1, e2 := int(lf.SatMinEdge1Index), int(lf.SatMinEdge2Index)
			depth, axis, ok := edgeProbe(e1, e2)
			if ok {
				if depth <= 0 {
					lf.setEdgePair(uint32(e1), uint32(e2), false)
					return false
				}
				if lf.WasColliding {
					minKind, minIndex1, minIndex2, minDepth, minAxis = axisEdgePair, e1, e2, depth, axis
					temporalCoherenceHit = true
				}
			}
		}
	}

	if !temporalCoherenceHit {
		for i := 0; i < mesh1.NbFaces(); i++ {
			depth := faceProbe1(i)
			if depth <= 0 {
				if !anyTriangle {
					lf.setFace1(uint32(i), false)
				}
				return false
			}
			if depth < minDepth-SameSeparatingAxisBias {
				minDepth, minKind, minIndex1 = depth, axisFace1, i
			}
		}
		for j := 0; j < mesh2.NbFaces(); j++ {
			depth := faceProbe2(j)
			if depth <= 0 {
				if !anyTriangle {
					lf.setFace2(uint32(j), false)
				}
				return false
			}
			if depth < minDepth-SameSeparatingAxisBias {
				minDepth, minKind, minIndex1 = depth, axisFace2, j
			}
		}
		for e1 := 0; e1 < mesh1.NbHalfEdges(); e1 += 2 {
			a1, b1 := mesh1.AdjacentFaceNormals(e1)
			a1 = poly1To2.RotationMatrix().MulVector(a1)
			b1 = poly1To2.RotationMatrix().MulVector(b1)
			from1, to1 := mesh1.EdgeVertices(e1)
			dir1 := poly1To2.RotationMatrix().MulVector(to1.Sub(from1))
			for e2 := 0; e2 < mesh2.NbHalfEdges(); e2 += 2 {
				c2, d2 := mesh2.AdjacentFaceNormals(e2)
				from2, to2 := mesh2.EdgeVertices(e2)
				dir2 := to2.Sub(from2)
				if !TestEdgesBuildMinkowskiFace(a1, b1, c2.Mul(-1), d2.Mul(-1), dir1, dir2) {
					continue
				}
				depth, axis, ok := edgeProbe(e1, e2)
				if !ok {
					continue
				}
				if depth <= 0 {
					if !anyTriangle {
						lf.setEdgePair(uint32(e1), uint32(e2), false)
					}
					return false
				}
				if depth < minDepth-SameSeparatingAxisBias {
					minDepth, minKind, minIndex1, minIndex2, minAxis = depth, axisEdgePair, e1, e2, axis
				}
			}
		}
	}

	switch minKind {
	case axisFace1, axisFace2:
		buildFaceContact(minKind, minIndex1, minDepth, poly1, poly2, poly1ToWorld, poly2ToWorld, poly1To2, poly2To1, manifold)
		if !anyTriangle {
			if minKind == axisFace1 {
				lf.setFace1(uint32(minIndex1), true)
			} else {
				lf.setFace2(uint32(minIndex1), true)
			}
		}
	case axisEdgePair:
		from1, to1 := mesh1.EdgeVertices(minIndex1)
		a := poly1To2.TransformPoint(from1)
		b := poly1To2.TransformPoint(to1)
		c, d := mesh2.EdgeVertices(minIndex2)
		c1, c2 := ClosestPointsBetweenSegments(a, b, c, d)

		worldNormal := poly2ToWorld.RotationMatrix().MulVector(minAxis)
		localPoly1 := poly2To1.TransformPoint(c1)
		localPoly2 := c2
		manifold.AddContactPoint(worldNormal, minDepth, localPoly1, localPoly2)

		if !anyTriangle {
			lf.setEdgePair(uint32(minIndex1), uint32(minIndex2), true)
		}
	}
	info.log("poly-vs-poly collision", "axisKind", minKind, "depth", minDepth, "temporalCoherence", temporalCoherenceHit)
	return true
}

// buildFaceContact implements §4.7: clip the incident face against the
// reference face's adjacent half-spaces and emit one contact per kept
// vertex.
func buildFaceContact(
	refKind axisKind, refFaceIndex int, depth float64,
	poly1, poly2 *ConvexPolyhedron,
	poly1ToWorld, poly2ToWorld Transform,
	poly1To2, poly2To1 Transform,
	manifold *ContactManifoldInfo,
) {
	referenceIsPoly1 := refKind == axisFace1

	var referenceMesh, incidentMesh *HalfEdgeMesh
	var referenceToIncident, incidentToReference, referenceToWorld Transform
	if referenceIsPoly1 {
		referenceMesh, incidentMesh = poly1.Mesh, poly2.Mesh
		referenceToIncident, incidentToReference = poly1To2, poly2To1
		referenceToWorld = poly1ToWorld
	} else {
		referenceMesh, incidentMesh = poly2.Mesh, poly1.Mesh
		referenceToIncident, incidentToReference = poly2To1, poly1To2
		referenceToWorld = poly2ToWorld
	}

	referenceNormal := referenceMesh.FaceNormal(refFaceIndex)
	referenceNormalInIncident := referenceToIncident.RotationMatrix().MulVector(referenceNormal)

	incidentFaceIndex := 0
	bestDot := DecimalLargest
	for k := 0; k < incidentMesh.NbFaces(); k++ {
		d := incidentMesh.FaceNormal(k).Dot(referenceNormalInIncident)
		if d < bestDot {
			bestDot = d
			incidentFaceIndex = k
		}
	}

	incidentFace := incidentMesh.Face(incidentFaceIndex)
	incidentVerticesRef := make([]r3.Vector, len(incidentFace.Vertices))
	for i, vi := range incidentFace.Vertices {
		incidentVerticesRef[i] = incidentToReference.TransformPoint(incidentMesh.VertexPosition(int(vi)))
	}

	planes := referenceFaceAdjacentPlanes(referenceMesh, refFaceIndex)
	clipped := ClipPolygonWithPlanes(incidentVerticesRef, planes)

	firstEdgeIndex := int(referenceMesh.Face(refFaceIndex).EdgeIndex)
	referenceFaceVertex := referenceMesh.VertexPosition(int(referenceMesh.HalfEdge(firstEdgeIndex).VertexIndex))

	worldNormal := referenceToWorld.RotationMatrix().MulVector(referenceNormal)
	if !referenceIsPoly1 {
		worldNormal = worldNormal.Mul(-1)
	}

	for _, p := range clipped {
		if p.Sub(referenceFaceVertex).Dot(referenceNormal) >= 0 {
			continue
		}
		localRef := p.Add(referenceNormal.Mul(depth))
		localIncident := referenceToIncident.TransformPoint(p)
		if referenceIsPoly1 {
			manifold.AddContactPoint(worldNormal, depth, localRef, localIncident)
		} else {
			manifold.AddContactPoint(worldNormal, depth, localIncident, localRef)
		}
	}
}
