package reactphysics3d

import "github.com/golang/geo/r3"

// TestCollisionCapsuleVsConvexPolyhedron implements §4.2. info must carry
// exactly one Capsule and one ConvexPolyhedron (in either shape1/shape2
// slot); any other combination is a programmer error and panics.
func TestCollisionCapsuleVsConvexPolyhedron(info *NarrowPhaseInfo, manifold *ContactManifoldInfo) bool {
	capsule, isCapsuleShape1, poly, capsuleToWorld, polyToWorld := capsuleVsPolySetup(info)
	mesh := poly.Mesh

	polyToCapsule := capsuleToWorld.Inverse().Compose(polyToWorld)
	capsuleToPoly := polyToCapsule.Inverse()
	rot := polyToCapsule.RotationMatrix()
	capsuleAxis := r3.Vector{Y: 1}
	segP, segQ := capsule.SegmentPoints()

	isTriangle := poly.Type() == TriangleShape
	lf := info.LastFrameInfo

	minIsFace := true
	minFaceIndex := -1
	minEdgeIndex := -1
	minDepth := DecimalLargest
	var minAxisCapsuleSpace r3.Vector
	temporalCoherenceHit := false

	facePenetration := func(faceIndex int) (depth float64, normalCapsule, facePointCapsule r3.Vector) {
		normalCapsule = rot.MulVector(mesh.FaceNormal(faceIndex))
		facePointCapsule = polyToCapsule.TransformPoint(mesh.VertexPosition(int(mesh.Face(faceIndex).Vertices[0])))
		depth = faceVsCapsulePenetrationDepth(facePointCapsule, normalCapsule, capsule)
		return
	}

	edgePenetration := func(edgeIndex int) (depth float64, axis r3.Vector, ok bool) {
		from, to := mesh.EdgeVertices(edgeIndex)
		edgeDirCapsule := rot.MulVector(to.Sub(from))
		edgePointCapsule := polyToCapsule.TransformPoint(from)
		centroidCapsule := polyToCapsule.TransformPoint(mesh.Centroid())
		return edgeVsCapsulePenetrationDepth(capsuleAxis, edgeDirCapsule, edgePointCapsule, centroidCapsule, capsule)
	}

	if !isTriangle && lf.IsValid && lf.WasUsingSAT {
		if lf.SatIsAxisFacePolyhedron1 {
			cachedFace := int(lf.SatMinAxisFaceIndex)
			depth, normalCapsule, _ := facePenetration(cachedFace)
			if depth <= 0 {
				lf.setCapsuleFace(uint32(cachedFace), false)
				return false
			}
			if lf.WasColliding {
				minIsFace, minFaceIndex, minDepth, minAxisCapsuleSpace = true, cachedFace, depth, normalCapsule
				temporalCoherenceHit = true
			}
		} else {
			cachedEdge := int(lf.SatMinEdge1Index)
			depth, axis, ok := edgePenetration(cachedEdge)
			if ok {
				if depth <= 0 {
					lf.setCapsuleEdge(uint32(cachedEdge), false)
					return false
				}
				if lf.WasColliding {
					minIsFace, minEdgeIndex, minDepth, minAxisCapsuleSpace = false, cachedEdge, depth, axis
					temporalCoherenceHit = true
				}
			}
		}
	}

	if !temporalCoherenceHit {
		for i := 0; i < mesh.NbFaces(); i++ {
			depth, normalCapsule, _ := facePenetration(i)
			if depth <= 0 {
				if !isTriangle {
					lf.setCapsuleFace(uint32(i), false)
				}
				return false
			}
			if depth < minDepth {
				minDepth, minIsFace, minFaceIndex, minAxisCapsuleSpace = depth, true, i, normalCapsule
			}
		}

		n1c, n2c := r3.Vector{}, r3.Vector{}
		for e := 0; e < mesh.NbHalfEdges(); e += 2 {
			a1, a2 := mesh.AdjacentFaceNormals(e)
			n1c, n2c = rot.MulVector(a1), rot.MulVector(a2)
			if !IsMinkowskiFaceCapsuleVsEdge(capsuleAxis, n1c, n2c) {
				continue
			}
			depth, axis, ok := edgePenetration(e)
			if !ok {
				continue
			}
			if depth <= 0 {
				if !isTriangle {
					lf.setCapsuleEdge(uint32(e), false)
				}
				return false
			}
			if depth < minDepth {
				minDepth, minIsFace, minEdgeIndex, minAxisCapsuleSpace = depth, false, e, axis
			}
		}
	}

	var worldNormal r3.Vector
	var localPoly, localCapsule r3.Vector
	var local2Poly, local2Capsule r3.Vector
	twoPoints := false

	if minIsFace {
		normalPoly := mesh.FaceNormal(minFaceIndex)
		segPPoly := capsuleToPoly.TransformPoint(segP)
		segQPoly := capsuleToPoly.TransformPoint(segQ)
		planes := referenceFaceAdjacentPlanes(mesh, minFaceIndex)
		c1, c2 := ClipSegmentWithPlanes(segPPoly, segQPoly, planes)

		worldNormal = polyToWorld.RotationMatrix().MulVector(normalPoly).Mul(-1)
		if !isCapsuleShape1 {
			worldNormal = worldNormal.Mul(-1)
		}

		localPoly = c1.Add(normalPoly.Mul(minDepth - capsule.Radius))
		localCapsule = polyToCapsule.TransformPoint(c1).Sub(minAxisCapsuleSpace.Mul(capsule.Radius))
		local2Poly = c2.Add(normalPoly.Mul(minDepth - capsule.Radius))
		local2Capsule = polyToCapsule.TransformPoint(c2).Sub(minAxisCapsuleSpace.Mul(capsule.Radius))
		twoPoints = true
	} else {
		edgeFrom, edgeTo := mesh.EdgeVertices(minEdgeIndex)
		segPPoly := capsuleToPoly.TransformPoint(segP)
		segQPoly := capsuleToPoly.TransformPoint(segQ)
		cCapsulePoly, cEdgePoly := ClosestPointsBetweenSegments(segPPoly, segQPoly, edgeFrom, edgeTo)

		worldNormal = capsuleToWorld.RotationMatrix().MulVector(minAxisCapsuleSpace).Mul(-1)
		if !isCapsuleShape1 {
			worldNormal = worldNormal.Mul(-1)
		}

		localCapsule = polyToCapsule.TransformPoint(cCapsulePoly).Sub(minAxisCapsuleSpace.Mul(capsule.Radius))
		localPoly = cEdgePoly
	}

	var local1, local2 r3.Vector
	if isCapsuleShape1 {
		local1, local2 = localCapsule, localPoly
	} else {
		local1, local2 = localPoly, localCapsule
	}
	manifold.AddContactPoint(worldNormal, minDepth, local1, local2)

	if twoPoints {
		var l1b, l2b r3.Vector
		if isCapsuleShape1 {
			l1b, l2b = local2Capsule, local2Poly
		} else {
			l1b, l2b = local2Poly, local2Capsule
		}
		manifold.AddContactPoint(worldNormal, minDepth, l1b, l2b)
	}

	if !isTriangle {
		if minIsFace {
			lf.setCapsuleFace(uint32(minFaceIndex), true)
		} else {
			lf.setCapsuleEdge(uint32(minEdgeIndex), true)
		}
	}
	info.log("capsule-vs-poly collision", "faceAxis", minIsFace, "depth", minDepth, "temporalCoherence", temporalCoherenceHit)
	return true
}

// referenceFaceAdjacentPlanes builds the §4.6 clipping planes for face f:
// for each half-edge in the face's ring, the plane normal is the outward
// normal of that edge's twin face, and the plane point is the edge's
// origin vertex, all in the polyhedron's local space.
func referenceFaceAdjacentPlanes(mesh *HalfEdgeMesh, faceIndex int) []Plane {
	face := mesh.Face(faceIndex)
	var planes []Plane
	firstEdge := int(face.EdgeIndex)
	e := firstEdge
	for {
		he := mesh.HalfEdge(e)
		twin := mesh.HalfEdge(int(he.TwinEdgeIndex))
		planes = append(planes, Plane{
			Point:  mesh.VertexPosition(int(he.VertexIndex)),
			Normal: mesh.FaceNormal(int(twin.FaceIndex)),
		})
		e = int(he.NextEdgeIndex)
		if e == firstEdge {
			break
		}
	}
	return planes
}

func capsuleVsPolySetup(info *NarrowPhaseInfo) (capsule *Capsule, isCapsuleShape1 bool, poly *ConvexPolyhedron, capsuleToWorld, polyToWorld Transform) {
	if c, ok := info.Shape1.(*Capsule); ok {
		p, ok2 := info.Shape2.(*ConvexPolyhedron)
		if !ok2 {
			panic("TestCollisionCapsuleVsConvexPolyhedron: shape2 is not a convex polyhedron")
		}
		return c, true, p, info.Shape1ToWorld, info.Shape2ToWorld
	}
	if c, ok := info.Shape2.(*Capsule); ok {
		p, ok2 := info.Shape1.(*ConvexPolyhedron)
		if !ok2 {
			panic("TestCollisionCapsuleVsConvexPolyhedron: shape1 is not a convex polyhedron")
		}
		return c, false, p, info.Shape2ToWorld, info.Shape1ToWorld
	}
	panic("TestCollisionCapsuleVsConvexPolyhedron: neither shape is a capsule")
}
