package reactphysics3d

import "github.com/golang/geo/r3"

// TestCollisionSphereVsConvexPolyhedron implements §4.1. info must carry
// exactly one Sphere and one ConvexPolyhedron (in either shape1/shape2
// slot); any other combination is a programmer error and panics.
func TestCollisionSphereVsConvexPolyhedron(info *NarrowPhaseInfo, manifold *ContactManifoldInfo) bool {
	sphere, isSphereShape1, poly, sphereToWorld, polyToWorld := sphereVsPolySetup(info)
	mesh := poly.Mesh

	polyToWorldInv := polyToWorld.Inverse()
	sphereCenterInPoly := polyToWorldInv.TransformPoint(sphereToWorld.Position)

	isTriangle := poly.Type() == TriangleShape
	lf := info.LastFrameInfo

	minIndex := -1
	minDepth := DecimalLargest
	temporalCoherenceHit := false

	if !isTriangle && lf.IsValid && lf.WasUsingSAT {
		cachedIndex := int(lf.SatMinAxisFaceIndex)
		depth := faceVsSpherePenetrationDepth(mesh, cachedIndex, sphereCenterInPoly, sphere.Radius)
		if depth <= 0 {
			cacheSpherePolyFace(lf, isSphereShape1, uint32(cachedIndex), false)
			info.log("sphere-vs-poly separated on cached axis", "face", cachedIndex)
			return false
		}
		if lf.WasColliding {
			minIndex = cachedIndex
			minDepth = depth
			temporalCoherenceHit = true
		}
	}

	if !temporalCoherenceHit {
		for i := 0; i < mesh.NbFaces(); i++ {
			depth := faceVsSpherePenetrationDepth(mesh, i, sphereCenterInPoly, sphere.Radius)
			if depth <= 0 {
				if !isTriangle {
					cacheSpherePolyFace(lf, isSphereShape1, uint32(i), false)
				}
				info.log("sphere-vs-poly separated", "face", i)
				return false
			}
			if depth < minDepth {
				minDepth = depth
				minIndex = i
			}
		}
	}

	faceNormal := mesh.FaceNormal(minIndex)
	worldNormal := polyToWorld.RotationMatrix().MulVector(faceNormal).Mul(-1)
	if !isSphereShape1 {
		worldNormal = worldNormal.Mul(-1)
	}

	contactSphereLocal := sphereToWorld.Inverse().TransformPoint(worldNormal.Mul(sphere.Radius))
	contactPolyLocal := sphereCenterInPoly.Add(faceNormal.Mul(minDepth - sphere.Radius))

	var local1, local2 r3.Vector
	if isSphereShape1 {
		local1, local2 = contactSphereLocal, contactPolyLocal
	} else {
		local1, local2 = contactPolyLocal, contactSphereLocal
	}
	manifold.AddContactPoint(worldNormal, minDepth, local1, local2)

	if !isTriangle {
		cacheSpherePolyFace(lf, isSphereShape1, uint32(minIndex), true)
	}
	info.log("sphere-vs-poly collision", "face", minIndex, "depth", minDepth, "temporalCoherence", temporalCoherenceHit)
	return true
}

func sphereVsPolySetup(info *NarrowPhaseInfo) (sphere *Sphere, isSphereShape1 bool, poly *ConvexPolyhedron, sphereToWorld, polyToWorld Transform) {
	if s, ok := info.Shape1.(*Sphere); ok {
		p, ok2 := info.Shape2.(*ConvexPolyhedron)
		if !ok2 {
			panic("TestCollisionSphereVsConvexPolyhedron: shape2 is not a convex polyhedron")
		}
		return s, true, p, info.Shape1ToWorld, info.Shape2ToWorld
	}
	if s, ok := info.Shape2.(*Sphere); ok {
		p, ok2 := info.Shape1.(*ConvexPolyhedron)
		if !ok2 {
			panic("TestCollisionSphereVsConvexPolyhedron: shape1 is not a convex polyhedron")
		}
		return s, false, p, info.Shape2ToWorld, info.Shape1ToWorld
	}
	panic("TestCollisionSphereVsConvexPolyhedron: neither shape is a sphere")
}

// cacheSpherePolyFace records the winning (or separating) polyhedron face
// in the last-frame record, attributed to whichever shape slot the
// polyhedron occupies. Triangle polyhedra are never cached.
func cacheSpherePolyFace(lf *LastFrameCollisionInfo, isSphereShape1 bool, faceIndex uint32, colliding bool) {
	if isSphereShape1 {
		lf.setFace2(faceIndex, colliding)
	} else {
		lf.setFace1(faceIndex, colliding)
	}
}
