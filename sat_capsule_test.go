package reactphysics3d

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestCapsuleRestingOnCube(t *testing.T) {
	cube := newUnitCubePolyhedron()
	capsule, err := NewCapsule(0.1, 1.0)
	test.That(t, err, test.ShouldBeNil)

	// The capsule's local Y axis is turned onto world X, so it lies flat
	// across the top face: its underside is at y = 0.45, 0.05 below the face.
	info := &NarrowPhaseInfo{
		Shape1:        capsule,
		Shape2:        cube,
		Shape1ToWorld: NewTransform(r3.Vector{Y: 0.55}, quatFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)),
		Shape2ToWorld: IdentityTransform(),
		LastFrameInfo: &LastFrameCollisionInfo{},
	}
	manifold := &ContactManifoldInfo{}
	collided := TestCollisionCapsuleVsConvexPolyhedron(info, manifold)

	test.That(t, collided, test.ShouldBeTrue)
	test.That(t, len(manifold.ContactPoints), test.ShouldEqual, 2)
	for _, cp := range manifold.ContactPoints {
		test.That(t, cp.PenetrationDepth, test.ShouldAlmostEqual, 0.05, 1e-6)
		test.That(t, cp.WorldNormal.ApproxEqual(r3.Vector{Y: -1}), test.ShouldBeTrue)
	}
}

func TestCapsuleClearlyAboveCube(t *testing.T) {
	cube := newUnitCubePolyhedron()
	capsule, err := NewCapsule(0.1, 1.0)
	test.That(t, err, test.ShouldBeNil)

	info := &NarrowPhaseInfo{
		Shape1:        capsule,
		Shape2:        cube,
		Shape1ToWorld: NewTransform(r3.Vector{Y: 5}, identityQuat()),
		Shape2ToWorld: IdentityTransform(),
		LastFrameInfo: &LastFrameCollisionInfo{},
	}
	manifold := &ContactManifoldInfo{}
	collided := TestCollisionCapsuleVsConvexPolyhedron(info, manifold)
	test.That(t, collided, test.ShouldBeFalse)
	test.That(t, len(manifold.ContactPoints), test.ShouldEqual, 0)
}

func TestCapsulePiercingCubeCornerReportsPositiveDepth(t *testing.T) {
	cube := newUnitCubePolyhedron()
	capsule, err := NewCapsule(0.05, 3.0)
	test.That(t, err, test.ShouldBeNil)

	diagonal := quatFromAxisAngle(r3.Vector{X: 1, Z: -1}.Normalize(), 0.6)
	info := &NarrowPhaseInfo{
		Shape1:        capsule,
		Shape2:        cube,
		Shape1ToWorld: NewTransform(r3.Vector{X: 0.52, Y: 0.52, Z: 0.52}, diagonal),
		Shape2ToWorld: IdentityTransform(),
		LastFrameInfo: &LastFrameCollisionInfo{},
	}
	manifold := &ContactManifoldInfo{}
	collided := TestCollisionCapsuleVsConvexPolyhedron(info, manifold)

	test.That(t, collided, test.ShouldBeTrue)
	// A single contact is only produced by the edge-cross branch
	// (sat_capsule.go's edge case); the face branch always emits two,
	// one per clipped segment endpoint. Scenario (f) names the edge-cross
	// axis as the expected winner, so this pins the winning branch too.
	test.That(t, len(manifold.ContactPoints), test.ShouldEqual, 1)
	for _, cp := range manifold.ContactPoints {
		test.That(t, cp.PenetrationDepth > 0, test.ShouldBeTrue)
	}
}
