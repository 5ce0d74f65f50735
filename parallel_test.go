package reactphysics3d

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRunPairsMatchesSequentialResults(t *testing.T) {
	cube := newUnitCubePolyhedron()
	sphere, err := NewSphere(0.1)
	test.That(t, err, test.ShouldBeNil)

	offsets := []float64{0.3, 1.0, 0.45, 5.0}
	infos := make([]*NarrowPhaseInfo, len(offsets))
	for i, x := range offsets {
		infos[i] = &NarrowPhaseInfo{
			Shape1:        sphere,
			Shape2:        cube,
			Shape1ToWorld: NewTransform(r3.Vector{X: x}, identityQuat()),
			Shape2ToWorld: IdentityTransform(),
			LastFrameInfo: &LastFrameCollisionInfo{},
		}
	}

	results, err := RunPairs(infos, TestCollisionSphereVsConvexPolyhedron)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(results), test.ShouldEqual, len(offsets))

	for i := range offsets {
		sequentialManifold := &ContactManifoldInfo{}
		sequentialCollided := TestCollisionSphereVsConvexPolyhedron(infos[i], sequentialManifold)
		test.That(t, results[i].Collided, test.ShouldEqual, sequentialCollided)
		test.That(t, len(results[i].Manifold.ContactPoints), test.ShouldEqual, len(sequentialManifold.ContactPoints))
	}

	test.That(t, results[0].Collided, test.ShouldBeTrue)
	test.That(t, results[1].Collided, test.ShouldBeFalse)
	test.That(t, results[2].Collided, test.ShouldBeTrue)
	test.That(t, results[3].Collided, test.ShouldBeFalse)
}
