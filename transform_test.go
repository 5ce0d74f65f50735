package reactphysics3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestTransformIdentity(t *testing.T) {
	id := IdentityTransform()
	p := r3.Vector{X: 1, Y: 2, Z: 3}
	test.That(t, id.TransformPoint(p).ApproxEqual(p), test.ShouldBeTrue)
}

func TestTransformInverse(t *testing.T) {
	quarterTurnZ := quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}
	tr := NewTransform(r3.Vector{X: 1, Y: 2, Z: 3}, quarterTurnZ)
	inv := tr.Inverse()
	roundTrip := tr.Compose(inv)
	test.That(t, roundTrip.Position.Norm() < 1e-9, test.ShouldBeTrue)
	test.That(t, quat.Abs(quat.Number{Real: roundTrip.Orientation.Real - 1,
		Imag: roundTrip.Orientation.Imag, Jmag: roundTrip.Orientation.Jmag, Kmag: roundTrip.Orientation.Kmag}) < 1e-9,
		test.ShouldBeTrue)
}

func TestTransformRotatesVector(t *testing.T) {
	quarterTurnZ := quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}
	tr := NewTransform(r3.Vector{}, quarterTurnZ)
	rotated := tr.TransformVector(r3.Vector{X: 1})
	test.That(t, rotated.Sub(r3.Vector{Y: 1}).Norm() < 1e-9, test.ShouldBeTrue)
}

func TestTransformCompose(t *testing.T) {
	a := NewTransform(r3.Vector{X: 1}, quat.Number{Real: 1})
	b := NewTransform(r3.Vector{Y: 1}, quat.Number{Real: 1})
	composed := a.Compose(b)
	test.That(t, composed.TransformPoint(r3.Vector{}).ApproxEqual(r3.Vector{X: 1, Y: 1}), test.ShouldBeTrue)
}

func TestTransformMat4Identity(t *testing.T) {
	m := IdentityTransform().Mat4()
	test.That(t, m, test.ShouldResemble, mgl64.Ident4())
}

func TestTransformMat4TranslationColumn(t *testing.T) {
	tr := NewTransform(r3.Vector{X: 1, Y: 2, Z: 3}, quat.Number{Real: 1})
	m := tr.Mat4()
	// Column-major: the translation occupies indices 12-14 of the flat array.
	test.That(t, m[12], test.ShouldAlmostEqual, 1.0, 1e-9)
	test.That(t, m[13], test.ShouldAlmostEqual, 2.0, 1e-9)
	test.That(t, m[14], test.ShouldAlmostEqual, 3.0, 1e-9)
	test.That(t, m[15], test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestTransformMat4RotationMatchesRotationMatrix(t *testing.T) {
	quarterTurnZ := quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}
	tr := NewTransform(r3.Vector{}, quarterTurnZ)
	m := tr.Mat4()
	rm := tr.RotationMatrix()
	// Column-major 4x4: column 0 occupies indices 0-2.
	test.That(t, m[0], test.ShouldAlmostEqual, rm.Col0.X, 1e-9)
	test.That(t, m[1], test.ShouldAlmostEqual, rm.Col0.Y, 1e-9)
	test.That(t, m[2], test.ShouldAlmostEqual, rm.Col0.Z, 1e-9)
	test.That(t, m[4], test.ShouldAlmostEqual, rm.Col1.X, 1e-9)
	test.That(t, m[5], test.ShouldAlmostEqual, rm.Col1.Y, 1e-9)
	test.That(t, m[6], test.ShouldAlmostEqual, rm.Col1.Z, 1e-9)
}
