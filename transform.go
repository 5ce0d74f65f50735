package reactphysics3d

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid transform: a rotation followed by a translation.
type Transform struct {
	Position    r3.Vector
	Orientation quat.Number
}

// IdentityTransform returns the identity rigid transform.
func IdentityTransform() Transform {
	return Transform{Position: r3.Vector{}, Orientation: quat.Number{Real: 1}}
}

// NewTransform builds a transform from a position and orientation. The
// orientation is normalized.
func NewTransform(position r3.Vector, orientation quat.Number) Transform {
	return Transform{Position: position, Orientation: normalizeQuat(orientation)}
}

// TransformPoint maps a point from this transform's local frame into the
// frame it is relative to.
func (t Transform) TransformPoint(p r3.Vector) r3.Vector {
	return rotateVector(t.Orientation, p).Add(t.Position)
}

// TransformVector rotates a free vector (ignores translation).
func (t Transform) TransformVector(v r3.Vector) r3.Vector {
	return rotateVector(t.Orientation, v)
}

// Inverse returns the algebraic inverse of t, such that
// t.Inverse().Compose(t) is the identity transform up to floating point
// error.
func (t Transform) Inverse() Transform {
	invOrientation := quat.Conj(t.Orientation)
	invPosition := rotateVector(invOrientation, t.Position).Mul(-1)
	return Transform{Position: invPosition, Orientation: invOrientation}
}

// Compose returns the transform equivalent to first applying other, then t:
// for any point p, t.Compose(other).TransformPoint(p) ==
// t.TransformPoint(other.TransformPoint(p)).
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		Position:    t.TransformPoint(other.Position),
		Orientation: quat.Mul(t.Orientation, other.Orientation),
	}
}

// RotationMatrix returns the 3x3 rotation matrix equivalent to t's
// orientation, as three world-space basis vectors (the images of the local
// X, Y, Z axes).
type RotationMatrix struct {
	Col0, Col1, Col2 r3.Vector
}

// RotationMatrix derives the rotation-matrix view of t's orientation.
func (t Transform) RotationMatrix() RotationMatrix {
	return RotationMatrix{
		Col0: rotateVector(t.Orientation, r3.Vector{X: 1}),
		Col1: rotateVector(t.Orientation, r3.Vector{Y: 1}),
		Col2: rotateVector(t.Orientation, r3.Vector{Z: 1}),
	}
}

// MulVector applies the rotation matrix to a vector.
func (m RotationMatrix) MulVector(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.Col0.X*v.X + m.Col1.X*v.Y + m.Col2.X*v.Z,
		Y: m.Col0.Y*v.X + m.Col1.Y*v.Y + m.Col2.Y*v.Z,
		Z: m.Col0.Z*v.X + m.Col1.Z*v.Y + m.Col2.Z*v.Z,
	}
}

// Mat4 converts t to a column-major 4x4 homogeneous matrix, for handing a
// pose to an OpenGL-style renderer or debug-draw overlay without leaking
// quat.Number/r3.Vector across that boundary.
func (t Transform) Mat4() mgl64.Mat4 {
	rm := t.RotationMatrix()
	return mgl64.Mat4{
		rm.Col0.X, rm.Col0.Y, rm.Col0.Z, 0,
		rm.Col1.X, rm.Col1.Y, rm.Col1.Z, 0,
		rm.Col2.X, rm.Col2.Y, rm.Col2.Z, 0,
		t.Position.X, t.Position.Y, t.Position.Z, 1,
	}
}

func rotateVector(q quat.Number, v r3.Vector) r3.Vector {
	qv := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	t := qv.Cross(v).Mul(2)
	return v.Add(t.Mul(q.Real)).Add(qv.Cross(t))
}

func normalizeQuat(q quat.Number) quat.Number {
	norm := quat.Abs(q)
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/norm, q)
}
