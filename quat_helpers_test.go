package reactphysics3d

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

func identityQuat() quat.Number {
	return quat.Number{Real: 1}
}

func quatFromAxisAngle(axis r3.Vector, angle float64) quat.Number {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return quat.Number{Real: math.Cos(angle / 2), Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

func quatMul(a, b quat.Number) quat.Number {
	return quat.Mul(a, b)
}
