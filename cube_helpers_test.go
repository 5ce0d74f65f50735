package reactphysics3d

import "github.com/golang/geo/r3"

// newUnitCubeMesh builds a half-edge mesh for the cube with vertices at
// ±0.5 on each axis, axis-aligned faces in CCW order from outside.
func newUnitCubeMesh() *HalfEdgeMesh {
	vertices := []r3.Vector{
		{X: -0.5, Y: -0.5, Z: -0.5}, // 0
		{X: 0.5, Y: -0.5, Z: -0.5},  // 1
		{X: 0.5, Y: 0.5, Z: -0.5},   // 2
		{X: -0.5, Y: 0.5, Z: -0.5},  // 3
		{X: -0.5, Y: -0.5, Z: 0.5},  // 4
		{X: 0.5, Y: -0.5, Z: 0.5},   // 5
		{X: 0.5, Y: 0.5, Z: 0.5},    // 6
		{X: -0.5, Y: 0.5, Z: 0.5},   // 7
	}
	faces := [][]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}
	mesh, err := NewHalfEdgeMesh(vertices, faces)
	if err != nil {
		panic(err)
	}
	return mesh
}

func newUnitCubePolyhedron() *ConvexPolyhedron {
	return NewConvexPolyhedron(newUnitCubeMesh())
}

// newBoxMesh builds a box centered at the origin with the given full
// extents (not half-extents) along each axis.
func newBoxMesh(sx, sy, sz float64) *HalfEdgeMesh {
	vertices := []r3.Vector{
		{X: -sx / 2, Y: -sy / 2, Z: -sz / 2},
		{X: sx / 2, Y: -sy / 2, Z: -sz / 2},
		{X: sx / 2, Y: sy / 2, Z: -sz / 2},
		{X: -sx / 2, Y: sy / 2, Z: -sz / 2},
		{X: -sx / 2, Y: -sy / 2, Z: sz / 2},
		{X: sx / 2, Y: -sy / 2, Z: sz / 2},
		{X: sx / 2, Y: sy / 2, Z: sz / 2},
		{X: -sx / 2, Y: sy / 2, Z: sz / 2},
	}
	faces := [][]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{3, 7, 6, 2},
		{0, 4, 7, 3},
		{1, 2, 6, 5},
	}
	mesh, err := NewHalfEdgeMesh(vertices, faces)
	if err != nil {
		panic(err)
	}
	return mesh
}
