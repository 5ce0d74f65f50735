package reactphysics3d

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ShapeType discriminates the closed set of shape variants the SAT core
// understands. Shape-pair dispatch happens one layer above this package
// (the broad-phase); the type tag exists so the drivers can assert their
// own preconditions and so Triangle can opt out of temporal-coherence
// caching.
type ShapeType int

const (
	// SphereShape is a point swept by a radius.
	SphereShape ShapeType = iota
	// CapsuleShape is a line segment swept by a sphere of given radius.
	CapsuleShape
	// ConvexPolyhedronShape is a general half-edge-mesh convex polyhedron.
	ConvexPolyhedronShape
	// TriangleShape is a degenerate polyhedron with special caching rules:
	// its last-frame record must never be written.
	TriangleShape
)

// Shape is the closed set of collision shapes the SAT core operates on.
type Shape interface {
	Type() ShapeType
}

// Sphere is a point swept by Radius.
type Sphere struct {
	Radius float64
}

// Type implements Shape.
func (Sphere) Type() ShapeType { return SphereShape }

// NewSphere validates radius and builds a Sphere.
func NewSphere(radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, errors.Errorf("sphere radius must be positive, got %v", radius)
	}
	return &Sphere{Radius: radius}, nil
}

// Capsule is a line segment of length Height along the local Y axis, with
// endpoints at ±Height/2, swept by a sphere of Radius.
type Capsule struct {
	Radius float64
	Height float64
}

// Type implements Shape.
func (Capsule) Type() ShapeType { return CapsuleShape }

// NewCapsule validates radius/height and builds a Capsule.
func NewCapsule(radius, height float64) (*Capsule, error) {
	if radius <= 0 {
		return nil, errors.Errorf("capsule radius must be positive, got %v", radius)
	}
	if height <= 0 {
		return nil, errors.Errorf("capsule height must be positive, got %v", height)
	}
	return &Capsule{Radius: radius, Height: height}, nil
}

// SegmentPoints returns the capsule's inner-segment endpoints in local
// space.
func (c *Capsule) SegmentPoints() (p1, p2 r3.Vector) {
	half := c.Height / 2
	return r3.Vector{Y: -half}, r3.Vector{Y: half}
}

// SupportPointWithMargin returns the farthest point of the capsule (sphere
// included) along direction, in local space.
func (c *Capsule) SupportPointWithMargin(direction r3.Vector) r3.Vector {
	p1, p2 := c.SegmentPoints()
	base := p1
	if direction.Y > 0 {
		base = p2
	}
	d := direction.Norm()
	if d < 1e-12 {
		return base.Add(r3.Vector{Y: c.Radius})
	}
	return base.Add(direction.Mul(c.Radius / d))
}

// ConvexPolyhedron is a general convex shape specified by a half-edge mesh.
type ConvexPolyhedron struct {
	Mesh *HalfEdgeMesh
	tag  ShapeType
}

// Type implements Shape.
func (p *ConvexPolyhedron) Type() ShapeType { return p.tag }

// NewConvexPolyhedron builds a ConvexPolyhedron shape over mesh.
func NewConvexPolyhedron(mesh *HalfEdgeMesh) *ConvexPolyhedron {
	return &ConvexPolyhedron{Mesh: mesh, tag: ConvexPolyhedronShape}
}

// SupportPointWithoutMargin returns the mesh vertex farthest along
// direction, in local space.
func (p *ConvexPolyhedron) SupportPointWithoutMargin(direction r3.Vector) r3.Vector {
	best := p.Mesh.VertexPosition(0)
	bestDot := best.Dot(direction)
	for i := 1; i < p.Mesh.NbVertices(); i++ {
		v := p.Mesh.VertexPosition(i)
		if d := v.Dot(direction); d > bestDot {
			bestDot = d
			best = v
		}
	}
	return best
}

// NewTriangleShape builds a degenerate two-face polyhedron (front and back)
// from three points, tagged TriangleShape so the SAT drivers refuse to
// cache its last-frame record.
func NewTriangleShape(p0, p1, p2 r3.Vector) (*ConvexPolyhedron, error) {
	vertices := []r3.Vector{p0, p1, p2}
	faces := [][]int{
		{0, 1, 2},
		{2, 1, 0},
	}
	mesh, err := newTriangleHalfEdgeMesh(vertices, faces)
	if err != nil {
		return nil, errors.Wrap(err, "building triangle shape")
	}
	return &ConvexPolyhedron{Mesh: mesh, tag: TriangleShape}, nil
}

// newTriangleHalfEdgeMesh builds the degenerate 3-vertex/2-face mesh used by
// NewTriangleShape. It cannot reuse NewHalfEdgeMesh's minimum-size
// validation (a triangle shape legitimately has only 3 vertices and 2
// faces), but shares its twin-pairing logic via buildTwinPairedHalfEdges.
func newTriangleHalfEdgeMesh(vertices []r3.Vector, faceVertexLists [][]int) (*HalfEdgeMesh, error) {
	halfEdges, faces, err := buildTwinPairedHalfEdges(vertices, faceVertexLists)
	if err != nil {
		return nil, errors.Wrap(err, "building triangle half-edge mesh")
	}
	m := &HalfEdgeMesh{vertices: vertices, halfEdges: halfEdges, faces: faces}
	m.faceNormals = make([]r3.Vector, len(m.faces))
	for fi, f := range m.faces {
		m.faceNormals[fi] = faceNormalFromVertices(vertices, f.Vertices)
	}
	var sum r3.Vector
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	m.centroid = sum.Mul(1 / float64(len(vertices)))
	return m, nil
}
