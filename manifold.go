package reactphysics3d

import "github.com/golang/geo/r3"

// ContactPoint is a single point of a contact manifold: the world-space
// normal (pointing from shape 2 into shape 1), the penetration depth along
// that normal, and the local-space contact position on each shape.
type ContactPoint struct {
	WorldNormal      r3.Vector
	PenetrationDepth float64
	LocalPointShape1 r3.Vector
	LocalPointShape2 r3.Vector
}

// ContactManifoldInfo accumulates the contact points produced by one SAT
// call. It is borrowed and mutated; ownership stays with the caller.
type ContactManifoldInfo struct {
	ContactPoints []ContactPoint
}

// AddContactPoint appends a contact point to the manifold.
func (m *ContactManifoldInfo) AddContactPoint(worldNormal r3.Vector, depth float64, localPoint1, localPoint2 r3.Vector) {
	m.ContactPoints = append(m.ContactPoints, ContactPoint{
		WorldNormal:      worldNormal,
		PenetrationDepth: depth,
		LocalPointShape1: localPoint1,
		LocalPointShape2: localPoint2,
	})
}
