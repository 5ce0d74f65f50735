package reactphysics3d

// LastFrameCollisionInfo is a per-pair cache of the previous frame's
// winning separating axis, owned by the broader engine (one record per
// overlapping broad-phase proxy pair) and passed by handle into each SAT
// call. It is shared-mutable state across frames, never within a frame,
// for a given pair.
type LastFrameCollisionInfo struct {
	IsValid      bool
	WasUsingSAT  bool
	WasColliding bool

	SatIsAxisFacePolyhedron1 bool
	SatIsAxisFacePolyhedron2 bool
	SatMinAxisFaceIndex      uint32

	SatMinEdge1Index uint32
	SatMinEdge2Index uint32
}

// Reset clears the record back to its never-populated state.
func (l *LastFrameCollisionInfo) Reset() {
	*l = LastFrameCollisionInfo{}
}

func (l *LastFrameCollisionInfo) setFace1(faceIndex uint32, colliding bool) {
	l.IsValid = true
	l.WasUsingSAT = true
	l.WasColliding = colliding
	l.SatIsAxisFacePolyhedron1 = true
	l.SatIsAxisFacePolyhedron2 = false
	l.SatMinAxisFaceIndex = faceIndex
}

func (l *LastFrameCollisionInfo) setFace2(faceIndex uint32, colliding bool) {
	l.IsValid = true
	l.WasUsingSAT = true
	l.WasColliding = colliding
	l.SatIsAxisFacePolyhedron1 = false
	l.SatIsAxisFacePolyhedron2 = true
	l.SatMinAxisFaceIndex = faceIndex
}

func (l *LastFrameCollisionInfo) setEdgePair(edge1, edge2 uint32, colliding bool) {
	l.IsValid = true
	l.WasUsingSAT = true
	l.WasColliding = colliding
	l.SatIsAxisFacePolyhedron1 = false
	l.SatIsAxisFacePolyhedron2 = false
	l.SatMinEdge1Index = edge1
	l.SatMinEdge2Index = edge2
}

// capsule-vs-polyhedron shares the face1 flag to distinguish face vs edge
// on the single polyhedron involved; satMinEdge1Index stores the
// polyhedron half-edge.
func (l *LastFrameCollisionInfo) setCapsuleFace(faceIndex uint32, colliding bool) {
	l.setFace1(faceIndex, colliding)
}

func (l *LastFrameCollisionInfo) setCapsuleEdge(edgeIndex uint32, colliding bool) {
	l.IsValid = true
	l.WasUsingSAT = true
	l.WasColliding = colliding
	l.SatIsAxisFacePolyhedron1 = false
	l.SatMinEdge1Index = edgeIndex
}
