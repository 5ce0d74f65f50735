package reactphysics3d

import "github.com/farpoke/reactphysics3d/logging"

// NarrowPhaseInfo carries everything a single SAT call needs: the two
// shapes, their shape-to-world transforms, and a handle to the pair's
// last-frame cache. It is read-only except for LastFrameInfo.
type NarrowPhaseInfo struct {
	Shape1, Shape2               Shape
	Shape1ToWorld, Shape2ToWorld Transform
	LastFrameInfo                *LastFrameCollisionInfo

	// Logger, if non-nil, receives debug-level diagnostics about which axis
	// family won and whether the temporal-coherence shortcut fired. Purely
	// observational; never consulted for correctness.
	Logger logging.Logger
}

func (info *NarrowPhaseInfo) log(msg string, kv ...interface{}) {
	if info.Logger != nil {
		info.Logger.Debugw(msg, kv...)
	}
}
