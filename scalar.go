// Package reactphysics3d implements the Separating Axis Theorem narrow-phase
// collision core of a 3D rigid-body physics engine: sphere/capsule/convex
// polyhedron pairs, Gauss-map edge pruning, and contact manifold
// construction with frame-to-frame temporal coherence.
package reactphysics3d

import "math"

// DecimalLargest is the sentinel "no candidate yet" value used by penetration
// probes that decline to be a separating axis (parallel edges, degenerate
// geometry).
const DecimalLargest = math.MaxFloat64

// SameSeparatingAxisBias is the hysteresis margin applied when a newly
// probed axis tries to displace the incumbent minimum during a full scan.
// It exists only to keep the winning axis stable across frames; see
// SPEC_FULL.md §9.
const SameSeparatingAxisBias = 1e-3

// parallelAxisEpsSq is the squared-length threshold below which a
// cross-product axis candidate is treated as degenerate (the two vectors
// it was built from are parallel).
const parallelAxisEpsSq = 1e-5
