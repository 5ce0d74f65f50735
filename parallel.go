package reactphysics3d

import "golang.org/x/sync/errgroup"

// PairResult is the outcome of one narrow-phase query run by RunPairs.
type PairResult struct {
	Collided bool
	Manifold ContactManifoldInfo
}

// RunPairs runs test against each element of infos concurrently, one
// goroutine per pair, and collects the results in input order. This
// exercises the §5 concurrency contract directly: each call only touches
// its own NarrowPhaseInfo and its own manifold, so running disjoint pairs
// across goroutines is safe as long as the caller never passes two
// NarrowPhaseInfo values that alias the same LastFrameCollisionInfo.
func RunPairs(infos []*NarrowPhaseInfo, test func(*NarrowPhaseInfo, *ContactManifoldInfo) bool) ([]PairResult, error) {
	results := make([]PairResult, len(infos))
	var g errgroup.Group
	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			results[i].Collided = test(info, &results[i].Manifold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
