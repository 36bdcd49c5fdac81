package kmeans

import (
	"slices"

	"github.com/blockspacer/utcore/distance"
)

// Result holds the outcome of one clustering run.
type Result[T distance.Float] struct {
	// Centroids are the final cluster centers. KMeans may return fewer than
	// the requested k when probability-weighted seeding terminated early.
	Centroids [][]T

	// Assignment maps each input point, in input order, to an index into
	// Centroids.
	Assignment []int

	// Displacement is the mean per-cluster centroid movement of the last
	// refinement iteration, measured with the assignment metric. Callers can
	// inspect it to judge the quality of a non-converged run.
	Displacement T

	// Iterations is the number of refinement iterations executed.
	Iterations int

	// Converged reports whether Displacement dropped below epsilon before the
	// iteration budget ran out.
	Converged bool
}

// KMeans clusters points into k groups: probability-weighted seeding followed
// by Lloyd refinement. seedDist weights the seed sampling, assignDist drives
// assignment and convergence; both are typically distance.SquaredL2.
//
// The number of points must exceed k. The returned centroid count can be
// lower than k only when seeding terminated early on duplicate points.
func KMeans[T distance.Float](points [][]T, k int, seedDist, assignDist distance.Func[T], optFns ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if k <= 0 {
		return nil, ErrInvalidK
	}

	if len(points) <= k {
		return nil, &ErrTooFewPoints{Points: len(points), Clusters: k}
	}

	var (
		seeds [][]T
		err   error
	)

	switch o.seeding {
	case SeedingGreedy:
		seeds, err = SeedGreedy(points, k)
	default:
		seeds, err = SeedProbability(points, k, seedDist, o.source)
	}

	if err != nil {
		return nil, err
	}

	if len(seeds) < k {
		o.logger.Warn("seeding terminated early",
			"requested", k,
			"selected", len(seeds),
		)
	}

	return Lloyd(points, seeds, assignDist, optFns...)
}

// Lloyd refines the given initial centroids with alternating mean updates and
// reassignment until the mean per-cluster centroid displacement drops below
// epsilon or the iteration budget is exhausted. Exhaustion is not an error;
// the result carries the last displacement as a quality signal.
//
// The centroids slice is not mutated; the result owns fresh copies.
func Lloyd[T distance.Float](points, centroids [][]T, dist distance.Func[T], optFns ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if len(centroids) == 0 {
		return nil, ErrInvalidK
	}

	if len(points) == 0 {
		return nil, &ErrTooFewPoints{Points: 0, Clusters: len(centroids)}
	}

	if err := checkDims(points, centroids); err != nil {
		return nil, err
	}

	k := len(centroids)
	dim := len(centroids[0])
	epsilon := T(o.epsilon)

	cur := make([][]T, k)
	for j, c := range centroids {
		cur[j] = slices.Clone(c)
	}

	assignment, _ := Assign(points, cur, dist)

	res := &Result[T]{
		Centroids:  cur,
		Assignment: assignment,
	}

	for iter := 1; iter <= o.maxIterations; iter++ {
		// Full recomputation from fresh accumulators every iteration.
		sums := make([][]T, k)
		for j := range sums {
			sums[j] = make([]T, dim)
		}

		counts := make([]int, k)

		for i, p := range points {
			j := assignment[i]
			distance.AddInPlace(sums[j], p)
			counts[j]++
		}

		next := make([][]T, k)

		for j := range next {
			if counts[j] == 0 {
				if o.emptyClusters == EmptyClusterError {
					return nil, &ErrEmptyCluster{Cluster: j, Iteration: iter}
				}

				continue // reseeded below
			}

			distance.ScaleInPlace(sums[j], 1/T(counts[j]))
			next[j] = sums[j]
		}

		reseedEmpty(points, cur, next, assignment, dist)

		var disp T
		for j := range next {
			disp += dist(cur[j], next[j])
		}
		disp /= T(k)

		cur = next
		assignment, _ = Assign(points, cur, dist)

		res.Centroids = cur
		res.Assignment = assignment
		res.Displacement = disp
		res.Iterations = iter

		if disp < epsilon {
			res.Converged = true

			break
		}
	}

	if res.Converged {
		o.logger.Debug("refinement converged",
			"iterations", res.Iterations,
			"displacement", float64(res.Displacement),
		)
	} else {
		o.logger.Warn("iteration budget exhausted",
			"iterations", res.Iterations,
			"displacement", float64(res.Displacement),
		)
	}

	return res, nil
}

// reseedEmpty fills every nil entry in next with the point farthest from its
// currently assigned centroid, each reseed consuming a distinct point.
func reseedEmpty[T distance.Float](points, cur, next [][]T, assignment []int, dist distance.Func[T]) {
	var used map[int]struct{}

	for j := range next {
		if next[j] != nil {
			continue
		}

		if used == nil {
			used = make(map[int]struct{})
		}

		far := -1

		var farDist T

		for i, p := range points {
			if _, ok := used[i]; ok {
				continue
			}

			if d := dist(p, cur[assignment[i]]); far < 0 || d > farDist {
				far = i
				farDist = d
			}
		}

		if far < 0 {
			// More empty clusters than points left; keep the old centroid.
			next[j] = slices.Clone(cur[j])

			continue
		}

		next[j] = slices.Clone(points[far])
		used[far] = struct{}{}
	}
}
