package kmeans

import (
	"slices"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/random"
)

// SeedGreedy copies the first k points in input order as initial centroids.
// Deterministic; baseline for tests and for callers that pre-shuffle.
func SeedGreedy[T distance.Float](points [][]T, k int) ([][]T, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(points) < k {
		return nil, &ErrTooFewPoints{Points: len(points), Clusters: k}
	}

	seeds := make([][]T, k)
	for i := range seeds {
		seeds[i] = slices.Clone(points[i])
	}

	return seeds, nil
}

// SeedProbability selects up to k initial centroids with distance-proportional
// sampling (k-means++): the first seed is drawn uniformly, every following
// seed is drawn with probability proportional to its distance to the nearest
// seed chosen so far.
//
// Fewer than k seeds are returned when the distance mass collapses to zero,
// i.e. all remaining points coincide with already chosen seeds. Callers must
// check the length of the returned slice.
//
// The input must contain at least two points.
func SeedProbability[T distance.Float](points [][]T, k int, dist distance.Func[T], src random.Source) ([][]T, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	n := len(points)
	if n < 2 {
		return nil, &ErrTooFewPoints{Points: n, Clusters: k}
	}

	if src == nil {
		src = random.Global()
	}

	seeds := make([][]T, 0, k)
	first := points[src.Intn(n)]
	seeds = append(seeds, slices.Clone(first))

	// minDist tracks each point's distance to its nearest chosen seed.
	minDist := make([]T, n)

	var sum T

	for i, p := range points {
		d := dist(p, first)
		minDist[i] = d
		sum += d
	}

	for len(seeds) < k {
		if sum <= 0 {
			return seeds, nil
		}

		// Draw in [0, sum] and walk the distance mass from the left; the
		// point whose entry absorbs the draw becomes the next seed.
		target := T(src.Float64()) * sum

		idx := 0
		for ; idx < n-1; idx++ {
			if target <= minDist[idx] {
				break
			}

			target -= minDist[idx]
		}

		next := points[idx]
		seeds = append(seeds, slices.Clone(next))

		sum = 0

		for i, p := range points {
			if d := dist(p, next); d < minDist[i] {
				minDist[i] = d
			}

			sum += minDist[i]
		}
	}

	return seeds, nil
}
