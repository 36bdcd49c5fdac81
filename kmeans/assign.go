package kmeans

import (
	"github.com/blockspacer/utcore/distance"
)

// Assign maps every point to the index of its nearest centroid. Ties are
// broken deterministically in favor of the lowest centroid index.
//
// Assign is a pure function of its inputs; re-running it on unchanged
// centroids yields identical indices.
func Assign[T distance.Float](points, centroids [][]T, dist distance.Func[T]) ([]int, error) {
	if len(centroids) == 0 {
		return nil, ErrInvalidK
	}

	if err := checkDims(points, centroids); err != nil {
		return nil, err
	}

	indices := make([]int, len(points))
	for i, p := range points {
		indices[i] = nearest(p, centroids, dist)
	}

	return indices, nil
}

// nearest scans left to right with a strict comparison, so the first centroid
// achieving the minimum wins.
func nearest[T distance.Float](p []T, centroids [][]T, dist distance.Func[T]) int {
	best := 0
	d := dist(p, centroids[0])

	for j := 1; j < len(centroids); j++ {
		if dj := dist(p, centroids[j]); dj < d {
			d = dj
			best = j
		}
	}

	return best
}

func checkDims[T distance.Float](points, centroids [][]T) error {
	dim := len(centroids[0])

	for _, c := range centroids {
		if len(c) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(c)}
		}
	}

	for _, p := range points {
		if len(p) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}

	return nil
}
