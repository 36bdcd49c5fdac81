// Package evaluate provides quality metrics for clustering results.
//
// All metrics compute in float64 regardless of the point element type, so
// float32 runs do not lose precision during aggregation.
package evaluate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/blockspacer/utcore/distance"
)

var (
	// ErrLengthMismatch is returned when the assignment does not cover the
	// points one to one.
	ErrLengthMismatch = errors.New("assignment length does not match points")
)

// Inertia returns the within-cluster sum of squared distances, the objective
// Lloyd refinement minimizes. Lower is better.
func Inertia[T distance.Float](points, centroids [][]T, assignment []int) (float64, error) {
	if len(assignment) != len(points) {
		return 0, ErrLengthMismatch
	}

	dists := make([]float64, len(points))

	for i, p := range points {
		j := assignment[i]
		if j < 0 || j >= len(centroids) {
			return 0, fmt.Errorf("assignment %d out of range [0, %d)", j, len(centroids))
		}

		dists[i] = float64(distance.SquaredL2(p, centroids[j]))
	}

	return floats.Sum(dists), nil
}

// Sizes returns the member count of each of the k clusters.
func Sizes(assignment []int, k int) ([]int, error) {
	sizes := make([]int, k)

	for _, j := range assignment {
		if j < 0 || j >= k {
			return nil, fmt.Errorf("assignment %d out of range [0, %d)", j, k)
		}

		sizes[j]++
	}

	return sizes, nil
}

// Silhouette returns the mean silhouette coefficient over all points, in
// [-1, 1]. Values near 1 indicate tight, well-separated clusters. Distances
// are Euclidean. O(n^2) in the number of points.
func Silhouette[T distance.Float](points [][]T, assignment []int, k int) (float64, error) {
	if len(assignment) != len(points) {
		return 0, ErrLengthMismatch
	}

	sizes, err := Sizes(assignment, k)
	if err != nil {
		return 0, err
	}

	scores := make([]float64, len(points))

	sums := make([]float64, k)

	for i, p := range points {
		for j := range sums {
			sums[j] = 0
		}

		for l, q := range points {
			if l == i {
				continue
			}

			sums[assignment[l]] += float64(distance.L2(p, q))
		}

		own := assignment[i]
		if sizes[own] < 2 {
			scores[i] = 0

			continue
		}

		a := sums[own] / float64(sizes[own]-1)

		b := -1.0

		for j := range sums {
			if j == own || sizes[j] == 0 {
				continue
			}

			if mean := sums[j] / float64(sizes[j]); b < 0 || mean < b {
				b = mean
			}
		}

		if b < 0 {
			// Single populated cluster: silhouette is undefined, score it 0.
			scores[i] = 0

			continue
		}

		switch {
		case a < b:
			scores[i] = 1 - a/b
		case a > b:
			scores[i] = b/a - 1
		default:
			scores[i] = 0
		}
	}

	return stat.Mean(scores, nil), nil
}
