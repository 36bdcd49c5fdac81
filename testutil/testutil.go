// Package testutil provides deterministic test-data generators for the
// clustering packages.
package testutil

import (
	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/random"
)

// Gaussian generates num points with values from a standard normal
// distribution.
func Gaussian[T distance.Float](r *random.RNG, num, dim int) [][]T {
	points := make([][]T, num)

	for i := range points {
		vec := make([]T, dim)
		for j := range vec {
			vec[j] = T(r.NormFloat64())
		}
		points[i] = vec
	}

	return points
}

// Clustered generates perCenter points around each center with gaussian
// noise of the given spread. Points are emitted center by center, so the
// expected cluster of point i is i/perCenter.
func Clustered[T distance.Float](r *random.RNG, centers [][]T, perCenter int, spread float64) [][]T {
	points := make([][]T, 0, len(centers)*perCenter)

	for _, center := range centers {
		for i := 0; i < perCenter; i++ {
			vec := make([]T, len(center))
			for j := range vec {
				vec[j] = center[j] + T(r.NormFloat64()*spread)
			}
			points = append(points, vec)
		}
	}

	return points
}
