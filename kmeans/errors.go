package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when the requested cluster count is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// ErrTooFewPoints indicates the input set is too small for the requested
// operation. Seeding needs at least two points; clustering needs more points
// than clusters.
type ErrTooFewPoints struct {
	Points   int
	Clusters int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("too few points: %d for %d clusters", e.Points, e.Clusters)
}

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrEmptyCluster reports a cluster that lost all members during refinement.
// Only returned under EmptyClusterError; the default policy reseeds instead.
type ErrEmptyCluster struct {
	Cluster   int
	Iteration int
}

func (e *ErrEmptyCluster) Error() string {
	return fmt.Sprintf("cluster %d has no members at iteration %d", e.Cluster, e.Iteration)
}
