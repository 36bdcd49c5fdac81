package kmeans

import (
	"log/slog"

	"github.com/blockspacer/utcore/random"
)

const (
	// DefaultEpsilon is the convergence threshold for the mean per-cluster
	// centroid displacement. Refinement compares squared distances, so the
	// threshold is pre-squared: (1e-2)^2.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations caps the refinement loop.
	DefaultMaxIterations = 100
)

// EmptyClusterPolicy decides what happens when a cluster loses all members
// during a mean update.
type EmptyClusterPolicy int

const (
	// EmptyClusterReseed replaces the emptied centroid with the point
	// currently farthest from its assigned centroid.
	EmptyClusterReseed EmptyClusterPolicy = iota

	// EmptyClusterError aborts refinement with ErrEmptyCluster.
	EmptyClusterError
)

// Seeding selects the initial-centroid strategy used by KMeans.
type Seeding int

const (
	// SeedingProbability picks seeds with distance-proportional sampling
	// (k-means++). Default.
	SeedingProbability Seeding = iota

	// SeedingGreedy picks the first k points. Deterministic baseline.
	SeedingGreedy
)

type options struct {
	epsilon       float64
	maxIterations int
	emptyClusters EmptyClusterPolicy
	seeding       Seeding
	source        random.Source
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		epsilon:       DefaultEpsilon,
		maxIterations: DefaultMaxIterations,
		emptyClusters: EmptyClusterReseed,
		seeding:       SeedingProbability,
		source:        random.Global(),
		logger:        slog.New(slog.DiscardHandler),
	}
}

// Option configures a clustering run.
type Option func(*options)

// WithEpsilon overrides the convergence threshold. The value is compared
// against the mean per-cluster displacement measured with the assignment
// metric, so it must be expressed in that metric (squared for MetricSquaredL2).
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithMaxIterations overrides the refinement iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithEmptyClusterPolicy configures the empty-cluster handling of the mean
// update step.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyClusters = p
	}
}

// WithSeeding configures the seeding strategy used by KMeans.
func WithSeeding(s Seeding) Option {
	return func(o *options) {
		o.seeding = s
	}
}

// WithRandomSource injects the randomness used by probability-weighted
// seeding. Pass a seeded random.RNG for reproducible runs.
//
// If nil is passed, the shared math/rand generator is used.
func WithRandomSource(src random.Source) Option {
	return func(o *options) {
		if src == nil {
			src = random.Global()
		}
		o.source = src
	}
}

// WithLogger configures structured logging for the run. Seeding shortfalls
// and exhausted iteration budgets are logged at Warn, convergence at Debug.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}
