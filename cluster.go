package utcore

import (
	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/kmeans"
)

// Clusterer runs k-means with fixed configuration over caller-supplied
// point sets. It is stateless between runs and safe for concurrent use.
type Clusterer[T distance.Float] struct {
	k          int
	seedDist   distance.Func[T]
	assignDist distance.Func[T]
	logger     *Logger
	engineOpts []kmeans.Option
}

// New creates a Clusterer producing k clusters.
func New[T distance.Float](k int, optFns ...Option) (*Clusterer[T], error) {
	if k <= 0 {
		return nil, kmeans.ErrInvalidK
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	seedDist, err := distance.Provider[T](o.seedMetric)
	if err != nil {
		return nil, err
	}

	assignDist, err := distance.Provider[T](o.assignMetric)
	if err != nil {
		return nil, err
	}

	engineOpts := append([]kmeans.Option{kmeans.WithLogger(o.logger.Logger)}, o.engineOpts...)

	return &Clusterer[T]{
		k:          k,
		seedDist:   seedDist,
		assignDist: assignDist,
		logger:     o.logger.WithK(k),
		engineOpts: engineOpts,
	}, nil
}

// Cluster seeds and refines centroids for the given points. The number of
// points must exceed the configured k.
func (c *Clusterer[T]) Cluster(points [][]T) (*kmeans.Result[T], error) {
	logger := c.logger
	if len(points) > 0 {
		logger = logger.WithDimension(len(points[0]))
	}

	res, err := kmeans.KMeans(points, c.k, c.seedDist, c.assignDist, c.engineOpts...)
	if err != nil {
		logger.LogClustering(len(points), 0, false, 0, err)
		return nil, err
	}

	logger.LogClustering(len(points), res.Iterations, res.Converged, float64(res.Displacement), nil)

	return res, nil
}

// Cluster is a convenience wrapper constructing a Clusterer for a single run.
func Cluster[T distance.Float](points [][]T, k int, optFns ...Option) (*kmeans.Result[T], error) {
	c, err := New[T](k, optFns...)
	if err != nil {
		return nil, err
	}

	return c.Cluster(points)
}
