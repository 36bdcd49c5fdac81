// Package utcore provides a generic k-means clustering engine for Go.
//
// The engine combines probability-weighted (k-means++) seeding with Lloyd
// refinement and is generic over the vector element type and the distance
// metric. It was built for calibration and tracking workloads that need to
// group fixed-dimension measurement vectors, but nothing in it is specific
// to that domain.
//
// # Quick Start
//
//	points := [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
//
//	res, err := utcore.Cluster(points, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Centroids, res.Assignment)
//
// For repeated runs with shared configuration, build a Clusterer:
//
//	c, _ := utcore.New[float64](8,
//	    utcore.WithMetric(distance.MetricSquaredL2),
//	    utcore.WithLogger(utcore.NewTextLogger(slog.LevelDebug)),
//	)
//	res, _ := c.Cluster(points)
//
// The lower-level building blocks (seed selection, assignment, refinement)
// live in the kmeans package; distance kernels and the Metric enum live in
// the distance package.
//
// # Key Properties
//
//   - Deterministic tie-breaking: equidistant centroids resolve to the lowest index
//   - Injected randomness: pin a random.RNG seed for reproducible clusterings
//   - Partial seeding is signaled, not hidden: duplicate-heavy inputs can
//     legitimately produce fewer centroids than requested
//   - Exhausting the iteration budget is a quality signal, not an error
package utcore
