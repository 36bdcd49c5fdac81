// Package distance provides the distance and accumulation capabilities
// consumed by the clustering engine.
//
// All functions are generic over the element type, so the same kernels serve
// float32 point clouds and float64 calibration data.
//
// # Supported Metrics
//
//   - MetricSquaredL2: Squared Euclidean distance (default; avoids square roots)
//   - MetricL2: Euclidean distance
//   - MetricManhattan: Sum of absolute coordinate differences
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	fn, err := distance.Provider[float64](distance.MetricL2)
package distance
