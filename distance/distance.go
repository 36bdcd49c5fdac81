package distance

import (
	"fmt"
	"math"
)

// Float covers the element types the clustering engine operates on.
type Float interface {
	~float32 | ~float64
}

// Func computes a scalar distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
type Func[T Float] func(a, b []T) T

// Dot calculates the dot product of two vectors.
func Dot[T Float](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2[T Float](a, b []T) T {
	var dist T
	for i := range a {
		dist += (a[i] - b[i]) * (a[i] - b[i])
	}

	return dist
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
func L2[T Float](a, b []T) T {
	return T(math.Sqrt(float64(SquaredL2(a, b))))
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan[T Float](a, b []T) T {
	var dist T
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		dist += d
	}

	return dist
}

// AddInPlace adds v elementwise to acc. Used by the mean-update step to
// accumulate cluster sums.
func AddInPlace[T Float](acc, v []T) {
	for i := range acc {
		acc[i] += v[i]
	}
}

// ScaleInPlace multiplies all elements of v by scalar.
func ScaleInPlace[T Float](v []T, scalar T) {
	for i := range v {
		v[i] *= scalar
	}
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricL2
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricL2:
		return "L2"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider[T Float](m Metric) (Func[T], error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2[T], nil
	case MetricL2:
		return L2[T], nil
	case MetricManhattan:
		return Manhattan[T], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
