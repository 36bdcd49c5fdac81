package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/utcore/random"
)

func TestGaussian(t *testing.T) {
	points := Gaussian[float64](random.NewRNG(1), 10, 3)

	require.Len(t, points, 10)
	for _, p := range points {
		assert.Len(t, p, 3)
	}
}

func TestGaussian_Deterministic(t *testing.T) {
	a := Gaussian[float64](random.NewRNG(42), 5, 2)
	b := Gaussian[float64](random.NewRNG(42), 5, 2)

	assert.Equal(t, a, b)
}

func TestClustered(t *testing.T) {
	centers := [][]float64{{0, 0}, {100, 100}}
	points := Clustered(random.NewRNG(1), centers, 4, 0.1)

	require.Len(t, points, 8)

	// The first half hugs the first center, the second half the other one.
	for _, p := range points[:4] {
		assert.InDelta(t, 0.0, p[0], 1.0)
		assert.InDelta(t, 0.0, p[1], 1.0)
	}

	for _, p := range points[4:] {
		assert.InDelta(t, 100.0, p[0], 1.0)
		assert.InDelta(t, 100.0, p[1], 1.0)
	}
}
