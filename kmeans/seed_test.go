package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/random"
)

func TestSeedGreedy(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}

	seeds, err := SeedGreedy(points, 2)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}}, seeds)

	// Seeds are copies, not aliases into the input.
	seeds[0][0] = 99
	assert.Equal(t, 0.0, points[0][0])
}

func TestSeedGreedy_Errors(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}

	_, err := SeedGreedy(points, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = SeedGreedy(points, 3)

	var tooFew *ErrTooFewPoints
	require.ErrorAs(t, err, &tooFew)
	assert.Equal(t, 2, tooFew.Points)
	assert.Equal(t, 3, tooFew.Clusters)
}

func TestSeedProbability_FullCount(t *testing.T) {
	rng := random.NewRNG(42)
	points := [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {6, 5}, {10, 0}, {0, 10}, {10, 10},
	}

	seeds, err := SeedProbability(points, 4, distance.SquaredL2, rng)
	require.NoError(t, err)

	// All points distinct and n >= k: the full count must be produced.
	assert.Len(t, seeds, 4)

	for _, s := range seeds {
		assert.Contains(t, points, s)
	}
}

func TestSeedProbability_EarlyTermination(t *testing.T) {
	rng := random.NewRNG(7)

	// Two distinct locations only: the distance mass collapses after the
	// second seed, so the third can never be produced.
	points := [][]float64{{0, 0}, {0, 0}, {0, 0}, {10, 10}, {10, 10}}

	seeds, err := SeedProbability(points, 3, distance.SquaredL2, rng)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.NotEqual(t, seeds[0], seeds[1])
}

func TestSeedProbability_Deterministic(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {4, 4}, {9, 2}, {3, 8}}

	a, err := SeedProbability(points, 3, distance.SquaredL2, random.NewRNG(1))
	require.NoError(t, err)

	b, err := SeedProbability(points, 3, distance.SquaredL2, random.NewRNG(1))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSeedProbability_Errors(t *testing.T) {
	_, err := SeedProbability([][]float64{{0, 0}, {1, 1}}, 0, distance.SquaredL2, random.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = SeedProbability([][]float64{{0, 0}}, 1, distance.SquaredL2, random.NewRNG(1))

	var tooFew *ErrTooFewPoints
	assert.ErrorAs(t, err, &tooFew)
}

func TestSeedProbability_NilSource(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}}

	seeds, err := SeedProbability(points, 2, distance.SquaredL2, nil)
	require.NoError(t, err)
	assert.Len(t, seeds, 2)
}
