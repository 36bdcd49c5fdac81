package utcore

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/kmeans"
	"github.com/blockspacer/utcore/random"
	"github.com/blockspacer/utcore/testutil"
)

func TestNew_Errors(t *testing.T) {
	_, err := New[float64](0)
	assert.ErrorIs(t, err, kmeans.ErrInvalidK)

	_, err = New[float64](2, WithMetric(distance.Metric(999)))
	assert.Error(t, err)

	_, err = New[float64](2, WithSeedMetric(distance.Metric(999)))
	assert.Error(t, err)
}

func TestClusterer_Cluster(t *testing.T) {
	rng := random.NewRNG(1)
	centers := [][]float64{{0, 0}, {50, 50}, {0, 50}}
	points := testutil.Clustered(rng, centers, 20, 0.5)

	c, err := New[float64](3,
		WithLogger(NewTextLogger(slog.LevelError)),
		WithEngineOptions(kmeans.WithRandomSource(rng)),
	)
	require.NoError(t, err)

	res, err := c.Cluster(points)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	require.Len(t, res.Centroids, 3)
	assert.Len(t, res.Assignment, len(points))

	// Well-separated clusters: points generated around the same center must
	// land in the same cluster.
	for g := 0; g < 3; g++ {
		want := res.Assignment[g*20]
		for i := g * 20; i < (g+1)*20; i++ {
			assert.Equal(t, want, res.Assignment[i])
		}
	}
}

func TestClusterer_Deterministic(t *testing.T) {
	centers := [][]float64{{0, 0}, {30, 0}}
	points := testutil.Clustered(random.NewRNG(9), centers, 10, 0.3)

	run := func(seed int64) *kmeans.Result[float64] {
		res, err := Cluster(points, 2,
			WithEngineOptions(kmeans.WithRandomSource(random.NewRNG(seed))),
		)
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(4), run(4))
}

func TestCluster_SeparateMetrics(t *testing.T) {
	points := [][]float64{{0}, {1}, {2}, {8}, {9}, {10}}

	res, err := Cluster(points, 2,
		WithMetric(distance.MetricSquaredL2),
		WithSeedMetric(distance.MetricL2),
		WithEngineOptions(kmeans.WithRandomSource(random.NewRNG(2))),
	)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Len(t, res.Centroids, 2)
}

func TestCluster_TooFewPoints(t *testing.T) {
	_, err := Cluster([][]float64{{0}, {1}}, 2)

	var tooFew *kmeans.ErrTooFewPoints
	assert.ErrorAs(t, err, &tooFew)
}
