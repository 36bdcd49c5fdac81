package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/random"
)

func TestResult_Postings(t *testing.T) {
	points := [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}

	res, err := KMeans(points, 2, distance.SquaredL2, distance.SquaredL2,
		WithRandomSource(random.NewRNG(1)),
	)
	require.NoError(t, err)

	lists := res.Postings()
	require.Len(t, lists, len(res.Centroids))

	var total uint64

	seen := make(map[uint32]int)

	for j, list := range lists {
		total += list.GetCardinality()

		it := list.Iterator()
		for it.HasNext() {
			id := it.Next()
			seen[id]++

			assert.Equal(t, j, res.Assignment[id])
		}
	}

	// The bitmaps partition the input: every point exactly once.
	assert.Equal(t, uint64(len(points)), total)

	for i := range points {
		assert.Equal(t, 1, seen[uint32(i)])
	}
}
