package utcore_test

import (
	"fmt"
	"sort"

	"github.com/blockspacer/utcore"
	"github.com/blockspacer/utcore/kmeans"
	"github.com/blockspacer/utcore/random"
)

func ExampleCluster() {
	points := [][]float64{
		{0, 0}, {0, 0},
		{10, 10}, {10, 10},
	}

	res, err := utcore.Cluster(points, 2,
		utcore.WithEngineOptions(kmeans.WithRandomSource(random.NewRNG(1))),
	)
	if err != nil {
		panic(err)
	}

	centroids := make([][]float64, len(res.Centroids))
	copy(centroids, res.Centroids)
	sort.Slice(centroids, func(i, j int) bool { return centroids[i][0] < centroids[j][0] })

	fmt.Println("clusters:", len(centroids))
	fmt.Println("converged:", res.Converged)
	for _, c := range centroids {
		fmt.Println(c)
	}
	// Output:
	// clusters: 2
	// converged: true
	// [0 0]
	// [10 10]
}
