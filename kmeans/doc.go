// Package kmeans implements k-means clustering with probability-weighted
// (k-means++) seeding, generic over the vector element type and the distance
// function.
//
// The engine is split along its natural seams: SeedGreedy and SeedProbability
// pick initial centroids, Assign maps points to their nearest centroid, Lloyd
// refines centroids until the mean per-cluster displacement drops below
// epsilon or the iteration budget runs out, and KMeans wires the pieces
// together.
//
// A single run is synchronous and touches no shared state beyond the injected
// random.Source, so concurrent runs over disjoint inputs are safe.
package kmeans
