// Package quantize implements product quantization on top of the clustering
// engine.
//
// A ProductQuantizer splits vectors into M subvectors and learns a k-means
// codebook per subspace; vectors are then stored as M one-byte centroid
// codes instead of full-width elements.
package quantize

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/kmeans"
)

var (
	// ErrNotTrained is returned by Encode/Decode before Train has completed.
	ErrNotTrained = errors.New("quantizer is not trained")
)

// ProductQuantizer learns one codebook per subspace and encodes vectors as
// per-subspace nearest-centroid codes.
type ProductQuantizer[T distance.Float] struct {
	dimension    int
	numSubspaces int // M
	numCentroids int // K, <= 256 so codes fit a byte
	subDim       int // dimension / M
	codebooks    [][][]T
	trained      bool
}

// NewProductQuantizer creates a quantizer for vectors of the given dimension,
// split into numSubspaces subvectors with numCentroids codes each.
func NewProductQuantizer[T distance.Float](dimension, numSubspaces, numCentroids int) (*ProductQuantizer[T], error) {
	if dimension <= 0 || numSubspaces <= 0 {
		return nil, errors.New("dimension and numSubspaces must be positive")
	}

	if dimension%numSubspaces != 0 {
		return nil, errors.New("dimension must be divisible by numSubspaces")
	}

	if numCentroids <= 0 {
		return nil, errors.New("numCentroids must be positive")
	}

	if numCentroids > 256 {
		return nil, errors.New("numCentroids must be <= 256 for byte codes")
	}

	return &ProductQuantizer[T]{
		dimension:    dimension,
		numSubspaces: numSubspaces,
		numCentroids: numCentroids,
		subDim:       dimension / numSubspaces,
		codebooks:    make([][][]T, numSubspaces),
	}, nil
}

// Train learns the codebooks from the given vectors, one subspace at a time.
// Subspaces are independent, so they are trained concurrently; each
// individual run stays sequential.
//
// The number of training vectors must exceed numCentroids. Engine options
// (iteration budget, random source) are forwarded to every subspace run.
func (pq *ProductQuantizer[T]) Train(ctx context.Context, vectors [][]T, optFns ...kmeans.Option) error {
	if len(vectors) <= pq.numCentroids {
		return fmt.Errorf("need more than %d training vectors, got %d", pq.numCentroids, len(vectors))
	}

	for _, v := range vectors {
		if len(v) != pq.dimension {
			return fmt.Errorf("training vector dimension %d, expected %d", len(v), pq.dimension)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for m := 0; m < pq.numSubspaces; m++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := m * pq.subDim
			end := start + pq.subDim

			sub := make([][]T, len(vectors))
			for i, v := range vectors {
				sub[i] = v[start:end]
			}

			res, err := kmeans.KMeans(sub, pq.numCentroids, distance.SquaredL2, distance.SquaredL2, optFns...)
			if err != nil {
				return fmt.Errorf("subspace %d: %w", m, err)
			}

			codebook := res.Centroids

			// Seeding can come up short on duplicate-heavy subspaces; pad by
			// cycling training subvectors so every code stays addressable.
			for i := 0; len(codebook) < pq.numCentroids; i++ {
				codebook = append(codebook, slices.Clone(sub[i%len(sub)]))
			}

			pq.codebooks[m] = codebook

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	pq.trained = true

	return nil
}

// Trained reports whether Train has completed.
func (pq *ProductQuantizer[T]) Trained() bool {
	return pq.trained
}

// Encode quantizes a vector into one centroid code per subspace.
func (pq *ProductQuantizer[T]) Encode(vec []T) ([]byte, error) {
	if !pq.trained {
		return nil, ErrNotTrained
	}

	if len(vec) != pq.dimension {
		return nil, fmt.Errorf("vector dimension %d, expected %d", len(vec), pq.dimension)
	}

	codes := make([]byte, pq.numSubspaces)

	for m := range codes {
		start := m * pq.subDim

		indices, err := kmeans.Assign([][]T{vec[start : start+pq.subDim]}, pq.codebooks[m], distance.SquaredL2)
		if err != nil {
			return nil, err
		}

		codes[m] = byte(indices[0])
	}

	return codes, nil
}

// Decode reconstructs the approximate vector for the given codes.
func (pq *ProductQuantizer[T]) Decode(codes []byte) ([]T, error) {
	if !pq.trained {
		return nil, ErrNotTrained
	}

	if len(codes) != pq.numSubspaces {
		return nil, fmt.Errorf("code length %d, expected %d", len(codes), pq.numSubspaces)
	}

	vec := make([]T, 0, pq.dimension)

	for m, code := range codes {
		if int(code) >= len(pq.codebooks[m]) {
			return nil, fmt.Errorf("code %d out of range for subspace %d", code, m)
		}

		vec = append(vec, pq.codebooks[m][code]...)
	}

	return vec, nil
}

// CompressionRatio returns stored bytes per original vector byte.
func (pq *ProductQuantizer[T]) CompressionRatio() float64 {
	var zero T

	originalBytes := pq.dimension * int(unsafe.Sizeof(zero))

	return float64(originalBytes) / float64(pq.numSubspaces)
}
