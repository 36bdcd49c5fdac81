package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Postings materializes the assignment as one compressed bitmap of point
// indices per cluster. The bitmaps partition [0, n): every point appears in
// exactly one of them.
//
// Downstream consumers can intersect these with their own filters without
// rescanning the assignment slice.
func (r *Result[T]) Postings() []*roaring.Bitmap {
	lists := make([]*roaring.Bitmap, len(r.Centroids))
	for j := range lists {
		lists[j] = roaring.New()
	}

	for i, j := range r.Assignment {
		lists[j].Add(uint32(i))
	}

	return lists
}
