package rgbkmeans

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rgbkmeans/palette"
)

// Result holds the outcome of one clustering run.
type Result struct {
	// Centroids are the final centroid positions.
	Centroids []Centroid
	// Labels[i] is the centroid index assigned to pixel i by the last
	// assignment pass.
	Labels []int
	// Counts[c] is the number of labels equal to c.
	Counts []int
	// Iterations is the number of assignment/update iterations performed.
	Iterations int
}

// Quantize returns a new pixel buffer with every pixel replaced by its
// centroid.
func (r *Result) Quantize() []Pixel {
	out := make([]Pixel, len(r.Labels))
	for i, l := range r.Labels {
		out[i] = r.Centroids[l]
	}
	return out
}

// Empty returns the indices of centroids that own no pixel, ascending.
func (r *Result) Empty() []int {
	var empty []int
	for c, n := range r.Counts {
		if n == 0 {
			empty = append(empty, c)
		}
	}
	return empty
}

// Members returns the set of pixel indices labelled c. It is empty when c is
// out of range.
func (r *Result) Members(c int) *roaring.Bitmap {
	bm := roaring.New()
	for i, l := range r.Labels {
		if l == c {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// MemberSets returns Members for every centroid in a single pass.
func (r *Result) MemberSets() []*roaring.Bitmap {
	sets := make([]*roaring.Bitmap, len(r.Centroids))
	for c := range sets {
		sets[c] = roaring.New()
	}
	for i, l := range r.Labels {
		sets[l].Add(uint32(i))
	}
	return sets
}

// Palette returns the centroids as a palette. The palette owns a copy.
func (r *Result) Palette() *palette.Palette {
	return palette.New(r.Centroids)
}
