package kmeans

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/hupe1980/rgbkmeans/rgb"
)

// pcgStream is the fixed PCG stream selector; the seed picks the state.
const pcgStream = 0x5eed

// Stats summarizes a finished run.
type Stats struct {
	// Iterations is the number of assign/update cycles performed.
	Iterations int
	// EmptyClusters is the number of centroids that received no pixels in
	// the final update step.
	EmptyClusters int
}

// Validate checks the scalar arguments of a run.
func Validate(numPixels, numCentroids, maxIters int) error {
	if numPixels <= 0 {
		return &ArgumentError{Name: "num_pixels", Value: numPixels}
	}
	if numCentroids <= 0 {
		return &ArgumentError{Name: "num_centroids", Value: numCentroids}
	}
	if maxIters < 0 {
		return &ArgumentError{Name: "max_iters", Value: maxIters}
	}
	return nil
}

// Run seeds len(centroids) centroids from points and performs exactly maxIters
// Lloyd iterations. Final centroids are written to centroids and the labels
// of the last assignment pass to labels. With maxIters == 0 every label is 0.
//
// Arguments are validated before anything is written.
func Run(points, centroids []rgb.Pixel, labels []int, maxIters int, seed int64) (Stats, error) {
	if err := Validate(len(points), len(centroids), maxIters); err != nil {
		return Stats{}, err
	}
	if len(labels) != len(points) {
		return Stats{}, &BufferSizeError{Buffer: "labels", Expected: len(points), Actual: len(labels)}
	}

	Init(points, centroids, seed)
	clear(labels)

	return Lloyd(points, centroids, labels, maxIters), nil
}

// InitialIndices returns the pixel indices Init samples for the given seed.
func InitialIndices(seed int64, numPixels, numCentroids int) []int {
	r := newRand(seed)
	idx := make([]int, numCentroids)
	for i := range idx {
		idx[i] = r.IntN(numPixels)
	}
	return idx
}

// Init copies one uniformly sampled pixel into every centroid slot.
// Sampling is with replacement, so slots may share a pixel.
func Init(points, centroids []rgb.Pixel, seed int64) {
	r := newRand(seed)
	for i := range centroids {
		centroids[i] = points[r.IntN(len(points))]
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// Lloyd refines centroids in place for exactly maxIters iterations starting
// from their current values.
func Lloyd(points, centroids []rgb.Pixel, labels []int, maxIters int) Stats {
	acc := newAccumulator(len(centroids))

	stats := Stats{}
	for iter := 0; iter < maxIters; iter++ {
		// Assignment step
		Assign(points, centroids, labels)

		// Update step
		acc.reset()
		for i, p := range points {
			acc.add(labels[i], p)
		}
		stats.EmptyClusters = acc.apply(centroids)
		stats.Iterations++
	}

	return stats
}

// Assign labels every point with its nearest centroid.
// centroids is only read.
func Assign(points, centroids []rgb.Pixel, labels []int) {
	for i, p := range points {
		labels[i] = Nearest(p, centroids)
	}
}

// Nearest returns the index of the centroid closest to p.
// Ties resolve to the lowest index.
func Nearest(p rgb.Pixel, centroids []rgb.Pixel) int {
	best := 0
	minDist := float32(math.MaxFloat32)

	for c, center := range centroids {
		d := p.SquaredDistance(center)
		if d < minDist {
			minDist = d
			best = c
		}
	}

	return best
}

type centroidDist struct {
	id   int
	dist float32
}

// Closest returns the indices of the n centroids closest to p, nearest first.
func Closest(p rgb.Pixel, centroids []rgb.Pixel, n int) []int {
	if n > len(centroids) {
		n = len(centroids)
	}
	if n <= 0 {
		return nil
	}

	dists := make([]centroidDist, len(centroids))
	for i, center := range centroids {
		dists[i] = centroidDist{id: i, dist: p.SquaredDistance(center)}
	}

	sort.SliceStable(dists, func(i, j int) bool {
		return dists[i].dist < dists[j].dist
	})

	result := make([]int, n)
	for i := range result {
		result[i] = dists[i].id
	}
	return result
}

// Counts returns the number of labels equal to each centroid index.
func Counts(labels []int, numCentroids int) []int {
	counts := make([]int, numCentroids)
	for _, l := range labels {
		counts[l]++
	}
	return counts
}
