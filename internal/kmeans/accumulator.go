package kmeans

import "github.com/hupe1980/rgbkmeans/rgb"

// accumulator holds the per-iteration channel sums and member counts.
// Sums are float64 so large clusters do not lose precision.
type accumulator struct {
	sums   [][rgb.Channels]float64
	counts []int
}

func newAccumulator(k int) *accumulator {
	return &accumulator{
		sums:   make([][rgb.Channels]float64, k),
		counts: make([]int, k),
	}
}

func (a *accumulator) reset() {
	clear(a.sums)
	clear(a.counts)
}

func (a *accumulator) add(label int, p rgb.Pixel) {
	s := &a.sums[label]
	s[0] += float64(p[0])
	s[1] += float64(p[1])
	s[2] += float64(p[2])
	a.counts[label]++
}

// apply moves every centroid with members to the mean of its members and
// returns how many centroids had none.
func (a *accumulator) apply(centroids []rgb.Pixel) int {
	empty := 0
	for c, n := range a.counts {
		if n == 0 {
			empty++
			continue
		}
		s, cnt := a.sums[c], float64(n)
		centroids[c] = rgb.Pixel{
			float32(s[0] / cnt),
			float32(s[1] / cnt),
			float32(s[2] / cnt),
		}
	}
	return empty
}
