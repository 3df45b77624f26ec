package testutil

import (
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/rgbkmeans/rgb"
)

// MaxChannel is the exclusive upper bound of generated channel values.
const MaxChannel = 255

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	r := &RNG{seed: seed}
	r.rand = rand.New(rand.NewPCG(uint64(seed), 0))

	return r
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(uint64(r.seed), 0))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformPixels generates num pixels with every channel uniform in [0, MaxChannel).
func (r *RNG) UniformPixels(num int) []rgb.Pixel {
	r.mu.Lock()
	defer r.mu.Unlock()

	pixels := make([]rgb.Pixel, num)
	for i := range pixels {
		for c := range rgb.Channels {
			pixels[i][c] = r.rand.Float32() * MaxChannel
		}
	}

	return pixels
}

// UniformFlat is UniformPixels in the flat interleaved layout.
func (r *RNG) UniformFlat(num int) []float32 {
	return rgb.Flatten(r.UniformPixels(num))
}

// ClusteredPixels generates perCenter pixels around each center with
// gaussian noise of the given spread. Pixels are emitted center by center,
// so pixel i belongs to centers[i/perCenter].
func (r *RNG) ClusteredPixels(centers []rgb.Pixel, perCenter int, spread float32) []rgb.Pixel {
	r.mu.Lock()
	defer r.mu.Unlock()

	pixels := make([]rgb.Pixel, 0, len(centers)*perCenter)
	for _, center := range centers {
		for range perCenter {
			var p rgb.Pixel
			for c := range rgb.Channels {
				p[c] = center[c] + float32(r.rand.NormFloat64())*spread
			}
			pixels = append(pixels, p)
		}
	}

	return pixels
}

// Shuffle permutes pixels in place.
func (r *RNG) Shuffle(pixels []rgb.Pixel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rand.Shuffle(len(pixels), func(i, j int) {
		pixels[i], pixels[j] = pixels[j], pixels[i]
	})
}
