package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rgbkmeans/rgb"
)

func TestUniformPixels(t *testing.T) {
	rng := NewRNG(4711)

	pixels := rng.UniformPixels(64)

	require.Len(t, pixels, 64)
	for _, p := range pixels {
		for _, v := range p {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.Less(t, v, float32(MaxChannel))
		}
	}
}

func TestUniformFlat(t *testing.T) {
	rng := NewRNG(4711)

	flat := rng.UniformFlat(10)

	assert.Len(t, flat, 10*rgb.Channels)
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.UniformPixels(16)

	rng.Reset()
	b := rng.UniformPixels(16)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestClusteredPixels(t *testing.T) {
	rng := NewRNG(7)
	centers := []rgb.Pixel{{10, 10, 10}, {200, 200, 200}}

	pixels := rng.ClusteredPixels(centers, 50, 2)

	require.Len(t, pixels, 100)
	for i, p := range pixels {
		center := centers[i/50]
		assert.Less(t, p.SquaredDistance(center), float32(30*30), "pixel %d", i)
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	rng := NewRNG(1)
	pixels := []rgb.Pixel{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}

	shuffled := append([]rgb.Pixel(nil), pixels...)
	rng.Shuffle(shuffled)

	assert.ElementsMatch(t, pixels, shuffled)
}

func TestIntN(t *testing.T) {
	rng := NewRNG(3)

	for range 100 {
		v := rng.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Less(t, rng.Float32(), float32(1))
}
