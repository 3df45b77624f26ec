package rgbkmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *Result {
	return &Result{
		Centroids: []Centroid{{0, 0, 0}, {255, 255, 255}, {128, 0, 0}},
		Labels:    []int{1, 0, 0, 1, 1},
		Counts:    []int{2, 3, 0},
	}
}

func TestResult_Quantize(t *testing.T) {
	res := testResult()

	got := res.Quantize()

	assert.Equal(t, []Pixel{
		{255, 255, 255}, {0, 0, 0}, {0, 0, 0}, {255, 255, 255}, {255, 255, 255},
	}, got)
}

func TestResult_Empty(t *testing.T) {
	assert.Equal(t, []int{2}, testResult().Empty())

	res := testResult()
	res.Counts = []int{2, 3, 1}
	assert.Empty(t, res.Empty())
}

func TestResult_Members(t *testing.T) {
	res := testResult()

	assert.Equal(t, []uint32{1, 2}, res.Members(0).ToArray())
	assert.Equal(t, []uint32{0, 3, 4}, res.Members(1).ToArray())
	assert.True(t, res.Members(2).IsEmpty())
	assert.True(t, res.Members(7).IsEmpty())

	sets := res.MemberSets()
	require.Len(t, sets, 3)
	for c, set := range sets {
		assert.True(t, set.Equals(res.Members(c)), "centroid %d", c)
		assert.Equal(t, uint64(res.Counts[c]), set.GetCardinality())
	}
}

func TestResult_Palette(t *testing.T) {
	res := testResult()

	p := res.Palette()
	require.Equal(t, 3, p.Len())
	assert.Equal(t, res.Centroids, p.Colors)

	p.Colors[0] = Pixel{1, 2, 3}
	assert.Equal(t, Centroid{0, 0, 0}, res.Centroids[0])
}
