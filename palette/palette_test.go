package palette

import (
	"testing"

	"github.com/hupe1980/rgbkmeans/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() *Palette {
	return New([]rgb.Pixel{
		{0, 0, 0},
		{128, 64, 32},
		{255, 255, 255},
	})
}

func TestNew_Copies(t *testing.T) {
	colors := []rgb.Pixel{{1, 2, 3}}
	p := New(colors)
	colors[0] = rgb.Pixel{}
	assert.Equal(t, rgb.Pixel{1, 2, 3}, p.Colors[0])
	assert.Equal(t, 1, p.Len())
}

func TestPalette_Nearest(t *testing.T) {
	p := testPalette()

	idx, err := p.Nearest(rgb.Pixel{120, 60, 40})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = New(nil).Nearest(rgb.Pixel{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPalette_Closest(t *testing.T) {
	p := testPalette()
	assert.Equal(t, []int{2, 1}, p.Closest(rgb.Pixel{250, 250, 250}, 2))
}

func TestPalette_AssignAndQuantize(t *testing.T) {
	p := testPalette()
	pixels := []rgb.Pixel{{10, 10, 10}, {250, 240, 230}, {130, 70, 30}}

	labels, err := p.Assign(pixels)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, labels)

	out, err := p.Quantize(labels)
	require.NoError(t, err)
	assert.Equal(t, []rgb.Pixel{p.Colors[0], p.Colors[2], p.Colors[1]}, out)

	_, err = New(nil).Assign(pixels)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPalette_QuantizeOutOfRange(t *testing.T) {
	p := testPalette()

	_, err := p.Quantize([]int{0, 3})
	assert.ErrorIs(t, err, ErrLabelOutOfRange)

	_, err = p.Quantize([]int{-1})
	assert.ErrorIs(t, err, ErrLabelOutOfRange)
}
