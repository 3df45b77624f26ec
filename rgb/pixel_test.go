package rgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelAccessors(t *testing.T) {
	p := New(1, 2, 3)
	assert.Equal(t, float32(1), p.R())
	assert.Equal(t, float32(2), p.G())
	assert.Equal(t, float32(3), p.B())
}

func TestSquaredDistance(t *testing.T) {
	a := New(0, 0, 0)
	b := New(1, 2, 2)
	assert.Equal(t, float32(9), a.SquaredDistance(b))
	assert.Equal(t, float32(9), b.SquaredDistance(a))
	assert.Equal(t, float32(0), b.SquaredDistance(b))
}

func TestFromFlat_SharesMemory(t *testing.T) {
	flat := []float32{1, 2, 3, 4, 5, 6}
	px := FromFlat(flat)
	require.Len(t, px, 2)
	assert.Equal(t, New(4, 5, 6), px[1])

	px[0][1] = 42
	assert.Equal(t, float32(42), flat[1])
}

func TestFromFlat_Partial(t *testing.T) {
	assert.Nil(t, FromFlat(nil))
	assert.Nil(t, FromFlat([]float32{1, 2}))
	assert.Len(t, FromFlat([]float32{1, 2, 3, 4}), 1)
}

func TestFlatten(t *testing.T) {
	px := []Pixel{New(1, 2, 3), New(4, 5, 6)}
	flat := Flatten(px)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, flat)

	flat[5] = 7
	assert.Equal(t, float32(7), px[1].B())

	assert.Nil(t, Flatten(nil))
}
