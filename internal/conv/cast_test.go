package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = IntToUint32(-1)
	assert.Error(t, err)

	if math.MaxInt > math.MaxUint32 {
		big := uint64(math.MaxUint32) + 1
		_, err = IntToUint32(int(big))
		assert.Error(t, err)
	}
}

func TestUint32ToInt(t *testing.T) {
	v, err := Uint32ToInt(7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestChannelToInt(t *testing.T) {
	assert.Equal(t, 12, ChannelToInt(12.9))
	assert.Equal(t, -3, ChannelToInt(-3.7))
	assert.Equal(t, 0, ChannelToInt(float32(math.NaN())))
	assert.Equal(t, math.MaxInt32, ChannelToInt(float32(math.Inf(1))))
	assert.Equal(t, math.MinInt32, ChannelToInt(float32(math.Inf(-1))))
}
