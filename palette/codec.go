package palette

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/rgbkmeans/internal/compress"
	"github.com/hupe1980/rgbkmeans/internal/conv"
	"github.com/hupe1980/rgbkmeans/internal/hash"
	"github.com/hupe1980/rgbkmeans/rgb"
)

// Compression selects how the binary payload is stored.
type Compression = compress.Type

const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

const (
	magic      = "RGBP"
	version    = 1
	headerSize = 16
	pixelBytes = rgb.Channels * 4
)

// MaxColors is the largest palette the binary format accepts.
const MaxColors = 1 << 20

// EncodeOptions configures Marshal.
type EncodeOptions struct {
	Compression Compression
}

// Marshal encodes p in the binary palette format.
func Marshal(p *Palette, opts EncodeOptions) ([]byte, error) {
	if len(p.Colors) > MaxColors {
		return nil, fmt.Errorf("palette: %d colors exceed the limit of %d", len(p.Colors), MaxColors)
	}
	count, err := conv.IntToUint32(len(p.Colors))
	if err != nil {
		return nil, err
	}

	payload := make([]byte, len(p.Colors)*pixelBytes)
	off := 0
	for _, c := range p.Colors {
		for _, v := range c {
			binary.LittleEndian.PutUint32(payload[off:], math.Float32bits(v))
			off += 4
		}
	}

	block, err := compress.Encode(payload, opts.Compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(block))
	copy(out, magic)
	out[4] = version
	out[5] = byte(opts.Compression)
	binary.LittleEndian.PutUint32(out[8:], count)
	binary.LittleEndian.PutUint32(out[12:], hash.CRC32C(payload))

	return append(out, block...), nil
}

// Unmarshal decodes the binary palette format.
func Unmarshal(data []byte) (*Palette, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[:4])
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	comp := Compression(data[5])
	if !comp.Valid() {
		return nil, fmt.Errorf("%w: compression %s", ErrCorrupt, comp)
	}

	count, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[8:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if count > MaxColors {
		return nil, fmt.Errorf("%w: %d colors exceed the limit of %d", ErrCorrupt, count, MaxColors)
	}
	sum := binary.LittleEndian.Uint32(data[12:])

	payload, err := compress.Decode(data[headerSize:], comp, count*pixelBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if !hash.Verify(payload, sum) {
		return nil, ErrChecksum
	}

	colors := make([]rgb.Pixel, count)
	off := 0
	for i := range colors {
		for ch := range colors[i] {
			colors[i][ch] = math.Float32frombits(binary.LittleEndian.Uint32(payload[off:]))
			off += 4
		}
	}

	return &Palette{Colors: colors}, nil
}
