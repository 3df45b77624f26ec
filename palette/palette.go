package palette

import (
	"fmt"
	"slices"

	"github.com/hupe1980/rgbkmeans/internal/kmeans"
	"github.com/hupe1980/rgbkmeans/rgb"
)

// Palette is an ordered list of colors; a label indexes into Colors.
type Palette struct {
	Colors []rgb.Pixel
}

// New returns a palette holding a copy of colors.
func New(colors []rgb.Pixel) *Palette {
	return &Palette{Colors: slices.Clone(colors)}
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Nearest returns the index of the color closest to px.
// Ties resolve to the lowest index.
func (p *Palette) Nearest(px rgb.Pixel) (int, error) {
	if len(p.Colors) == 0 {
		return 0, ErrEmpty
	}
	return kmeans.Nearest(px, p.Colors), nil
}

// Closest returns the indices of the n colors closest to px, nearest first.
func (p *Palette) Closest(px rgb.Pixel, n int) []int {
	return kmeans.Closest(px, p.Colors, n)
}

// Assign labels every pixel with its nearest palette color, e.g. to quantize
// a new image with a palette trained on another one.
func (p *Palette) Assign(pixels []rgb.Pixel) ([]int, error) {
	if len(p.Colors) == 0 {
		return nil, ErrEmpty
	}
	labels := make([]int, len(pixels))
	kmeans.Assign(pixels, p.Colors, labels)
	return labels, nil
}

// Quantize maps every label to its palette color.
func (p *Palette) Quantize(labels []int) ([]rgb.Pixel, error) {
	out := make([]rgb.Pixel, len(labels))
	for i, l := range labels {
		if l < 0 || l >= len(p.Colors) {
			return nil, fmt.Errorf("%w: label %d at pixel %d, palette has %d colors", ErrLabelOutOfRange, l, i, len(p.Colors))
		}
		out[i] = p.Colors[l]
	}
	return out, nil
}
