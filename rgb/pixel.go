package rgb

import "unsafe"

// Channels is the number of channels in a Pixel.
const Channels = 3

// Pixel is an (r, g, b) triple of channel values.
type Pixel [Channels]float32

// New returns the pixel (r, g, b).
func New(r, g, b float32) Pixel {
	return Pixel{r, g, b}
}

// R returns the red channel.
func (p Pixel) R() float32 { return p[0] }

// G returns the green channel.
func (p Pixel) G() float32 { return p[1] }

// B returns the blue channel.
func (p Pixel) B() float32 { return p[2] }

// SquaredDistance returns the squared Euclidean distance between p and q.
// The sum is accumulated in channel order so results are reproducible.
func (p Pixel) SquaredDistance(q Pixel) float32 {
	dr := p[0] - q[0]
	dg := p[1] - q[1]
	db := p[2] - q[2]
	return dr*dr + dg*dg + db*db
}

// FromFlat reinterprets a flat r,g,b buffer as pixels without copying.
// Trailing values that do not form a whole pixel are ignored.
func FromFlat(flat []float32) []Pixel {
	n := len(flat) / Channels
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Pixel)(unsafe.Pointer(&flat[0])), n)
}

// Flatten reinterprets pixels as a flat r,g,b buffer without copying.
func Flatten(pixels []Pixel) []float32 {
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&pixels[0])), len(pixels)*Channels)
}
