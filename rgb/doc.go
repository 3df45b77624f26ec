// Package rgb defines the 3-channel pixel triple shared by the clustering
// engine, the public API and the palette codecs.
//
// A Pixel is a [3]float32 so that a []Pixel has exactly the memory layout of a
// flat []float32 buffer with stride 3 (r, g, b). FromFlat and Flatten convert
// between the two views without copying.
package rgb
