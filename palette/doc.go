// Package palette holds the colors produced by a clustering run and moves
// them in and out of storage.
//
// Two encodings are provided. The colormap text format writes one
// "r g b" line per color with each channel truncated to an integer:
//
//	0 0 0
//	255 128 7
//
// The binary format keeps full float32 precision:
//
//	magic "RGBP" | version u8 | compression u8 | reserved u16 | count u32 | crc32c u32 | block
//
// where block is the little-endian float32 payload (count*3 values) stored
// raw, LZ4- or ZSTD-compressed, and the checksum covers the uncompressed
// payload. Store persists binary palettes to any blobstore.BlobStore.
package palette
