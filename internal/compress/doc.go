// Package compress implements the single-block codec used by the binary
// palette format.
//
// A block is [UncompressedSize uint32][CompressedSize uint32][Data...] in
// little endian. CompressedSize == 0 marks data stored raw, either because
// no compression was requested or because compression did not pay off.
package compress
