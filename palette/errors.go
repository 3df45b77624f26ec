package palette

import "errors"

var (
	// ErrCorrupt is returned when encoded palette data is malformed.
	ErrCorrupt = errors.New("palette: corrupt data")
	// ErrChecksum is returned when the payload checksum does not match.
	ErrChecksum = errors.New("palette: checksum mismatch")
	// ErrUnsupportedVersion is returned for an unknown format version.
	ErrUnsupportedVersion = errors.New("palette: unsupported version")
	// ErrLabelOutOfRange is returned when a label has no palette entry.
	ErrLabelOutOfRange = errors.New("palette: label out of range")
	// ErrEmpty is returned when a lookup is attempted on an empty palette.
	ErrEmpty = errors.New("palette: empty palette")
)
