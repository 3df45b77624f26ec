// Package hash provides the CRC32-Castagnoli checksum used to protect
// encoded palettes.
//
//	checksum := hash.CRC32C(payload)
//	ok := hash.Verify(payload, checksum)
package hash
