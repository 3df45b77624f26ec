// Package conv provides checked integer conversions for values read from or
// written to encoded headers.
package conv
