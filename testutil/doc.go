// Package testutil provides testing utilities for rgbkmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with helpers for generating
// pixel data sets.
//
// # Random Pixel Generation
//
//	rng := testutil.NewRNG(seed)
//	pixels := rng.UniformPixels(1024)          // channels in [0, 255)
//	blobs := rng.ClusteredPixels(centers, 64, 4) // gaussian blobs
package testutil
