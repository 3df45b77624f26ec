// Package rgbkmeans clusters RGB colour samples with Lloyd's k-means.
//
// The engine is deterministic: the same pixels, centroid count, iteration
// count and seed always produce the same centroids and labels. Initial
// centroids are drawn uniformly at random, with replacement, from the input
// pixels using a generator owned by the run, so concurrent runs never
// interfere with each other.
//
// # Quick Start
//
// Flat buffers (the layout image decoders produce):
//
//	points := []float32{r0, g0, b0, r1, g1, b1 /* ... */}
//	centroids := make([]float32, k*3)
//	labels := make([]int, numPixels)
//	err := rgbkmeans.Run(points, numPixels, k, 20, seed, centroids, labels)
//
// Pixel slices with a result value:
//
//	res, _ := rgbkmeans.Cluster(pixels, 16, 20, seed)
//	quantized := res.Quantize()
//	pal := res.Palette()
//
// # Iterations
//
// A run performs exactly maxIters assignment/update iterations; there is no
// convergence check. Labels come from the last assignment pass, which
// precedes the last centroid update. With maxIters == 0 the centroids are
// the initial sample and every label is 0.
//
// # Clusterer
//
// A Clusterer carries logging, metrics and resource limits shared by its
// runs and drives batches of independent jobs:
//
//	c := rgbkmeans.New(
//	    rgbkmeans.WithLogger(rgbkmeans.NewJSONLogger(slog.LevelInfo)),
//	    rgbkmeans.WithMaxConcurrency(4),
//	    rgbkmeans.WithMemoryLimit(256<<20),
//	)
//	results, err := c.ClusterBatch(ctx, jobs)
//
// # Errors
//
// Every validation failure matches ErrInvalidArgument via errors.Is and is
// reported before any buffer is written. Use errors.As with *ArgumentError
// or *BufferSizeError for the offending argument.
//
// # Palettes
//
// Result.Palette converts centroids into a palette.Palette, which can be
// written as a text colormap or persisted through palette.Store on any
// blobstore backend (local disk, MinIO, S3).
package rgbkmeans
