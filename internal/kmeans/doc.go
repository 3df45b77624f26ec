// Package kmeans implements Lloyd's k-means over RGB pixel triples.
//
// Centroids are seeded by sampling input pixels uniformly with replacement
// from a generator owned by the call, then refined for a fixed number of
// assign/update iterations. There is no convergence check and empty clusters
// keep their previous position.
package kmeans
