package rgbkmeans

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/rgbkmeans/internal/kmeans"
	"github.com/hupe1980/rgbkmeans/internal/resource"
	"github.com/hupe1980/rgbkmeans/rgb"
)

// Channels is the number of float32 values per pixel in flat buffers.
const Channels = rgb.Channels

// Pixel is one RGB sample.
type Pixel = rgb.Pixel

// Centroid is a cluster representative in the same space as the pixels.
type Centroid = rgb.Pixel

// Clusterer runs k-means with shared logging, metrics and resource limits.
// It is safe for concurrent use.
type Clusterer struct {
	logger         *Logger
	metrics        MetricsCollector
	rc             *resource.Controller
	maxConcurrency int
}

// New creates a Clusterer.
func New(optFns ...Option) *Clusterer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Clusterer{
		logger:         opts.logger,
		metrics:        opts.metricsCollector,
		maxConcurrency: opts.maxConcurrency,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:  opts.memoryLimit,
			MaxConcurrentRuns: int64(opts.maxConcurrency),
			RunsPerSecond:     opts.runsPerSecond,
			Burst:             opts.burst,
		}),
	}
}

var defaultClusterer = New()

// Run clusters numPixels pixels from the flat buffer points (r, g, b per
// pixel) into numCentroids centroids over exactly maxIters iterations.
//
// centroids must have length numCentroids*3 and labels length numPixels;
// both are overwritten. On error nothing is written.
func Run(points []float32, numPixels, numCentroids, maxIters int, seed int64, centroids []float32, labels []int) error {
	return defaultClusterer.Run(points, numPixels, numCentroids, maxIters, seed, centroids, labels)
}

// Cluster clusters pixels into numCentroids centroids and returns a new Result.
func Cluster(pixels []Pixel, numCentroids, maxIters int, seed int64) (*Result, error) {
	return defaultClusterer.Cluster(pixels, numCentroids, maxIters, seed)
}

// Run is the flat-buffer form of Cluster. See the package-level Run.
func (c *Clusterer) Run(points []float32, numPixels, numCentroids, maxIters int, seed int64, centroids []float32, labels []int) error {
	if err := checkFlat(points, numPixels, numCentroids, maxIters, centroids); err != nil {
		c.record(context.Background(), c.logger, numPixels, numCentroids, 0, 0, 0, err)
		return err
	}

	_, err := c.run(context.Background(), c.logger, rgb.FromFlat(points), rgb.FromFlat(centroids), labels, maxIters, seed)

	return err
}

// Cluster clusters pixels into numCentroids centroids over exactly maxIters
// iterations. The input slice is not modified.
func (c *Clusterer) Cluster(pixels []Pixel, numCentroids, maxIters int, seed int64) (*Result, error) {
	return c.cluster(context.Background(), c.logger, pixels, numCentroids, maxIters, seed)
}

func (c *Clusterer) cluster(ctx context.Context, logger *Logger, pixels []Pixel, numCentroids, maxIters int, seed int64) (*Result, error) {
	if err := kmeans.Validate(len(pixels), numCentroids, maxIters); err != nil {
		err = translateError(err)
		c.record(ctx, logger, len(pixels), numCentroids, 0, 0, 0, err)
		return nil, err
	}

	centroids := make([]Pixel, numCentroids)
	labels := make([]int, len(pixels))

	stats, err := c.run(ctx, logger, pixels, centroids, labels, maxIters, seed)
	if err != nil {
		return nil, err
	}

	return &Result{
		Centroids:  centroids,
		Labels:     labels,
		Counts:     kmeans.Counts(labels, numCentroids),
		Iterations: stats.Iterations,
	}, nil
}

func (c *Clusterer) run(ctx context.Context, logger *Logger, points, centroids []Pixel, labels []int, maxIters int, seed int64) (kmeans.Stats, error) {
	start := time.Now()

	stats, err := kmeans.Run(points, centroids, labels, maxIters, seed)
	err = translateError(err)

	c.record(ctx, logger, len(points), len(centroids), stats.Iterations, stats.EmptyClusters, time.Since(start), err)

	return stats, err
}

func (c *Clusterer) record(ctx context.Context, logger *Logger, pixels, k, iters, empty int, d time.Duration, err error) {
	c.metrics.RecordRun(pixels, k, iters, d, err)
	if err == nil && empty > 0 {
		c.metrics.RecordEmptyClusters(empty)
	}
	logger.LogRun(ctx, pixels, k, iters, empty, err)
}

// checkFlat validates the scalar arguments first, then the flat buffer
// lengths they imply. Lengths are compared by division so huge counts cannot
// overflow into a match.
func checkFlat(points []float32, numPixels, numCentroids, maxIters int, centroids []float32) error {
	if err := kmeans.Validate(numPixels, numCentroids, maxIters); err != nil {
		return translateError(err)
	}
	if !holdsPixels(points, numPixels) {
		return &BufferSizeError{Buffer: "points", Expected: flatLen(numPixels), Actual: len(points)}
	}
	if !holdsPixels(centroids, numCentroids) {
		return &BufferSizeError{Buffer: "centroids", Expected: flatLen(numCentroids), Actual: len(centroids)}
	}
	return nil
}

func holdsPixels(buf []float32, n int) bool {
	return len(buf)%Channels == 0 && len(buf)/Channels == n
}

// flatLen is n*Channels, saturated at math.MaxInt.
func flatLen(n int) int {
	if n > math.MaxInt/Channels {
		return math.MaxInt
	}
	return n * Channels
}
