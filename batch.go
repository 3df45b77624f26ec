package rgbkmeans

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rgbkmeans/internal/kmeans"
	"github.com/hupe1980/rgbkmeans/internal/resource"
)

// Job describes one clustering run of a batch.
type Job struct {
	// Name identifies the job in logs and errors. Optional.
	Name         string
	Pixels       []Pixel
	NumCentroids int
	MaxIters     int
	Seed         int64
}

func (j Job) label(i int) string {
	if j.Name == "" {
		return fmt.Sprintf("job %d", i)
	}
	return fmt.Sprintf("job %d (%s)", i, j.Name)
}

// EstimateJobBytes is the working memory charged against the memory limit
// for a run over numPixels pixels and numCentroids centroids: labels,
// centroids, per-centroid sums and counts, and the result counts.
func EstimateJobBytes(numPixels, numCentroids int) int64 {
	const (
		labelBytes    = 8
		centroidBytes = 4 * Channels
		sumBytes      = 8 * Channels
		countBytes    = 8
	)
	return int64(numPixels)*labelBytes + int64(numCentroids)*(centroidBytes+sumBytes+2*countBytes)
}

// ClusterBatch runs independent jobs concurrently, subject to the
// Clusterer's concurrency, memory and start-rate limits. Results are
// index-aligned with jobs.
//
// Every job is validated before any run starts, including jobs whose
// estimated memory exceeds the whole memory limit. At most maxConcurrency
// jobs are in flight per call. The first failure cancels jobs that have not
// started yet and is returned; a run in progress always completes.
func (c *Clusterer) ClusterBatch(ctx context.Context, jobs []Job) ([]*Result, error) {
	start := time.Now()

	for i, job := range jobs {
		if err := c.validateJob(job); err != nil {
			c.finishBatch(ctx, len(jobs), len(jobs), start)
			return nil, fmt.Errorf("%s: %w", job.label(i), err)
		}
	}

	results := make([]*Result, len(jobs))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := c.runJob(gctx, job)
			if err != nil {
				failed.Add(1)
				return fmt.Errorf("%s: %w", job.label(i), err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	c.finishBatch(ctx, len(jobs), int(failed.Load()), start)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Clusterer) validateJob(job Job) error {
	if err := kmeans.Validate(len(job.Pixels), job.NumCentroids, job.MaxIters); err != nil {
		return translateError(err)
	}
	if limit := c.rc.MemoryLimit(); limit > 0 {
		if bytes := EstimateJobBytes(len(job.Pixels), job.NumCentroids); bytes > limit {
			return fmt.Errorf("%w: job needs %d bytes, limit is %d", resource.ErrMemoryLimitExceeded, bytes, limit)
		}
	}
	return nil
}

func (c *Clusterer) runJob(ctx context.Context, job Job) (*Result, error) {
	if err := c.rc.AcquireRun(ctx); err != nil {
		return nil, err
	}
	defer c.rc.ReleaseRun()

	bytes := EstimateJobBytes(len(job.Pixels), job.NumCentroids)
	if err := c.rc.WaitMemory(ctx, bytes); err != nil {
		return nil, err
	}
	defer c.rc.ReleaseMemory(bytes)

	if err := c.rc.WaitStart(ctx); err != nil {
		return nil, err
	}

	logger := c.logger
	if job.Name != "" {
		logger = logger.WithJob(job.Name)
	}

	return c.cluster(ctx, logger.WithSeed(job.Seed), job.Pixels, job.NumCentroids, job.MaxIters, job.Seed)
}

func (c *Clusterer) finishBatch(ctx context.Context, count, failed int, start time.Time) {
	c.metrics.RecordBatch(count, failed, time.Since(start))
	c.logger.LogBatch(ctx, count, failed)
}
