// Package resource bounds the work a Clusterer runs at once.
//
// The Controller manages three limits:
//
//   - Memory: a weighted budget for the scratch and output buffers of
//     in-flight runs (blocking acquire; oversize requests fail)
//   - Concurrency: a cap on simultaneously executing runs
//   - Rate: a token bucket on run starts
//
// Memory is reserved per run before its buffers are allocated:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:  256 << 20,
//	    MaxConcurrentRuns: 4,
//	})
//
//	if err := rc.WaitMemory(ctx, bytes); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(bytes)
//
// All methods are safe for concurrent use and treat a nil Controller as
// unlimited.
package resource
