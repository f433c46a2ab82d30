package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is the number of files processed at once when
// WithConcurrency is not given.
const defaultConcurrency = 4

// BatchProcessor handles concurrent processing of multiple inventory files.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because it keeps the Pipeline focused on a
// single file and lets the CLI choose between ordered and streaming output.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each file.
	// We use a factory to ensure each file gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent pipelines.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent pipelines.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each file to create a fresh
// pipeline instance, so pipeline state doesn't leak between files.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     defaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs the pipeline for every source concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
//
// The returned jobs are in the order of sources, whatever order they
// finished in. A failed file does not stop the others; its error is
// recorded in Job.Err. The error return is only set on cancellation, in
// which case sources that never started have a nil job.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, sources []string) ([]*Job, error) {
	jobs := make([]*Job, len(sources))
	err := bp.ProcessBatchWithCallback(ctx, sources, func(job *Job, index int) {
		// Each goroutine writes its own index only
		jobs[index] = job
	})
	return jobs, err
}

// ProcessBatchWithCallback runs the pipeline for every source and calls
// callback for each completed job. This is useful for streaming results.
//
// The callback receives the job and the index of its source. It is called
// from the goroutine that completed the job, so it should be thread-safe if
// it accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	sources []string,
	callback func(job *Job, index int),
) error {
	bp.logger.Debug("starting batch processing",
		"total_sources", len(sources),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			job := NewJob(source)
			if err := bp.pipelineFactory().Execute(ctx, job); err != nil {
				// Don't return the error to errgroup; other files continue
				bp.logger.Warn("report failed",
					"source", source,
					"error", err,
				)
			}

			callback(job, i)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"total_sources", len(sources),
		"elapsed", time.Since(startTime),
	)

	return err
}
