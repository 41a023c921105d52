// Package async fans a batch of documents out over a bounded worker pool.
// Results come back indexed by input position, so callers see the same
// ordering a sequential run would produce.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
)

type BatchRunner struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*BatchRunner)

func WithWorkers(n int) Option {
	return func(r *BatchRunner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithBatchTimeout(d time.Duration) Option {
	return func(r *BatchRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewBatchRunner(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *BatchRunner {
	r := &BatchRunner{
		proc:    proc,
		logger:  logger,
		workers: 4,
	}
	if logger == nil {
		r.logger = slog.Default()
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run processes paths concurrently. Outcome i always corresponds to paths[i];
// per-document failures land in the outcome, never as a returned error.
func (r *BatchRunner) Run(ctx context.Context, paths []string) []pipeline.Outcome {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out := make([]pipeline.Outcome, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := r.workers
	if workers > len(paths) {
		workers = len(paths)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.logger.Debug("worker started", "worker_id", workerID)
			for i := range jobs {
				out[i] = r.proc.ProcessDocument(ctx, paths[i])
			}
			r.logger.Debug("worker stopped", "worker_id", workerID)
		}(w + 1)
	}

	// once the context expires the processor fails each remaining document
	// fast, so every index still gets an outcome
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
