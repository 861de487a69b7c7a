package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Worker defines a background job that polls for work.
type Worker interface {
	Start(ctx context.Context)
	Name() string
}

// BaseWorker provides common polling infrastructure.
type BaseWorker struct {
	name     string
	interval time.Duration
	log      *slog.Logger
}

// NewBaseWorker creates a new base worker.
func NewBaseWorker(name string, interval time.Duration, log *slog.Logger) BaseWorker {
	return BaseWorker{
		name:     name,
		interval: interval,
		log:      log.With("worker", name),
	}
}

// Name returns the worker name.
func (w *BaseWorker) Name() string {
	return w.name
}

// Poll runs work immediately and then every interval until ctx is cancelled.
// A failed pass is logged and retried on the next tick.
func (w *BaseWorker) Poll(ctx context.Context, work func(context.Context) error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.InfoContext(ctx, "worker started", "interval", w.interval)

	w.run(ctx, work)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("worker stopping")
			return
		case <-ticker.C:
			w.run(ctx, work)
		}
	}
}

func (w *BaseWorker) run(ctx context.Context, work func(context.Context) error) {
	start := time.Now()
	if err := work(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.log.ErrorContext(ctx, "worker error", "err", err, "elapsed", time.Since(start))
	}
}
