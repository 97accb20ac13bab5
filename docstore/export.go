package docstore

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ExportOptions configures an Exporter.
type ExportOptions struct {
	// Concurrency bounds the number of in-flight writes. Defaults to 4.
	Concurrency int
	// BytesPerSec throttles the aggregate write rate. Zero disables
	// throttling.
	BytesPerSec int
}

// Exporter writes a batch of encoded documents to a store with bounded
// concurrency and optional byte-rate throttling. Useful when publishing
// a full scene's annotations to remote storage.
type Exporter struct {
	store   Store
	limit   int
	limiter *rate.Limiter
}

// NewExporter creates an Exporter for the store.
func NewExporter(store Store, optFns ...func(*ExportOptions)) *Exporter {
	opts := ExportOptions{Concurrency: 4}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	e := &Exporter{store: store, limit: opts.Concurrency}
	if opts.BytesPerSec > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(opts.BytesPerSec), opts.BytesPerSec)
	}
	return e
}

// Export writes every document in the batch. The first error cancels the
// remaining writes.
func (e *Exporter) Export(ctx context.Context, docs map[string][]byte) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for name, data := range docs {
		g.Go(func() error {
			if e.limiter != nil {
				if err := e.limiter.WaitN(ctx, len(data)); err != nil {
					return err
				}
			}
			return e.store.Put(ctx, name, data)
		})
	}
	return g.Wait()
}
