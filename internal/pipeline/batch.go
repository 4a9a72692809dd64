package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/chunklink/internal/document"
)

// RunBatch fans the pipeline out across independent documents with at most
// concurrency runs in flight. Results land at their input index. Cancellation
// is checked between documents, never inside a run. Empty documents yield a
// nil result at their index rather than failing the batch; any other error
// aborts it.
func RunBatch(ctx context.Context, p *Pipeline, docs []Document, concurrency int, stats *RunStats) ([]*Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(doc)
			if err != nil {
				if errors.Is(err, document.ErrEmptyInput) {
					return nil
				}
				return err
			}
			results[i] = res
			if stats != nil {
				stats.Record(res.Stats.ElapsedMs)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
