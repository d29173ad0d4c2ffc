package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"freezer-inventory/internal/item"
	"freezer-inventory/pkg/foodparser"
)

// ParseBatch parses every item against one knowledge base snapshot. All
// inputs are validated before any work starts; the first invalid one fails
// the whole batch.
func (uc *implUseCase) ParseBatch(ctx context.Context, input item.ParseBatchInput) (item.ParseBatchOutput, error) {
	if len(input.Items) == 0 {
		return item.ParseBatchOutput{}, item.ErrEmptyBatch
	}
	if len(input.Items) > uc.cfg.MaxBatchItems {
		return item.ParseBatchOutput{}, fmt.Errorf("%w: %d > %d", item.ErrTooManyItems, len(input.Items), uc.cfg.MaxBatchItems)
	}
	for i, in := range input.Items {
		if err := validateInput(in); err != nil {
			return item.ParseBatchOutput{}, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	p := foodparser.New(uc.kb.KnowledgeBase())
	results := make([]foodparser.ParsedItem, len(input.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.BatchConcurrency)
	for i, in := range input.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.parse(gctx, p, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return item.ParseBatchOutput{}, err
	}

	uc.l.Infof(ctx, "batch parsed: count=%d", len(results))
	return item.ParseBatchOutput{Items: results}, nil
}
