package item

import (
	"context"

	"freezer-inventory/pkg/foodparser"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	ParseBatch(ctx context.Context, input ParseBatchInput) (ParseBatchOutput, error)
	Categories() []foodparser.Category
}
