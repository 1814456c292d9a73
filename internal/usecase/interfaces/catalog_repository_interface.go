package interfaces

import (
	"claimscope/internal/domain/entities"
	"context"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogItem.
//
// Lookups return a zero-value item with nil error when the code is unknown.
// The engine treats the loaded catalog as an immutable snapshot per
// invocation.

type ICatalogRepository interface {
	Upsert(ctx context.Context, item entities.CatalogItem) error
	GetByCode(ctx context.Context, code string) (entities.CatalogItem, error)
	ListAll(ctx context.Context) ([]entities.CatalogItem, error)
}
