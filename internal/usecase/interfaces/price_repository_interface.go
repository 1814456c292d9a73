package interfaces

import (
	"claimscope/internal/domain/entities"
	"context"
)

// IPriceRepository abstracts DynamoDB persistence for RegionalPrice.
//
// At most one active row exists per (region, code); Upsert replaces in
// place. A missing row is a zero-value price with nil error.

type IPriceRepository interface {
	Upsert(ctx context.Context, price entities.RegionalPrice) error
	GetByRegionAndCode(ctx context.Context, regionID, lineItemCode string) (entities.RegionalPrice, error)
	ListByRegion(ctx context.Context, regionID string) ([]entities.RegionalPrice, error)
}
