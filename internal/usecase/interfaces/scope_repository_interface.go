package interfaces

import (
	"claimscope/internal/domain/entities"
	"context"
)

// IScopeRepository abstracts DynamoDB persistence for scope items and the
// damage records that trigger them.
//
// The scoping flow must be able to:
//   - append items created by a scoping pass
//   - list a session's items and damages for dedup, pricing and validation
//   - recompute a formula-derived quantity after a geometry edit
//   - soft-remove an item (status flip, never a delete)

type IScopeRepository interface {
	CreateItem(ctx context.Context, item entities.ScopeItem) (entities.ScopeItem, error)
	GetItemByID(ctx context.Context, id string) (entities.ScopeItem, error)
	ListItemsBySession(ctx context.Context, sessionID string) ([]entities.ScopeItem, error)
	UpdateItemQuantity(ctx context.Context, id string, quantity float64, dimensionWarning bool) (entities.ScopeItem, error)
	UpdateItemStatus(ctx context.Context, id string, status entities.ScopeItemStatus) (entities.ScopeItem, error)

	CreateDamage(ctx context.Context, damage entities.DamageRecord) (entities.DamageRecord, error)
	ListDamagesBySession(ctx context.Context, sessionID string) ([]entities.DamageRecord, error)
}
