package interfaces

import (
	"claimscope/internal/domain/entities"
	"context"
)

// IRoomRepository abstracts DynamoDB persistence for Room geometry
// snapshots.

type IRoomRepository interface {
	Upsert(ctx context.Context, room entities.Room) (entities.Room, error)
	GetByID(ctx context.Context, id string) (entities.Room, error)
	ListBySession(ctx context.Context, sessionID string) ([]entities.Room, error)
}
