package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/engine/formula"
	"claimscope/internal/engine/geometry"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidDimensions = errors.New("invalid room dimensions")

// RoomUpdateResult reports a dimension edit plus the quantity recomputes it
// triggered.

type RoomUpdateResult struct {
	Room            entities.Room `json:"room"`
	RecomputedItems int           `json:"recomputed_items"`
	Warnings        []string      `json:"warnings"`
}

// IRoomUseCase exposes the room/geometry interface: dimension and opening
// updates with partial data tolerated.

type IRoomUseCase interface {
	UpsertRoom(ctx context.Context, room entities.Room) (RoomUpdateResult, error)
}

type RoomUseCase struct {
	catalogRepo interfaces.ICatalogRepository
	roomRepo    interfaces.IRoomRepository
	scopeRepo   interfaces.IScopeRepository
}

var _ IRoomUseCase = (*RoomUseCase)(nil)

func NewRoomUseCase(catalogRepo interfaces.ICatalogRepository, roomRepo interfaces.IRoomRepository, scopeRepo interfaces.IScopeRepository) *RoomUseCase {
	return &RoomUseCase{catalogRepo: catalogRepo, roomRepo: roomRepo, scopeRepo: scopeRepo}
}

// UpsertRoom stores the corrected geometry and recomputes every
// formula-derived quantity tied to the room.
//
// Items whose quantity was stated by a human (manual or voice provenance)
// are never silently recomputed. Items whose formula still has no available
// quantity fall back to 1 with a dimension warning.
func (u *RoomUseCase) UpsertRoom(ctx context.Context, room entities.Room) (RoomUpdateResult, error) {
	room.SessionID = strings.TrimSpace(room.SessionID)
	if room.SessionID == "" {
		return RoomUpdateResult{}, ErrInvalidSessionID
	}
	if room.Length < 0 || room.Width < 0 || room.Height < 0 {
		return RoomUpdateResult{}, ErrInvalidDimensions
	}
	if strings.TrimSpace(room.ID) == "" {
		room.ID = uuid.NewString()
		room.CreatedAt = time.Now().UTC()
	}
	room.UpdatedAt = time.Now().UTC()

	saved, err := u.roomRepo.Upsert(ctx, room)
	if err != nil {
		return RoomUpdateResult{}, err
	}

	res := RoomUpdateResult{Room: saved}

	items, err := u.scopeRepo.ListItemsBySession(ctx, saved.SessionID)
	if err != nil {
		return RoomUpdateResult{}, err
	}
	catalog, err := u.catalogRepo.ListAll(ctx)
	if err != nil {
		return RoomUpdateResult{}, err
	}
	byCode := make(map[string]entities.CatalogItem, len(catalog))
	for _, it := range catalog {
		byCode[it.Code] = it
	}

	bag := geometry.Resolve(saved)
	for _, item := range items {
		if item.RoomID != saved.ID || !item.IsActive() || item.QuantityOverridden() {
			continue
		}
		cat, ok := byCode[item.CatalogCode]
		if !ok {
			continue
		}
		if cat.QuantityFormula == formula.Each || cat.QuantityFormula == formula.Manual {
			continue
		}

		qty, ok := formula.Evaluate(cat.QuantityFormula, bag)
		warn := false
		if !ok {
			qty = 1
			warn = true
			res.Warnings = append(res.Warnings, fmt.Sprintf("no quantity available for %s after geometry edit; defaulted to 1", item.CatalogCode))
		}
		if qty == item.Quantity && warn == item.DimensionWarning {
			continue
		}
		if _, err := u.scopeRepo.UpdateItemQuantity(ctx, item.ID, qty, warn); err != nil {
			return RoomUpdateResult{}, err
		}
		res.RecomputedItems++
	}

	log.Printf("[room] session=%s room=%s recomputed=%d", saved.SessionID, saved.Name, res.RecomputedItems)
	return res, nil
}
