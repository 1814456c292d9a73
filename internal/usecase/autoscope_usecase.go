package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
	"claimscope/internal/engine/companion"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrInvalidRoomID     = errors.New("invalid room id")
	ErrInvalidDamageType = errors.New("invalid damage type")
	ErrInvalidItemID     = errors.New("invalid item id")
	ErrRoomNotFound      = errors.New("room not found")
	ErrItemNotFound      = errors.New("scope item not found")
)

// AutoScopeInput is the damage observation the voice agent hands over.

type AutoScopeInput struct {
	RoomID         string
	DamageType     string
	Surface        string
	Severity       string
	AffectedAreaSF float64
	Water          *entities.WaterClassification
}

// AutoScopeResult is the contract the calling agent narrates to the
// adjuster.

type AutoScopeResult struct {
	ItemsCreated []entities.ScopeItem `json:"items_created"`
	Summary      string               `json:"summary"`
	Warnings     []string             `json:"warnings"`
}

// IAutoScopeUseCase exposes the damage/voice-agent scoping operation.

type IAutoScopeUseCase interface {
	AutoScope(ctx context.Context, sessionID string, in AutoScopeInput) (AutoScopeResult, error)
	RemoveItem(ctx context.Context, sessionID string, itemID string) (entities.ScopeItem, error)
}

type AutoScopeUseCase struct {
	cfg         config.EngineConfig
	catalogRepo interfaces.ICatalogRepository
	roomRepo    interfaces.IRoomRepository
	scopeRepo   interfaces.IScopeRepository
}

var _ IAutoScopeUseCase = (*AutoScopeUseCase)(nil)

func NewAutoScopeUseCase(cfg config.EngineConfig, catalogRepo interfaces.ICatalogRepository, roomRepo interfaces.IRoomRepository, scopeRepo interfaces.IScopeRepository) *AutoScopeUseCase {
	return &AutoScopeUseCase{cfg: cfg, catalogRepo: catalogRepo, roomRepo: roomRepo, scopeRepo: scopeRepo}
}

// AutoScope records the damage observation, runs the companion engine over
// an immutable catalog snapshot and persists whatever the engine produced.
//
// Rule-table problems surface as warnings in the result; only invalid input
// and infrastructure failures return errors.
func (u *AutoScopeUseCase) AutoScope(ctx context.Context, sessionID string, in AutoScopeInput) (AutoScopeResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return AutoScopeResult{}, ErrInvalidSessionID
	}
	in.RoomID = strings.TrimSpace(in.RoomID)
	if in.RoomID == "" {
		return AutoScopeResult{}, ErrInvalidRoomID
	}
	in.DamageType = strings.TrimSpace(in.DamageType)
	if in.DamageType == "" {
		return AutoScopeResult{}, ErrInvalidDamageType
	}

	room, err := u.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return AutoScopeResult{}, err
	}
	if room.ID == "" || room.SessionID != sessionID {
		return AutoScopeResult{}, ErrRoomNotFound
	}

	catalog, err := u.catalogRepo.ListAll(ctx)
	if err != nil {
		return AutoScopeResult{}, err
	}
	existing, err := u.scopeRepo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return AutoScopeResult{}, err
	}

	now := time.Now().UTC()
	damage := entities.DamageRecord{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		RoomID:         room.ID,
		DamageType:     in.DamageType,
		Surface:        in.Surface,
		Severity:       in.Severity,
		AffectedAreaSF: in.AffectedAreaSF,
		Water:          in.Water,
		CreatedAt:      now,
	}
	if damage, err = u.scopeRepo.CreateDamage(ctx, damage); err != nil {
		return AutoScopeResult{}, err
	}

	engine := companion.NewEngine(u.cfg, catalog)
	out := engine.AutoScope(companion.Input{
		SessionID: sessionID,
		Room:      room,
		Damage: companion.DamageContext{
			DamageType:     in.DamageType,
			Surface:        in.Surface,
			Severity:       in.Severity,
			RoomType:       room.RoomType,
			ZoneType:       room.ZoneType,
			AffectedAreaSF: in.AffectedAreaSF,
		},
		DamageID: damage.ID,
		Water:    in.Water,
		Existing: existing,
		Now:      now,
	})

	created := make([]entities.ScopeItem, 0, len(out.Items))
	for _, item := range out.Items {
		saved, err := u.scopeRepo.CreateItem(ctx, item)
		if err != nil {
			return AutoScopeResult{}, err
		}
		created = append(created, saved)
	}

	log.Printf("[autoscope] session=%s room=%s damage=%s created=%d warnings=%d",
		sessionID, room.Name, in.DamageType, len(created), len(out.Warnings))

	return AutoScopeResult{
		ItemsCreated: created,
		Summary:      fmt.Sprintf("added %d line items to %s for %s damage", len(created), room.Name, in.DamageType),
		Warnings:     out.Warnings,
	}, nil
}

// RemoveItem flips a scope item to removed. Items are never deleted so
// companion parent chains stay resolvable.
func (u *AutoScopeUseCase) RemoveItem(ctx context.Context, sessionID string, itemID string) (entities.ScopeItem, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ScopeItem{}, ErrInvalidSessionID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ScopeItem{}, ErrInvalidItemID
	}

	item, err := u.scopeRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return entities.ScopeItem{}, err
	}
	if item.ID == "" || item.SessionID != sessionID {
		return entities.ScopeItem{}, ErrItemNotFound
	}
	if item.Status == entities.ScopeItemRemoved {
		return item, nil
	}

	updated, err := u.scopeRepo.UpdateItemStatus(ctx, itemID, entities.ScopeItemRemoved)
	if err != nil {
		return entities.ScopeItem{}, err
	}
	if updated.ID == "" {
		return entities.ScopeItem{}, ErrItemNotFound
	}

	log.Printf("[autoscope] session=%s item=%s code=%s removed", sessionID, itemID, updated.CatalogCode)
	return updated, nil
}
