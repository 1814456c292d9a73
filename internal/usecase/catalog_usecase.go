package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	gojson "github.com/goccy/go-json"

	"claimscope/internal/domain/entities"
	"claimscope/internal/engine/formula"
	"claimscope/internal/usecase/interfaces"
)

var (
	ErrEmptySeedPayload     = errors.New("empty seed payload")
	ErrMalformedSeedPayload = errors.New("malformed seed payload")
)

// SeedSkip records one rejected seed row. Seeding never fails the batch on
// data errors; bad rows are skipped and reported.

type SeedSkip struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

type SeedResult struct {
	Loaded  int        `json:"loaded"`
	Skipped []SeedSkip `json:"skipped,omitempty"`
}

// ICatalogUseCase exposes the bulk seeding interface for catalog items and
// regional prices. Upserts are idempotent: keyed by code and by
// (region, code) respectively.

type ICatalogUseCase interface {
	SeedCatalog(ctx context.Context, payload []byte) (SeedResult, error)
	SeedPrices(ctx context.Context, payload []byte) (SeedResult, error)
}

type CatalogUseCase struct {
	catalogRepo interfaces.ICatalogRepository
	priceRepo   interfaces.IPriceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalogRepo interfaces.ICatalogRepository, priceRepo interfaces.IPriceRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo, priceRepo: priceRepo}
}

// SeedCatalog parses a JSON array of catalog rows into the strict internal
// representation and upserts each valid row by code.
//
// The rule payloads (scope_conditions, companion_rules) arrive as loose JSON
// blobs; they are parsed once here, with unknown keys rejected, so the
// engine only ever sees typed predicates.
func (u *CatalogUseCase) SeedCatalog(ctx context.Context, payload []byte) (SeedResult, error) {
	rows, res, err := splitRows(payload)
	if err != nil {
		return SeedResult{}, err
	}

	for i, raw := range rows {
		var item entities.CatalogItem
		if err := strictUnmarshal(raw, &item); err != nil {
			res.Skipped = append(res.Skipped, SeedSkip{Reason: fmt.Sprintf("row %d: %v", i, err)})
			continue
		}
		item.Code = strings.TrimSpace(item.Code)
		if reason := validateCatalogRow(item); reason != "" {
			log.Printf("[catalog] skipped seed row %d (%s): %s", i, item.Code, reason)
			res.Skipped = append(res.Skipped, SeedSkip{Code: item.Code, Reason: reason})
			continue
		}
		if err := u.catalogRepo.Upsert(ctx, item); err != nil {
			return SeedResult{}, err
		}
		res.Loaded++
	}
	return res, nil
}

// SeedPrices parses and upserts regional price rows keyed by
// (region, line item code).
func (u *CatalogUseCase) SeedPrices(ctx context.Context, payload []byte) (SeedResult, error) {
	rows, res, err := splitRows(payload)
	if err != nil {
		return SeedResult{}, err
	}

	for i, raw := range rows {
		var price entities.RegionalPrice
		if err := strictUnmarshal(raw, &price); err != nil {
			res.Skipped = append(res.Skipped, SeedSkip{Reason: fmt.Sprintf("row %d: %v", i, err)})
			continue
		}
		price.RegionID = strings.TrimSpace(price.RegionID)
		price.LineItemCode = strings.TrimSpace(price.LineItemCode)
		if reason := validatePriceRow(price); reason != "" {
			log.Printf("[catalog] skipped price row %d (%s/%s): %s", i, price.RegionID, price.LineItemCode, reason)
			res.Skipped = append(res.Skipped, SeedSkip{Code: price.LineItemCode, Reason: reason})
			continue
		}
		if err := u.priceRepo.Upsert(ctx, price); err != nil {
			return SeedResult{}, err
		}
		res.Loaded++
	}
	return res, nil
}

func splitRows(payload []byte) ([]gojson.RawMessage, SeedResult, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, SeedResult{}, ErrEmptySeedPayload
	}
	var rows []gojson.RawMessage
	if err := gojson.Unmarshal(payload, &rows); err != nil {
		return nil, SeedResult{}, fmt.Errorf("%w: not a JSON array: %v", ErrMalformedSeedPayload, err)
	}
	return rows, SeedResult{Skipped: []SeedSkip{}}, nil
}

func strictUnmarshal(raw gojson.RawMessage, v any) error {
	dec := gojson.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func validateCatalogRow(item entities.CatalogItem) string {
	if item.Code == "" {
		return "missing code"
	}
	if item.TradeCode == "" {
		return "missing trade code"
	}
	if item.Unit == "" {
		return "missing unit"
	}
	if !formula.Known(item.QuantityFormula) {
		return fmt.Sprintf("unknown quantity formula %q", item.QuantityFormula)
	}
	if item.DefaultWasteFactor < 0 {
		return "negative waste factor"
	}
	return ""
}

func validatePriceRow(price entities.RegionalPrice) string {
	if price.RegionID == "" {
		return "missing region id"
	}
	if price.LineItemCode == "" {
		return "missing line item code"
	}
	if price.MaterialCost < 0 || price.LaborCost < 0 || price.EquipmentCost < 0 {
		return "negative cost component"
	}
	return ""
}
