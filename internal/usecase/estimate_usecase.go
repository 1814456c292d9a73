package usecase

import (
	"context"
	"errors"
	"strings"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
	"claimscope/internal/engine/companion"
	"claimscope/internal/engine/estimate"
	"claimscope/internal/engine/pricing"
	"claimscope/internal/usecase/interfaces"
)

var (
	ErrInvalidRegionID   = errors.New("invalid region id")
	ErrInvalidDeductible = errors.New("invalid deductible")
)

// BuildEstimateInput carries the policy facts the engine cannot derive from
// stored data: the pricing region, the deductible, per-trade item ages and
// the endorsements that reclassify depreciation.

type BuildEstimateInput struct {
	RegionID            string
	Deductible          float64
	AgeByTrade          map[entities.TradeCode]float64
	RoofScheduleApplies bool
	CodeUpgradeCodes    []string // catalog codes detected as building-code upgrades
}

// EstimateResult is the internally consistent bundle handed to report
// rendering and the workflow layer.

type EstimateResult struct {
	Summary    entities.EstimateSummary  `json:"summary"`
	Lines      []entities.PricedLineItem `json:"lines"`
	Validation entities.ValidationResult `json:"validation"`
}

// IEstimateUseCase exposes estimate assembly and the advisory validations.

type IEstimateUseCase interface {
	BuildEstimate(ctx context.Context, sessionID string, in BuildEstimateInput) (EstimateResult, error)
	ValidateSession(ctx context.Context, sessionID string) (entities.ValidationResult, error)
}

type EstimateUseCase struct {
	cfg         config.EngineConfig
	catalogRepo interfaces.ICatalogRepository
	priceRepo   interfaces.IPriceRepository
	roomRepo    interfaces.IRoomRepository
	scopeRepo   interfaces.IScopeRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(cfg config.EngineConfig, catalogRepo interfaces.ICatalogRepository, priceRepo interfaces.IPriceRepository, roomRepo interfaces.IRoomRepository, scopeRepo interfaces.IScopeRepository) *EstimateUseCase {
	return &EstimateUseCase{cfg: cfg, catalogRepo: catalogRepo, priceRepo: priceRepo, roomRepo: roomRepo, scopeRepo: scopeRepo}
}

// BuildEstimate prices every active item in the session, aggregates the
// totals and runs the full validation pass.
//
// Missing regional prices and unknown catalog codes degrade to per-item
// pricing issues; they never abort the estimate. Only invalid input,
// infrastructure failures and corrupted quantities return errors.
func (u *EstimateUseCase) BuildEstimate(ctx context.Context, sessionID string, in BuildEstimateInput) (EstimateResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return EstimateResult{}, ErrInvalidSessionID
	}
	in.RegionID = strings.TrimSpace(in.RegionID)
	if in.RegionID == "" {
		return EstimateResult{}, ErrInvalidRegionID
	}
	if in.Deductible < 0 {
		return EstimateResult{}, ErrInvalidDeductible
	}

	items, err := u.scopeRepo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return EstimateResult{}, err
	}
	damages, err := u.scopeRepo.ListDamagesBySession(ctx, sessionID)
	if err != nil {
		return EstimateResult{}, err
	}
	rooms, err := u.roomRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return EstimateResult{}, err
	}
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return EstimateResult{}, err
	}
	prices, err := u.loadPrices(ctx, in.RegionID)
	if err != nil {
		return EstimateResult{}, err
	}

	upgrades := make(map[string]bool, len(in.CodeUpgradeCodes))
	for _, code := range in.CodeUpgradeCodes {
		upgrades[code] = true
	}

	calc := pricing.NewCalculator(u.cfg)
	lines := make([]entities.PricedLineItem, 0, len(items))
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		cat, known := catalog[item.CatalogCode]
		if !known {
			lines = append(lines, entities.PricedLineItem{
				ScopeItem:        item,
				DepreciationType: entities.DepreciationRecoverable,
				PricingIssue:     "unknown catalog code",
			})
			continue
		}

		var price *entities.RegionalPrice
		if p, ok := prices[item.CatalogCode]; ok {
			price = &p
		}

		line, err := calc.Price(item, cat, price, pricing.ItemContext{
			Age:                 in.AgeByTrade[item.TradeCode],
			RoofScheduleApplies: in.RoofScheduleApplies,
			CodeUpgrade:         upgrades[item.CatalogCode],
		})
		if err != nil {
			return EstimateResult{}, err
		}
		lines = append(lines, line)
	}

	summary := estimate.Aggregate(lines, in.Deductible, u.cfg)

	validation := estimate.ValidateScope(rooms, damages, items)
	mergeValidation(&validation, companion.ValidateCompanionItems(items, catalog))
	validation.Issues = append(validation.Issues, estimate.ValidateCoverage(lines)...)

	return EstimateResult{Summary: summary, Lines: lines, Validation: validation}, nil
}

// ValidateSession runs the advisory checks without pricing, for the
// workflow layer's phase-advance and export gates.
func (u *EstimateUseCase) ValidateSession(ctx context.Context, sessionID string) (entities.ValidationResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ValidationResult{}, ErrInvalidSessionID
	}

	items, err := u.scopeRepo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	damages, err := u.scopeRepo.ListDamagesBySession(ctx, sessionID)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	rooms, err := u.roomRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return entities.ValidationResult{}, err
	}

	validation := estimate.ValidateScope(rooms, damages, items)
	mergeValidation(&validation, companion.ValidateCompanionItems(items, catalog))
	return validation, nil
}

func (u *EstimateUseCase) loadCatalog(ctx context.Context) (map[string]entities.CatalogItem, error) {
	all, err := u.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]entities.CatalogItem, len(all))
	for _, it := range all {
		byCode[it.Code] = it
	}
	return byCode, nil
}

func (u *EstimateUseCase) loadPrices(ctx context.Context, regionID string) (map[string]entities.RegionalPrice, error) {
	all, err := u.priceRepo.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]entities.RegionalPrice, len(all))
	for _, p := range all {
		byCode[p.LineItemCode] = p
	}
	return byCode, nil
}

func mergeValidation(dst *entities.ValidationResult, src entities.ValidationResult) {
	dst.Issues = append(dst.Issues, src.Issues...)
	if !src.Valid {
		dst.Valid = false
	}
}
