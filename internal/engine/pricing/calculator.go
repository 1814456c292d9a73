// Package pricing turns scope items into priced line items: regional unit
// prices, waste factors, tax, and straight-line depreciation with
// recoverability classification.
package pricing

import (
	"errors"
	"fmt"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
)

var ErrNegativeQuantity = errors.New("negative quantity")

// NoRegionalPrice is the PricingIssue value set when no active price row
// exists for (region, code). The item is surfaced, not dropped, and the rest
// of the estimate is unaffected.
const NoRegionalPrice = "no regional price"

type Calculator struct {
	cfg config.EngineConfig
}

func NewCalculator(cfg config.EngineConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// ItemContext carries the policy facts pricing cannot derive from the
// catalog: item age and the endorsements/detections that reclassify
// depreciation.

type ItemContext struct {
	Age                 float64 // years
	RoofScheduleApplies bool    // roof payment schedule endorsement on the policy
	CodeUpgrade         bool    // detected building-code upgrade
}

// Price computes the money fields for one scope item.
//
// Waste inflates material cost only; tax applies to the wasted material
// portion only. Labor and equipment carry neither. Depreciation is
// straight-line on age over life expectancy, clamped at 100%.
//
// A negative quantity is a hard failure: it indicates corrupted input, not
// an expected business condition.
func (c *Calculator) Price(item entities.ScopeItem, cat entities.CatalogItem, price *entities.RegionalPrice, ctx ItemContext) (entities.PricedLineItem, error) {
	if item.Quantity < 0 {
		return entities.PricedLineItem{}, fmt.Errorf("%w: item %s has quantity %v", ErrNegativeQuantity, item.ID, item.Quantity)
	}

	out := entities.PricedLineItem{
		ScopeItem:        item,
		DepreciationType: entities.DepreciationRecoverable,
		Age:              ctx.Age,
		LifeExpectancy:   cat.LifeExpectancy,
		CoverageType:     cat.CoverageType,
	}

	if price == nil {
		out.PricingIssue = NoRegionalPrice
		return out, nil
	}

	wasteFactor := 1 + cat.DefaultWasteFactor/100
	material := item.Quantity * price.MaterialCost * wasteFactor
	labor := item.Quantity * price.LaborCost
	equipment := item.Quantity * price.EquipmentCost

	out.UnitPrice = price.UnitPrice()
	out.TotalPrice = material + labor + equipment
	out.TaxAmount = material * c.cfg.TaxRatePercent / 100

	if cat.LifeExpectancy > 0 && ctx.Age > 0 {
		pct := ctx.Age / cat.LifeExpectancy * 100
		if pct > 100 {
			pct = 100
		}
		out.DepreciationPercentage = pct
		out.DepreciationAmount = out.TotalPrice * pct / 100
	}

	out.DepreciationType = c.classifyDepreciation(cat, ctx)
	if out.DepreciationType == entities.DepreciationPWI {
		out.CoverageType = entities.CoverageCodeUpgrade
	}

	out.ACV = out.TotalPrice + out.TaxAmount - out.DepreciationAmount
	if out.ACV < 0 {
		out.ACV = 0
	}
	return out, nil
}

// classifyDepreciation is policy, not arithmetic. Default recoverable; a
// roof payment schedule endorsement makes aged roofing non-recoverable; a
// detected code upgrade is paid when incurred.
func (c *Calculator) classifyDepreciation(cat entities.CatalogItem, ctx ItemContext) entities.DepreciationType {
	if ctx.CodeUpgrade || cat.CoverageType == entities.CoverageCodeUpgrade {
		return entities.DepreciationPWI
	}
	if ctx.RoofScheduleApplies && c.cfg.RoofScheduleEnabled &&
		cat.TradeCode == entities.TradeRoofing && ctx.Age > c.cfg.RoofScheduleThresholdYears {
		return entities.DepreciationNonRecoverable
	}
	return entities.DepreciationRecoverable
}
