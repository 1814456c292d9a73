// Package estimate rolls priced line items into an estimate summary and
// runs the advisory completeness checks on a session's scope.
package estimate

import (
	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
)

// Aggregate sums active priced items into the estimate summary: grand
// totals, recoverable vs non-recoverable depreciation, O&P, net claim and
// per-coverage/room/trade breakdowns.
//
// Paid-when-incurred depreciation counts toward total depreciation but
// toward neither the recoverable nor the non-recoverable bucket: it is
// neither withheld-and-returned nor withheld-for-good, it is re-billed once
// the code upgrade is invoiced.
func Aggregate(items []entities.PricedLineItem, deductible float64, cfg config.EngineConfig) entities.EstimateSummary {
	summary := entities.EstimateSummary{
		Deductible: deductible,
		ByCoverage: make(map[entities.CoverageType]entities.CoverageTotals),
		ByRoom:     make(map[string]float64),
		ByTrade:    make(map[entities.TradeCode]float64),
	}

	excluded := make(map[entities.TradeCode]bool, len(cfg.OPExcludedTrades))
	for _, t := range cfg.OPExcludedTrades {
		excluded[entities.TradeCode(t)] = true
	}
	opTrades := make(map[entities.TradeCode]bool)

	for _, it := range items {
		if !it.IsActive() {
			continue
		}

		rcv := it.RCV()
		summary.TotalRCV += rcv
		summary.TotalTax += it.TaxAmount
		summary.TotalDepreciation += it.DepreciationAmount
		summary.TotalACV += it.ACV

		switch it.DepreciationType {
		case entities.DepreciationRecoverable:
			summary.TotalRecoverableDepreciation += it.DepreciationAmount
		case entities.DepreciationNonRecoverable:
			summary.TotalNonRecoverableDepreciation += it.DepreciationAmount
		}

		bucket := summary.ByCoverage[it.CoverageType]
		bucket.RCV += rcv
		bucket.Tax += it.TaxAmount
		bucket.Depreciation += it.DepreciationAmount
		bucket.ACV += it.ACV
		summary.ByCoverage[it.CoverageType] = bucket

		summary.ByRoom[it.RoomID] += rcv
		summary.ByTrade[it.TradeCode] += rcv

		if it.PricingIssue == "" && !excluded[it.TradeCode] {
			opTrades[it.TradeCode] = true
		}
	}

	if len(opTrades) >= cfg.OPTradeMinimum {
		summary.QualifiesForOP = true
		summary.OverheadAmount = summary.TotalRCV * cfg.OverheadPercent / 100
		summary.ProfitAmount = summary.TotalRCV * cfg.ProfitPercent / 100
	}

	summary.NetClaim = summary.TotalACV - deductible
	if summary.NetClaim < 0 {
		summary.NetClaim = 0
	}
	summary.NetClaimIfDepreciationRecovered = summary.NetClaim + summary.TotalRecoverableDepreciation

	return summary
}
