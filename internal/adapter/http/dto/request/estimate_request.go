package request

import (
	"strings"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"
)

// BuildEstimateRequest carries the policy facts needed to price a session.
type BuildEstimateRequest struct {
	RegionID            string             `json:"region_id" binding:"required"`
	Deductible          float64            `json:"deductible"`
	AgeByTrade          map[string]float64 `json:"age_by_trade,omitempty"`
	RoofScheduleApplies bool               `json:"roof_schedule_applies"`
	CodeUpgradeCodes    []string           `json:"code_upgrade_codes,omitempty"`
}

func (r BuildEstimateRequest) ToInput() usecase.BuildEstimateInput {
	in := usecase.BuildEstimateInput{
		RegionID:            strings.TrimSpace(r.RegionID),
		Deductible:          r.Deductible,
		RoofScheduleApplies: r.RoofScheduleApplies,
		CodeUpgradeCodes:    r.CodeUpgradeCodes,
	}
	if len(r.AgeByTrade) > 0 {
		in.AgeByTrade = make(map[entities.TradeCode]float64, len(r.AgeByTrade))
		for trade, age := range r.AgeByTrade {
			in.AgeByTrade[entities.TradeCode(trade)] = age
		}
	}
	return in
}
