package response

import (
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"
)

type EstimateResponse struct {
	Summary    entities.EstimateSummary  `json:"summary"`
	Lines      []entities.PricedLineItem `json:"lines"`
	Validation entities.ValidationResult `json:"validation"`
}

func FromEstimateResult(res usecase.EstimateResult) EstimateResponse {
	lines := res.Lines
	if lines == nil {
		lines = []entities.PricedLineItem{}
	}
	return EstimateResponse{Summary: res.Summary, Lines: lines, Validation: res.Validation}
}

type RoomUpdateResponse struct {
	Room            entities.Room `json:"room"`
	RecomputedItems int           `json:"recomputed_items"`
	Warnings        []string      `json:"warnings"`
}

func FromRoomUpdateResult(res usecase.RoomUpdateResult) RoomUpdateResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return RoomUpdateResponse{Room: res.Room, RecomputedItems: res.RecomputedItems, Warnings: warnings}
}

type SeedResponse struct {
	Loaded  int                `json:"loaded"`
	Skipped []usecase.SeedSkip `json:"skipped"`
}

func FromSeedResult(res usecase.SeedResult) SeedResponse {
	skipped := res.Skipped
	if skipped == nil {
		skipped = []usecase.SeedSkip{}
	}
	return SeedResponse{Loaded: res.Loaded, Skipped: skipped}
}
