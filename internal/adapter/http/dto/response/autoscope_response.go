package response

import (
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"
)

type AutoScopeResponse struct {
	ItemsCreated []entities.ScopeItem `json:"items_created"`
	Summary      string               `json:"summary"`
	Warnings     []string             `json:"warnings"`
}

func FromAutoScopeResult(res usecase.AutoScopeResult) AutoScopeResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	items := res.ItemsCreated
	if items == nil {
		items = []entities.ScopeItem{}
	}
	return AutoScopeResponse{ItemsCreated: items, Summary: res.Summary, Warnings: warnings}
}
