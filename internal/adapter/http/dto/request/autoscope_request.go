package request

import (
	"strings"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"
)

type WaterClassificationRequest struct {
	Category           int    `json:"category" binding:"required,min=1,max=3"`
	WaterClass         int    `json:"water_class" binding:"required,min=1,max=4"`
	ContaminationLevel string `json:"contamination_level"`
	DryingPossible     bool   `json:"drying_possible"`
}

// AutoScopeRequest is the payload the voice/damage agent posts when the
// adjuster describes an observed damage.
type AutoScopeRequest struct {
	SessionID      string                      `json:"session_id" binding:"required"`
	RoomID         string                      `json:"room_id" binding:"required"`
	DamageType     string                      `json:"damage_type" binding:"required"`
	Surface        string                      `json:"surface"`
	Severity       string                      `json:"severity"`
	AffectedAreaSF float64                     `json:"affected_area_sf"`
	Water          *WaterClassificationRequest `json:"water,omitempty"`
}

func (r AutoScopeRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r AutoScopeRequest) ToInput() usecase.AutoScopeInput {
	in := usecase.AutoScopeInput{
		RoomID:         strings.TrimSpace(r.RoomID),
		DamageType:     strings.TrimSpace(r.DamageType),
		Surface:        strings.TrimSpace(r.Surface),
		Severity:       strings.TrimSpace(r.Severity),
		AffectedAreaSF: r.AffectedAreaSF,
	}
	if r.Water != nil {
		in.Water = &entities.WaterClassification{
			Category:           r.Water.Category,
			WaterClass:         r.Water.WaterClass,
			ContaminationLevel: r.Water.ContaminationLevel,
			DryingPossible:     r.Water.DryingPossible,
		}
	}
	return in
}
