package entities

import "time"

// Provenance records how a scope item landed on the estimate. Auto-added
// companions always carry ProvenanceCompanion and a parent id; manual and
// voice-stated quantities are never silently recomputed on geometry edits.

type Provenance string

const (
	ProvenanceVoice     Provenance = "voice_command"
	ProvenanceCompanion Provenance = "companion_auto_added"
	ProvenanceTemplate  Provenance = "template"
	ProvenanceManual    Provenance = "manual"
)

type ScopeItemStatus string

const (
	ScopeItemActive  ScopeItemStatus = "active"
	ScopeItemRemoved ScopeItemStatus = "removed"
)

// ScopeItem is a line item placed on an inspection session's estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// ParentScopeItemID is set only for auto-added companions and must reference
// an item within the same session.

type ScopeItem struct {
	ID                string          `json:"id"`
	SessionID         string          `json:"session_id"`
	RoomID            string          `json:"room_id"`
	DamageID          string          `json:"damage_id,omitempty"`
	CatalogCode       string          `json:"catalog_code"`
	Description       string          `json:"description"`
	TradeCode         TradeCode       `json:"trade_code"`
	Quantity          float64         `json:"quantity"`
	Unit              UnitOfMeasure   `json:"unit"`
	Provenance        Provenance      `json:"provenance"`
	ParentScopeItemID string          `json:"parent_scope_item_id,omitempty"`
	Status            ScopeItemStatus `json:"status"`
	DimensionWarning  bool            `json:"dimension_warning,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (s ScopeItem) IsActive() bool {
	return s.Status == ScopeItemActive
}

// QuantityOverridden reports whether the quantity was stated by a human and
// must survive geometry recomputes.
func (s ScopeItem) QuantityOverridden() bool {
	return s.Provenance == ProvenanceManual || s.Provenance == ProvenanceVoice
}

// DamageRecord is an observed damage on a room; it is what triggers
// auto-scoping and what the scope-gap validator checks rooms against.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id

type DamageRecord struct {
	ID             string               `json:"id"`
	SessionID      string               `json:"session_id"`
	RoomID         string               `json:"room_id"`
	DamageType     string               `json:"damage_type"`
	Surface        string               `json:"surface"`
	Severity       string               `json:"severity"`
	AffectedAreaSF float64              `json:"affected_area_sf"`
	Water          *WaterClassification `json:"water,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
