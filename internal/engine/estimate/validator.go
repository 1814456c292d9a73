package estimate

import (
	"fmt"

	"claimscope/internal/domain/entities"
)

// ValidateScope runs the advisory completeness and consistency pass over a
// session's scope. It always runs to completion and never blocks a
// workflow; the host decides what to do with the findings.
//
// Checks:
//   - rooms with damage observations but no active line items (scope gap)
//   - trade-sequence violations (paint without drywall; finish flooring
//     without demolition when floor damage exists)
//   - non-positive quantities (error severity; corrupted data)
//   - mixed coverage buckets within one room, ignoring code-upgrade items
func ValidateScope(rooms []entities.Room, damages []entities.DamageRecord, items []entities.ScopeItem) entities.ValidationResult {
	res := entities.ValidationResult{Valid: true, Issues: []entities.ValidationIssue{}}

	damagedRooms := make(map[string][]entities.DamageRecord)
	for _, d := range damages {
		damagedRooms[d.RoomID] = append(damagedRooms[d.RoomID], d)
	}

	activeByRoom := make(map[string][]entities.ScopeItem)
	for _, it := range items {
		if it.IsActive() {
			activeByRoom[it.RoomID] = append(activeByRoom[it.RoomID], it)
		}
		if it.Quantity <= 0 {
			res.Valid = false
			res.Issues = append(res.Issues, entities.ValidationIssue{
				Severity: entities.SeverityError,
				Code:     "NONPOSITIVE_QUANTITY",
				Message:  fmt.Sprintf("item %s has non-positive quantity %v", it.CatalogCode, it.Quantity),
				ItemID:   it.ID,
				RoomID:   it.RoomID,
			})
		}
	}

	for _, room := range rooms {
		roomDamages := damagedRooms[room.ID]
		roomItems := activeByRoom[room.ID]

		if len(roomDamages) > 0 && len(roomItems) == 0 {
			res.Issues = append(res.Issues, entities.ValidationIssue{
				Severity: entities.SeverityWarning,
				Code:     "SCOPE_GAP",
				Message:  fmt.Sprintf("room %s has recorded damage but no line items", room.Name),
				RoomID:   room.ID,
			})
		}

		checkTradeSequence(&res, room, roomDamages, roomItems)
	}

	return res
}

func checkTradeSequence(res *entities.ValidationResult, room entities.Room, damages []entities.DamageRecord, items []entities.ScopeItem) {
	trades := make(map[entities.TradeCode]bool)
	for _, it := range items {
		trades[it.TradeCode] = true
	}

	if trades[entities.TradePainting] && !trades[entities.TradeDrywall] {
		res.Issues = append(res.Issues, entities.ValidationIssue{
			Severity: entities.SeverityWarning,
			Code:     "TRADE_SEQUENCE",
			Message:  fmt.Sprintf("room %s has paint scoped without underlying drywall", room.Name),
			RoomID:   room.ID,
		})
	}

	floorDamaged := false
	for _, d := range damages {
		if d.Surface == "floor" {
			floorDamaged = true
			break
		}
	}
	if floorDamaged && trades[entities.TradeFlooring] && !trades[entities.TradeDemolition] {
		res.Issues = append(res.Issues, entities.ValidationIssue{
			Severity: entities.SeverityWarning,
			Code:     "TRADE_SEQUENCE",
			Message:  fmt.Sprintf("room %s has finish flooring without demolition despite floor damage", room.Name),
			RoomID:   room.ID,
		})
	}
}

// ValidateCoverage flags mixed coverage buckets within a room, ignoring
// code-upgrade items which are force-routed regardless of structure.
func ValidateCoverage(priced []entities.PricedLineItem) []entities.ValidationIssue {
	var issues []entities.ValidationIssue

	byRoom := make(map[string]map[entities.CoverageType]bool)
	for _, it := range priced {
		if !it.IsActive() || it.CoverageType == entities.CoverageCodeUpgrade {
			continue
		}
		if byRoom[it.RoomID] == nil {
			byRoom[it.RoomID] = make(map[entities.CoverageType]bool)
		}
		byRoom[it.RoomID][it.CoverageType] = true
	}

	for roomID, buckets := range byRoom {
		if len(buckets) > 1 {
			issues = append(issues, entities.ValidationIssue{
				Severity: entities.SeverityWarning,
				Code:     "COVERAGE_MISMATCH",
				Message:  "room bills against multiple coverage buckets",
				RoomID:   roomID,
			})
		}
	}
	return issues
}
