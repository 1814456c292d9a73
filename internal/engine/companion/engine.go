// Package companion selects primary line items for a damage observation and
// cascades the companion items professional estimators expect alongside
// them.
//
// The engine is pure: it operates on an immutable catalog snapshot, the
// room's current scope items and explicit configuration, and returns the new
// items to persist. Rule-table data errors (unknown codes, malformed rules)
// degrade to warnings; they never abort a scoping pass.
package companion

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
	"claimscope/internal/engine/formula"
	"claimscope/internal/engine/geometry"
)

type Engine struct {
	cfg     config.EngineConfig
	catalog map[string]entities.CatalogItem
}

func NewEngine(cfg config.EngineConfig, catalog []entities.CatalogItem) *Engine {
	byCode := make(map[string]entities.CatalogItem, len(catalog))
	for _, it := range catalog {
		byCode[it.Code] = it
	}
	return &Engine{cfg: cfg, catalog: byCode}
}

// Input is one scoping pass over one room.

type Input struct {
	SessionID string
	Room      entities.Room
	Damage    DamageContext
	DamageID  string
	Water     *entities.WaterClassification
	Existing  []entities.ScopeItem // all items already on the session
	Now       time.Time
}

type Result struct {
	Items    []entities.ScopeItem
	Warnings []string
}

// candidate is a worklist entry in the bounded cascade.
type candidate struct {
	code     string
	parentID string
	depth    int
}

// AutoScope turns a damage observation into primary items plus cascaded
// companions.
//
// Termination: the worklist is bounded by MaxCascadeDepth, and a per-room
// visited set keyed by catalog code ensures each code is considered at most
// once per pass. Dedup is by trade code over the room's active items, so a
// repeated pass over an unchanged room adds nothing.
func (e *Engine) AutoScope(in Input) Result {
	var res Result

	bag := geometry.Resolve(in.Room)
	roomTrades := e.activeRoomTrades(in.Room.ID, in.Existing)
	excluded := e.combinedExcludes(in.Room.ID, in.Existing)
	visited := make(map[string]bool)

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var worklist []candidate
	for _, code := range e.sortedCodes() {
		cat := e.catalog[code]
		if cat.ScopeConditions == nil {
			// Items without conditions are companion-only; they never land
			// as primaries.
			continue
		}
		if !Matches(cat.ScopeConditions, in.Damage) {
			continue
		}
		visited[code] = true
		if roomTrades[cat.TradeCode] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("trade %s already scoped in room %s; skipped %s", cat.TradeCode, in.Room.Name, code))
			continue
		}

		item := e.buildItem(in, cat, "", bag, now, &res)
		res.Items = append(res.Items, item)
		roomTrades[cat.TradeCode] = true
		addExcludes(excluded, cat.CompanionRules.Excludes)

		for _, companionCode := range cat.CompanionRules.AutoAdds {
			worklist = append(worklist, candidate{code: companionCode, parentID: item.ID, depth: 1})
		}
	}

	for len(worklist) > 0 {
		c := worklist[0]
		worklist = worklist[1:]

		if c.depth > e.cfg.MaxCascadeDepth {
			continue
		}
		if visited[c.code] {
			continue
		}
		visited[c.code] = true

		cat, ok := e.catalog[c.code]
		if !ok {
			log.Printf("[companion] unknown catalog code %q referenced by companion rule; skipped", c.code)
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown catalog code %s referenced by companion rule", c.code))
			continue
		}
		if cat.ScopeConditions != nil && !Matches(cat.ScopeConditions, in.Damage) {
			continue
		}
		if excluded[c.code] {
			continue
		}
		if conflictsWithPresent(cat, in.Existing, res.Items, in.Room.ID) {
			continue
		}
		if !e.passesAreaGate(cat, in.Damage, in.Water) {
			continue
		}
		if roomTrades[cat.TradeCode] {
			continue
		}

		item := e.buildItem(in, cat, c.parentID, bag, now, &res)
		res.Items = append(res.Items, item)
		roomTrades[cat.TradeCode] = true
		addExcludes(excluded, cat.CompanionRules.Excludes)

		for _, companionCode := range cat.CompanionRules.AutoAdds {
			worklist = append(worklist, candidate{code: companionCode, parentID: item.ID, depth: c.depth + 1})
		}
	}

	return res
}

// passesAreaGate applies the trade-specific numeric thresholds on top of
// condition matching. Below the configured area, demolition and mitigation
// are assumed to be part of the primary repair itself; Category 3 water or
// class 4 saturation overrides the gate.
func (e *Engine) passesAreaGate(cat entities.CatalogItem, dmg DamageContext, water *entities.WaterClassification) bool {
	if cat.TradeCode != entities.TradeDemolition && cat.TradeCode != entities.TradeMitigation {
		return true
	}
	if water != nil && water.ForcesFullMitigation() {
		return true
	}
	return dmg.AffectedAreaSF >= e.cfg.DemolitionAreaThresholdSF
}

func (e *Engine) buildItem(in Input, cat entities.CatalogItem, parentID string, bag geometry.Bag, now time.Time, res *Result) entities.ScopeItem {
	item := entities.ScopeItem{
		ID:          uuid.NewString(),
		SessionID:   in.SessionID,
		RoomID:      in.Room.ID,
		DamageID:    in.DamageID,
		CatalogCode: cat.Code,
		Description: cat.Description,
		TradeCode:   cat.TradeCode,
		Unit:        cat.Unit,
		Status:      entities.ScopeItemActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if parentID == "" {
		item.Provenance = entities.ProvenanceVoice
	} else {
		item.Provenance = entities.ProvenanceCompanion
		item.ParentScopeItemID = parentID
	}

	item.Quantity = e.resolveQuantity(cat, in.Damage, bag, &item, res)
	return item
}

// resolveQuantity picks the quantity source for a catalog item: demolition
// bills per started divisor block of affected area, everything else goes
// through the formula evaluator. A formula with no available quantity falls
// back to 1 with a dimension warning so the adjuster can correct it.
func (e *Engine) resolveQuantity(cat entities.CatalogItem, dmg DamageContext, bag geometry.Bag, item *entities.ScopeItem, res *Result) float64 {
	if cat.TradeCode == entities.TradeDemolition && dmg.AffectedAreaSF > 0 && e.cfg.DemolitionQuantityDivisorSF > 0 {
		return dmg.AffectedAreaSF / e.cfg.DemolitionQuantityDivisorSF
	}

	qty, ok := formula.Evaluate(cat.QuantityFormula, bag)
	if !ok {
		item.DimensionWarning = true
		res.Warnings = append(res.Warnings, fmt.Sprintf("no quantity available for %s (%s); defaulted to 1", cat.Code, cat.QuantityFormula))
		return 1
	}
	return qty
}

func (e *Engine) activeRoomTrades(roomID string, existing []entities.ScopeItem) map[entities.TradeCode]bool {
	trades := make(map[entities.TradeCode]bool)
	for _, it := range existing {
		if it.RoomID == roomID && it.IsActive() {
			trades[it.TradeCode] = true
		}
	}
	return trades
}

// combinedExcludes is the union of the excludes lists of all active items in
// the room. A candidate whose code lands in this set is dropped; that also
// breaks exclude-cycles between rule entries.
func (e *Engine) combinedExcludes(roomID string, existing []entities.ScopeItem) map[string]bool {
	excluded := make(map[string]bool)
	for _, it := range existing {
		if it.RoomID != roomID || !it.IsActive() {
			continue
		}
		if cat, ok := e.catalog[it.CatalogCode]; ok {
			addExcludes(excluded, cat.CompanionRules.Excludes)
		}
	}
	return excluded
}

// conflictsWithPresent checks the reverse direction: the candidate's own
// excludes list against items already in the room or added this pass.
func conflictsWithPresent(cat entities.CatalogItem, existing, added []entities.ScopeItem, roomID string) bool {
	for _, code := range cat.CompanionRules.Excludes {
		for _, it := range existing {
			if it.RoomID == roomID && it.IsActive() && it.CatalogCode == code {
				return true
			}
		}
		for _, it := range added {
			if it.CatalogCode == code {
				return true
			}
		}
	}
	return false
}

func addExcludes(set map[string]bool, codes []string) {
	for _, c := range codes {
		set[c] = true
	}
}

func (e *Engine) sortedCodes() []string {
	codes := make([]string, 0, len(e.catalog))
	for code := range e.catalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
