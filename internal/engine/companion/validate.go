package companion

import (
	"fmt"

	"claimscope/internal/domain/entities"
)

// ValidateCompanionItems checks the structural consistency of a scope item
// set against the catalog's companion rules.
//
// Severity policy: a companion pointing at a nonexistent parent is an
// invariant violation (error, surfaced to a human, never auto-repaired);
// excludes conflicts and missing required siblings are advisory warnings.
// The pass always runs to completion.
func ValidateCompanionItems(items []entities.ScopeItem, catalog map[string]entities.CatalogItem) entities.ValidationResult {
	res := entities.ValidationResult{Valid: true, Issues: []entities.ValidationIssue{}}

	byID := make(map[string]bool, len(items))
	activeCodes := make(map[string]bool)
	for _, it := range items {
		byID[it.ID] = true
		if it.IsActive() {
			activeCodes[it.CatalogCode] = true
		}
	}

	for _, it := range items {
		if it.ParentScopeItemID != "" && !byID[it.ParentScopeItemID] {
			res.Valid = false
			res.Issues = append(res.Issues, entities.ValidationIssue{
				Severity: entities.SeverityError,
				Code:     "ORPHAN_COMPANION",
				Message:  fmt.Sprintf("companion item %s references missing parent %s", it.CatalogCode, it.ParentScopeItemID),
				ItemID:   it.ID,
			})
		}
		if it.ParentScopeItemID != "" && it.Provenance != entities.ProvenanceCompanion {
			res.Issues = append(res.Issues, entities.ValidationIssue{
				Severity: entities.SeverityWarning,
				Code:     "PROVENANCE_MISMATCH",
				Message:  fmt.Sprintf("item %s has a parent but provenance %s", it.CatalogCode, it.Provenance),
				ItemID:   it.ID,
			})
		}
	}

	for _, it := range items {
		if !it.IsActive() {
			continue
		}
		cat, ok := catalog[it.CatalogCode]
		if !ok {
			// Unknown codes are a data error handled elsewhere; rule checks
			// simply cannot apply.
			continue
		}
		for _, excluded := range cat.CompanionRules.Excludes {
			if activeCodes[excluded] {
				res.Issues = append(res.Issues, entities.ValidationIssue{
					Severity: entities.SeverityWarning,
					Code:     "EXCLUSION_CONFLICT",
					Message:  fmt.Sprintf("%s excludes %s but both are active", it.CatalogCode, excluded),
					ItemID:   it.ID,
				})
			}
		}
		for _, required := range cat.CompanionRules.Requires {
			if !activeCodes[required] {
				res.Issues = append(res.Issues, entities.ValidationIssue{
					Severity: entities.SeverityWarning,
					Code:     "MISSING_REQUIRED",
					Message:  fmt.Sprintf("%s requires %s which is not active", it.CatalogCode, required),
					ItemID:   it.ID,
				})
			}
		}
	}

	return res
}
