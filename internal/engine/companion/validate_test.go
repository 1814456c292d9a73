package companion

import (
	"testing"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
)

func catalogByCode(items []entities.CatalogItem) map[string]entities.CatalogItem {
	byCode := make(map[string]entities.CatalogItem, len(items))
	for _, it := range items {
		byCode[it.Code] = it
	}
	return byCode
}

func issuesByCode(res entities.ValidationResult, code string) []entities.ValidationIssue {
	var out []entities.ValidationIssue
	for _, issue := range res.Issues {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidateCompanionItems(t *testing.T) {
	catalog := catalogByCode(testCatalog())

	t.Run("Should accept a consistent cascade", func(t *testing.T) {
		items := []entities.ScopeItem{
			{ID: "p1", CatalogCode: "DRY-REPL", Provenance: entities.ProvenanceVoice, Status: entities.ScopeItemActive},
			{ID: "c1", CatalogCode: "PNT-WALL", Provenance: entities.ProvenanceCompanion, ParentScopeItemID: "p1", Status: entities.ScopeItemActive},
		}

		res := ValidateCompanionItems(items, catalog)

		if !res.Valid {
			t.Errorf("expected valid result, issues: %+v", res.Issues)
		}
		if len(res.Issues) != 0 {
			t.Errorf("expected no issues, got %+v", res.Issues)
		}
	})

	t.Run("Should flag a companion with a missing parent as an error", func(t *testing.T) {
		items := []entities.ScopeItem{
			{ID: "c1", CatalogCode: "PNT-WALL", Provenance: entities.ProvenanceCompanion, ParentScopeItemID: "gone", Status: entities.ScopeItemActive},
		}

		res := ValidateCompanionItems(items, catalog)

		if res.Valid {
			t.Error("expected invalid result for orphan companion")
		}
		orphans := issuesByCode(res, "ORPHAN_COMPANION")
		if len(orphans) != 1 || orphans[0].Severity != entities.SeverityError {
			t.Errorf("expected one ORPHAN_COMPANION error, got %+v", res.Issues)
		}
	})

	t.Run("Should warn when a parented item is not companion provenance", func(t *testing.T) {
		items := []entities.ScopeItem{
			{ID: "p1", CatalogCode: "DRY-REPL", Provenance: entities.ProvenanceVoice, Status: entities.ScopeItemActive},
			{ID: "c1", CatalogCode: "PNT-WALL", Provenance: entities.ProvenanceManual, ParentScopeItemID: "p1", Status: entities.ScopeItemActive},
		}

		res := ValidateCompanionItems(items, catalog)

		if !res.Valid {
			t.Error("provenance mismatch is advisory, result should stay valid")
		}
		if len(issuesByCode(res, "PROVENANCE_MISMATCH")) != 1 {
			t.Errorf("expected one PROVENANCE_MISMATCH warning, got %+v", res.Issues)
		}
	})

	t.Run("Should warn when excluded codes are both active", func(t *testing.T) {
		cat := catalogByCode([]entities.CatalogItem{
			{Code: "FLR-REF", CompanionRules: entities.CompanionRules{Excludes: []string{"FLR-REP"}}},
			{Code: "FLR-REP"},
		})
		items := []entities.ScopeItem{
			{ID: "i1", CatalogCode: "FLR-REF", Status: entities.ScopeItemActive},
			{ID: "i2", CatalogCode: "FLR-REP", Status: entities.ScopeItemActive},
		}

		res := ValidateCompanionItems(items, cat)

		if len(issuesByCode(res, "EXCLUSION_CONFLICT")) != 1 {
			t.Errorf("expected one EXCLUSION_CONFLICT warning, got %+v", res.Issues)
		}
	})

	t.Run("Should warn when a required sibling is absent", func(t *testing.T) {
		items := []entities.ScopeItem{
			{ID: "c1", CatalogCode: "PNT-WALL", Status: entities.ScopeItemActive},
		}

		res := ValidateCompanionItems(items, catalog)

		if len(issuesByCode(res, "MISSING_REQUIRED")) != 1 {
			t.Errorf("expected one MISSING_REQUIRED warning, got %+v", res.Issues)
		}
	})

	t.Run("Should ignore removed items in rule checks", func(t *testing.T) {
		cat := catalogByCode([]entities.CatalogItem{
			{Code: "FLR-REF", CompanionRules: entities.CompanionRules{Excludes: []string{"FLR-REP"}}},
			{Code: "FLR-REP"},
		})
		items := []entities.ScopeItem{
			{ID: "i1", CatalogCode: "FLR-REF", Status: entities.ScopeItemActive},
			{ID: "i2", CatalogCode: "FLR-REP", Status: entities.ScopeItemRemoved},
		}

		res := ValidateCompanionItems(items, cat)

		if len(issuesByCode(res, "EXCLUSION_CONFLICT")) != 0 {
			t.Errorf("expected no conflict against a removed item, got %+v", res.Issues)
		}
	})
}

func TestAutoScopeOutputPassesValidation(t *testing.T) {
	// Whatever the engine emits must satisfy its own validator.
	cfg := config.Default()
	engine := NewEngine(cfg, testCatalog())

	res := engine.AutoScope(Input{SessionID: "sess-1", Room: kitchen(), Damage: waterDamage(120)})
	validation := ValidateCompanionItems(res.Items, catalogByCode(testCatalog()))

	if !validation.Valid {
		t.Errorf("engine output failed validation: %+v", validation.Issues)
	}
	for _, issue := range validation.Issues {
		if issue.Severity == entities.SeverityError {
			t.Errorf("unexpected error-severity issue: %+v", issue)
		}
	}
}
