package pricing

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"claimscope/internal/config"
	"claimscope/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPrice(t *testing.T) {
	cfg := config.Default()
	calc := NewCalculator(cfg)

	item := entities.ScopeItem{ID: "item-1", CatalogCode: "DRY-REPL", TradeCode: entities.TradeDrywall, Quantity: 100, Status: entities.ScopeItemActive}
	cat := entities.CatalogItem{
		Code: "DRY-REPL", TradeCode: entities.TradeDrywall,
		DefaultWasteFactor: 10, LifeExpectancy: 25,
		CoverageType: entities.CoverageDwelling,
	}
	price := entities.RegionalPrice{RegionID: "TX-HOU", LineItemCode: "DRY-REPL", MaterialCost: 0.5, LaborCost: 1.2, EquipmentCost: 0.1}

	t.Run("Should apply waste to material only and tax to wasted material only", func(t *testing.T) {
		out, err := calc.Price(item, cat, &price, ItemContext{})
		if err != nil {
			t.Fatal(err)
		}

		// material 100 * 0.5 * 1.10 = 55, labor 120, equipment 10
		if !almostEqual(out.TotalPrice, 185) {
			t.Errorf("expected total 185, got %v", out.TotalPrice)
		}
		if !almostEqual(out.TaxAmount, 55*8.25/100) {
			t.Errorf("expected tax on material portion only, got %v", out.TaxAmount)
		}
		if !almostEqual(out.UnitPrice, 1.8) {
			t.Errorf("expected unit price 1.8, got %v", out.UnitPrice)
		}
	})

	t.Run("Should depreciate straight-line on age over life", func(t *testing.T) {
		out, err := calc.Price(item, cat, &price, ItemContext{Age: 5})
		if err != nil {
			t.Fatal(err)
		}

		if !almostEqual(out.DepreciationPercentage, 20) {
			t.Errorf("expected 20%% depreciation at age 5 of 25, got %v", out.DepreciationPercentage)
		}
		if !almostEqual(out.DepreciationAmount, out.TotalPrice*0.2) {
			t.Errorf("expected depreciation %v, got %v", out.TotalPrice*0.2, out.DepreciationAmount)
		}
		if !almostEqual(out.ACV, out.RCV()-out.DepreciationAmount) {
			t.Errorf("ACV must equal RCV minus depreciation, got %v", out.ACV)
		}
		if out.DepreciationType != entities.DepreciationRecoverable {
			t.Errorf("expected recoverable by default, got %s", out.DepreciationType)
		}
	})

	t.Run("Should clamp depreciation at 100 percent", func(t *testing.T) {
		agedRoof := cat
		agedRoof.TradeCode = entities.TradeRoofing
		agedRoof.LifeExpectancy = 20

		out, err := calc.Price(item, agedRoof, &price, ItemContext{Age: 22})
		if err != nil {
			t.Fatal(err)
		}

		if out.DepreciationPercentage != 100 {
			t.Errorf("expected clamp at 100%%, got %v", out.DepreciationPercentage)
		}
		// Fully depreciated still leaves the tax in ACV.
		if !almostEqual(out.ACV, out.TaxAmount) {
			t.Errorf("expected ACV = tax for fully depreciated item, got %v", out.ACV)
		}
		if out.ACV < 0 {
			t.Errorf("ACV must never go negative, got %v", out.ACV)
		}
	})

	t.Run("Should skip depreciation for non-depreciating items", func(t *testing.T) {
		nonDep := cat
		nonDep.LifeExpectancy = 0

		out, err := calc.Price(item, nonDep, &price, ItemContext{Age: 40})
		if err != nil {
			t.Fatal(err)
		}

		if out.DepreciationAmount != 0 || out.DepreciationPercentage != 0 {
			t.Errorf("expected no depreciation, got %v (%v%%)", out.DepreciationAmount, out.DepreciationPercentage)
		}
	})

	t.Run("Should surface missing regional price as an issue, not an error", func(t *testing.T) {
		out, err := calc.Price(item, cat, nil, ItemContext{})
		if err != nil {
			t.Fatal(err)
		}

		if out.PricingIssue != NoRegionalPrice {
			t.Errorf("expected %q issue, got %q", NoRegionalPrice, out.PricingIssue)
		}
		if out.TotalPrice != 0 || out.ACV != 0 {
			t.Errorf("expected zero money fields, got total=%v acv=%v", out.TotalPrice, out.ACV)
		}
	})

	t.Run("Should reject negative quantity", func(t *testing.T) {
		bad := item
		bad.Quantity = -1

		_, err := calc.Price(bad, cat, &price, ItemContext{})
		if !errors.Is(err, ErrNegativeQuantity) {
			t.Errorf("expected ErrNegativeQuantity, got %v", err)
		}
	})

	t.Run("Should classify roof depreciation non-recoverable under the schedule endorsement", func(t *testing.T) {
		roofCfg := config.Default()
		roofCfg.RoofScheduleEnabled = true
		roofCfg.RoofScheduleThresholdYears = 15
		roofCalc := NewCalculator(roofCfg)

		roof := cat
		roof.TradeCode = entities.TradeRoofing
		roof.LifeExpectancy = 30

		out, err := roofCalc.Price(item, roof, &price, ItemContext{Age: 18, RoofScheduleApplies: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.DepreciationType != entities.DepreciationNonRecoverable {
			t.Errorf("expected non-recoverable, got %s", out.DepreciationType)
		}

		young, err := roofCalc.Price(item, roof, &price, ItemContext{Age: 10, RoofScheduleApplies: true})
		if err != nil {
			t.Fatal(err)
		}
		if young.DepreciationType != entities.DepreciationRecoverable {
			t.Errorf("expected recoverable under threshold age, got %s", young.DepreciationType)
		}
	})

	t.Run("Should classify code upgrades as paid when incurred", func(t *testing.T) {
		out, err := calc.Price(item, cat, &price, ItemContext{Age: 5, CodeUpgrade: true})
		if err != nil {
			t.Fatal(err)
		}

		if out.DepreciationType != entities.DepreciationPWI {
			t.Errorf("expected paid-when-incurred, got %s", out.DepreciationType)
		}
		if out.CoverageType != entities.CoverageCodeUpgrade {
			t.Errorf("expected code upgrade coverage, got %s", out.CoverageType)
		}
	})

	t.Run("Should keep RCV, depreciation and ACV consistent over random inputs", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 500; i++ {
			it := item
			it.Quantity = rng.Float64() * 5000
			c := cat
			c.DefaultWasteFactor = rng.Float64() * 25
			c.LifeExpectancy = rng.Float64() * 50
			p := entities.RegionalPrice{
				MaterialCost:  rng.Float64() * 20,
				LaborCost:     rng.Float64() * 20,
				EquipmentCost: rng.Float64() * 5,
			}
			ctx := ItemContext{Age: rng.Float64() * 60}

			out, err := calc.Price(it, c, &p, ctx)
			if err != nil {
				t.Fatal(err)
			}

			if !almostEqual(out.ACV, math.Max(0, out.RCV()-out.DepreciationAmount)) {
				t.Fatalf("ACV inconsistent at iteration %d: %+v", i, out)
			}
			if out.DepreciationPercentage < 0 || out.DepreciationPercentage > 100 {
				t.Fatalf("depreciation percentage out of range at iteration %d: %v", i, out.DepreciationPercentage)
			}
			if out.DepreciationAmount > out.TotalPrice+1e-9 {
				t.Fatalf("depreciation exceeds total at iteration %d: %+v", i, out)
			}
		}
	})
}
