package usecase

import (
	"context"
	"errors"
	"testing"

	"claimscope/internal/domain/entities"
	mock_interfaces "claimscope/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_SeedCatalog(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.SeedCatalog(context.Background(), []byte("   "))
		if !errors.Is(err, ErrEmptySeedPayload) {
			t.Fatalf("expected ErrEmptySeedPayload, got %v", err)
		}
	})

	t.Run("non-array payload", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.SeedCatalog(context.Background(), []byte(`{"code":"X"}`))
		if !errors.Is(err, ErrMalformedSeedPayload) {
			t.Fatalf("expected ErrMalformedSeedPayload, got %v", err)
		}
	})

	t.Run("valid rows upserted, bad rows skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalogRepo, nil)

		payload := []byte(`[
			{"code": "DRY-REPL", "description": "Drywall - remove & replace", "trade_code": "DRY", "unit": "SF", "quantity_formula": "WALL_SF", "coverage_type": "dwelling", "life_expectancy_years": 25, "scope_conditions": {"damage_types": ["water"]}, "companion_rules": {"auto_adds": ["PNT-WALL"]}},
			{"code": "", "trade_code": "DRY", "unit": "SF", "quantity_formula": "WALL_SF"},
			{"code": "BAD-FORMULA", "trade_code": "DRY", "unit": "SF", "quantity_formula": "CUBITS"}
		]`)

		catalogRepo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogItem{})).DoAndReturn(
			func(_ context.Context, item entities.CatalogItem) error {
				if item.Code != "DRY-REPL" || item.TradeCode != entities.TradeDrywall {
					t.Fatalf("unexpected item: %+v", item)
				}
				if item.ScopeConditions == nil || len(item.ScopeConditions.DamageTypes) != 1 {
					t.Fatalf("expected parsed scope conditions, got %+v", item.ScopeConditions)
				}
				return nil
			},
		)

		res, err := uc.SeedCatalog(context.Background(), payload)
		if err != nil {
			t.Fatal(err)
		}
		if res.Loaded != 1 {
			t.Errorf("expected 1 loaded, got %d", res.Loaded)
		}
		if len(res.Skipped) != 2 {
			t.Errorf("expected 2 skipped, got %+v", res.Skipped)
		}
	})

	t.Run("unknown keys rejected per row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalogRepo, nil)

		payload := []byte(`[{"code": "X", "trade_code": "DRY", "unit": "SF", "quantity_formula": "EACH", "bogus_field": true}]`)

		res, err := uc.SeedCatalog(context.Background(), payload)
		if err != nil {
			t.Fatal(err)
		}
		if res.Loaded != 0 || len(res.Skipped) != 1 {
			t.Errorf("expected the row skipped for unknown key, got %+v", res)
		}
	})

	t.Run("repo failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalogRepo, nil)

		payload := []byte(`[{"code": "X", "trade_code": "DRY", "unit": "SF", "quantity_formula": "EACH"}]`)
		catalogRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.SeedCatalog(context.Background(), payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_SeedPrices(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.SeedPrices(context.Background(), nil)
		if !errors.Is(err, ErrEmptySeedPayload) {
			t.Fatalf("expected ErrEmptySeedPayload, got %v", err)
		}
	})

	t.Run("valid rows upserted, bad rows skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		priceRepo := mock_interfaces.NewMockIPriceRepository(ctrl)
		uc := NewCatalogUseCase(nil, priceRepo)

		payload := []byte(`[
			{"region_id": "TX-HOU", "line_item_code": "DRY-REPL", "material_cost": 0.5, "labor_cost": 1.2, "equipment_cost": 0.1},
			{"region_id": "", "line_item_code": "DRY-REPL"},
			{"region_id": "TX-HOU", "line_item_code": "NEG", "material_cost": -1}
		]`)

		priceRepo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.RegionalPrice{})).DoAndReturn(
			func(_ context.Context, p entities.RegionalPrice) error {
				if p.RegionID != "TX-HOU" || p.LineItemCode != "DRY-REPL" {
					t.Fatalf("unexpected price: %+v", p)
				}
				return nil
			},
		)

		res, err := uc.SeedPrices(context.Background(), payload)
		if err != nil {
			t.Fatal(err)
		}
		if res.Loaded != 1 || len(res.Skipped) != 2 {
			t.Errorf("expected 1 loaded / 2 skipped, got %+v", res)
		}
	})
}
