package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MaxCascadeDepth != 2 {
		t.Errorf("expected cascade depth 2, got %d", cfg.MaxCascadeDepth)
	}
	if cfg.DemolitionAreaThresholdSF != 100 || cfg.DemolitionQuantityDivisorSF != 500 {
		t.Errorf("unexpected demolition defaults: %+v", cfg)
	}
	if cfg.OPTradeMinimum != 3 || cfg.OverheadPercent != 10 || cfg.ProfitPercent != 10 {
		t.Errorf("unexpected O&P defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	t.Run("Should override only the keys present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		raw := "max_cascade_depth: 3\ndemolition_area_threshold_sf: 150\nroof_schedule_enabled: true\n"
		if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.MaxCascadeDepth != 3 {
			t.Errorf("expected depth 3, got %d", cfg.MaxCascadeDepth)
		}
		if cfg.DemolitionAreaThresholdSF != 150 {
			t.Errorf("expected threshold 150, got %v", cfg.DemolitionAreaThresholdSF)
		}
		if !cfg.RoofScheduleEnabled {
			t.Error("expected roof schedule enabled")
		}
		if cfg.TaxRatePercent != 8.25 {
			t.Errorf("expected untouched tax default, got %v", cfg.TaxRatePercent)
		}
	})

	t.Run("Should return defaults alongside the error for a missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		if err == nil {
			t.Fatal("expected an error")
		}
		if cfg.MaxCascadeDepth != Default().MaxCascadeDepth {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("Should fall back to defaults when unset", func(t *testing.T) {
		t.Setenv("CLAIMSCOPE_CONFIG", "")

		if cfg := FromEnv(); !reflect.DeepEqual(cfg, Default()) {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("Should load the named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		if err := os.WriteFile(path, []byte("op_trade_minimum: 4\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("CLAIMSCOPE_CONFIG", path)

		if cfg := FromEnv(); cfg.OPTradeMinimum != 4 {
			t.Errorf("expected O&P minimum 4, got %d", cfg.OPTradeMinimum)
		}
	})
}
