package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// EngineConfig carries the scoping/estimating policy knobs.
//
// These are product policy, not business law: thresholds and percentages
// differ per carrier program, so they are loaded from a yaml file instead of
// being hardcoded in the engine. Every engine invocation receives the config
// explicitly; there is no ambient global state.
//
// Defaults mirror the shipped carrier program:
//   - companions cascade at most 2 levels deep
//   - drywall damage under 100 SF is patched without a demolition companion
//   - demolition quantity is billed per started 500 SF block
//   - O&P requires 3 distinct trades at 10%/10%

type EngineConfig struct {
	MaxCascadeDepth int `yaml:"max_cascade_depth"`

	DemolitionAreaThresholdSF   float64 `yaml:"demolition_area_threshold_sf"`
	DemolitionQuantityDivisorSF float64 `yaml:"demolition_quantity_divisor_sf"`

	TaxRatePercent float64 `yaml:"tax_rate_percent"`

	OverheadPercent  float64  `yaml:"overhead_percent"`
	ProfitPercent    float64  `yaml:"profit_percent"`
	OPTradeMinimum   int      `yaml:"op_trade_minimum"`
	OPExcludedTrades []string `yaml:"op_excluded_trades"`

	RoofScheduleEnabled        bool    `yaml:"roof_schedule_enabled"`
	RoofScheduleThresholdYears float64 `yaml:"roof_schedule_threshold_years"`
}

func Default() EngineConfig {
	return EngineConfig{
		MaxCascadeDepth:             2,
		DemolitionAreaThresholdSF:   100,
		DemolitionQuantityDivisorSF: 500,
		TaxRatePercent:              8.25,
		OverheadPercent:             10,
		ProfitPercent:               10,
		OPTradeMinimum:              3,
		OPExcludedTrades:            nil,
		RoofScheduleEnabled:         false,
		RoofScheduleThresholdYears:  15,
	}
}

// Load reads an EngineConfig from a yaml file. Keys absent from the file keep
// their default value.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv loads the config file named by CLAIMSCOPE_CONFIG, falling back to
// defaults when the variable is unset or the file is unreadable.
func FromEnv() EngineConfig {
	path := os.Getenv("CLAIMSCOPE_CONFIG")
	if path == "" {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}
