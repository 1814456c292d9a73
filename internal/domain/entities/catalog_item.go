package entities

// TradeCode groups line items by trade for dedup, O&P counting and
// trade-sequence validation.

type TradeCode string

const (
	TradeDrywall    TradeCode = "DRY"
	TradePainting   TradeCode = "PNT"
	TradeFlooring   TradeCode = "FLR"
	TradeDemolition TradeCode = "DEM"
	TradeMitigation TradeCode = "WTR"
	TradeRoofing    TradeCode = "RFG"
	TradeElectrical TradeCode = "ELE"
	TradePlumbing   TradeCode = "PLM"
	TradeCleaning   TradeCode = "CLN"
)

// UnitOfMeasure is the billing unit of a catalog item.

type UnitOfMeasure string

const (
	UnitSquareFeet UnitOfMeasure = "SF"
	UnitLinearFeet UnitOfMeasure = "LF"
	UnitSquare     UnitOfMeasure = "SQ" // roofing square, 100 SF
	UnitEach       UnitOfMeasure = "EA"
	UnitDay        UnitOfMeasure = "DAY"
	UnitHour       UnitOfMeasure = "HR"
)

type ActivityType string

const (
	ActivityInstall   ActivityType = "install"
	ActivityReplace   ActivityType = "replace"
	ActivityRemove    ActivityType = "remove"
	ActivityRepair    ActivityType = "repair"
	ActivityClean     ActivityType = "clean"
	ActivityReset     ActivityType = "reset"
	ActivityLaborOnly ActivityType = "labor_only"
)

// CoverageType is the policy section a line item bills against.

type CoverageType string

const (
	CoverageDwelling        CoverageType = "dwelling"         // Coverage A
	CoverageOtherStructures CoverageType = "other_structures" // Coverage B
	CoverageContents        CoverageType = "contents"         // Coverage C
	CoverageCodeUpgrade     CoverageType = "code_upgrade"     // ordinance/law, paid when incurred
)

// ScopeConditions is the declarative applicability predicate of a catalog
// item. Matching is AND across populated keys and OR within each key's list;
// an empty list is a wildcard for that key.

type ScopeConditions struct {
	DamageTypes []string `json:"damage_types,omitempty"`
	Surfaces    []string `json:"surfaces,omitempty"`
	Severities  []string `json:"severities,omitempty"`
	RoomTypes   []string `json:"room_types,omitempty"`
	ZoneTypes   []string `json:"zone_types,omitempty"`
}

// CompanionRules declares how a catalog item participates in cascading.
//
//   - Requires: codes that must be present as active siblings for this item
//     to be consistent (validator warning when absent).
//   - AutoAdds: codes cascaded when this item lands as a primary.
//   - Excludes: codes that must not coexist with this item.

type CompanionRules struct {
	Requires []string `json:"requires,omitempty"`
	AutoAdds []string `json:"auto_adds,omitempty"`
	Excludes []string `json:"excludes,omitempty"`
}

// CatalogItem is a priced, reusable unit of repair work.
//
// Storage model (DynamoDB):
//   - PK: code
//
// Code is globally unique and immutable once referenced by an estimate;
// seeding upserts by code and never rewrites the key.

type CatalogItem struct {
	Code               string           `json:"code"`
	Description        string           `json:"description"`
	TradeCode          TradeCode        `json:"trade_code"`
	Unit               UnitOfMeasure    `json:"unit"`
	DefaultWasteFactor float64          `json:"default_waste_factor"` // percent applied to material only
	QuantityFormula    string           `json:"quantity_formula"`
	ActivityType       ActivityType     `json:"activity_type"`
	CoverageType       CoverageType     `json:"coverage_type"`
	LifeExpectancy     float64          `json:"life_expectancy_years"` // 0 = non-depreciating
	ScopeConditions    *ScopeConditions `json:"scope_conditions,omitempty"`
	CompanionRules     CompanionRules   `json:"companion_rules"`
}
