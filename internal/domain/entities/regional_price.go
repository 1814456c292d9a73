package entities

import "time"

// RegionalPrice is the active unit price of a catalog item in a pricing
// region.
//
// Storage model (DynamoDB):
//   - PK: region_id
//   - SK: line_item_code
//
// At most one active row exists per (region, code); seeding upserts in place.

type RegionalPrice struct {
	RegionID         string    `json:"region_id"`
	LineItemCode     string    `json:"line_item_code"`
	MaterialCost     float64   `json:"material_cost"`
	LaborCost        float64   `json:"labor_cost"`
	EquipmentCost    float64   `json:"equipment_cost"`
	EffectiveDate    time.Time `json:"effective_date"`
	PriceListVersion string    `json:"price_list_version"`
}

// UnitPrice is the undecorated per-unit price, before waste and tax.
func (p RegionalPrice) UnitPrice() float64 {
	return p.MaterialCost + p.LaborCost + p.EquipmentCost
}
