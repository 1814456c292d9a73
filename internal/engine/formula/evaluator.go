// Package formula maps named quantity formulas onto geometry bags.
package formula

import "claimscope/internal/engine/geometry"

// Formula names a catalog item may declare. MANUAL means the operator must
// state a quantity; EACH defaults to one unit.
const (
	FloorSF     = "FLOOR_SF"
	WallSF      = "WALL_SF"
	CeilingSF   = "CEILING_SF"
	PerimeterLF = "PERIMETER_LF"
	RoofSQ      = "ROOF_SQ"
	Each        = "EACH"
	Manual      = "MANUAL"
)

// Known reports whether name is a recognized formula.
func Known(name string) bool {
	switch name {
	case FloorSF, WallSF, CeilingSF, PerimeterLF, RoofSQ, Each, Manual:
		return true
	}
	return false
}

// Evaluate resolves a named formula against a geometry bag.
//
// ok=false means "no quantity available": MANUAL, an unknown name, or a
// geometry-derived formula over an incomplete bag. It is never returned
// together with a legitimate zero, so callers can distinguish missing data
// from a true zero measurement and apply the quantity-1 fallback with a
// dimension warning.
func Evaluate(name string, bag geometry.Bag) (qty float64, ok bool) {
	switch name {
	case Each:
		return 1, true
	case Manual:
		return 0, false
	case FloorSF:
		return geometric(bag, bag.FloorSF)
	case CeilingSF:
		return geometric(bag, bag.CeilingSF)
	case WallSF:
		return geometric(bag, bag.WallSF)
	case PerimeterLF:
		return geometric(bag, bag.PerimeterLF)
	case RoofSQ:
		// Zero squares means the room is not a roof; that is missing data
		// for a roofing item, not a legitimate zero.
		if bag.Incomplete || bag.RoofSQ <= 0 {
			return 0, false
		}
		return bag.RoofSQ, true
	}
	return 0, false
}

func geometric(bag geometry.Bag, v float64) (float64, bool) {
	if bag.Incomplete {
		return 0, false
	}
	return v, true
}
