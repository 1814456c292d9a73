// Package geometry derives measurement bags from stored room dimensions.
//
// Resolution is pure: the same Room always yields the same Bag, so callers
// may recompute freely after dimension edits.
package geometry

import "claimscope/internal/domain/entities"

// Bag is the named set of derived measurements formulas evaluate against.
//
// A missing required dimension marks the bag Incomplete and lists the
// dimension in Missing; callers must treat the affected measurements as
// unavailable rather than zero.

type Bag struct {
	FloorSF     float64
	CeilingSF   float64
	WallSF      float64
	PerimeterLF float64
	RoofSQ      float64 // roofing squares (100 SF), roof-type rooms only

	Incomplete bool
	Missing    []string
}

// Resolve computes the derived measurement bag for a room.
//
// Wall area is perimeter times height minus the summed area of all openings,
// clamped at zero. Partial dimensions produce a partial bag, never an error.
func Resolve(room entities.Room) Bag {
	var bag Bag

	if room.Length <= 0 {
		bag.Missing = append(bag.Missing, "length")
	}
	if room.Width <= 0 {
		bag.Missing = append(bag.Missing, "width")
	}
	if room.Height <= 0 {
		bag.Missing = append(bag.Missing, "height")
	}
	bag.Incomplete = len(bag.Missing) > 0

	if room.Length > 0 && room.Width > 0 {
		bag.FloorSF = room.Length * room.Width
		bag.CeilingSF = bag.FloorSF
		bag.PerimeterLF = 2 * (room.Length + room.Width)
		if room.IsRoof() {
			bag.RoofSQ = bag.FloorSF / 100
		}
	}

	if bag.PerimeterLF > 0 && room.Height > 0 {
		wall := bag.PerimeterLF * room.Height
		wall -= openingArea(room.Openings)
		if wall < 0 {
			wall = 0
		}
		bag.WallSF = wall
	}

	return bag
}

func openingArea(openings []entities.Opening) float64 {
	var total float64
	for _, o := range openings {
		qty := o.Quantity
		if qty <= 0 {
			qty = 1
		}
		if o.Width > 0 && o.Height > 0 {
			total += o.Width * o.Height * float64(qty)
		}
	}
	return total
}
