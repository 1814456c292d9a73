package geometry

import (
	"testing"

	"claimscope/internal/domain/entities"
)

func TestResolve(t *testing.T) {
	t.Run("Should derive all measurements from complete dimensions", func(t *testing.T) {
		room := entities.Room{Length: 12, Width: 10, Height: 8}

		bag := Resolve(room)

		if bag.Incomplete {
			t.Fatalf("expected complete bag, missing: %v", bag.Missing)
		}
		if bag.FloorSF != 120 {
			t.Errorf("expected floor 120, got %v", bag.FloorSF)
		}
		if bag.CeilingSF != 120 {
			t.Errorf("expected ceiling 120, got %v", bag.CeilingSF)
		}
		if bag.PerimeterLF != 44 {
			t.Errorf("expected perimeter 44, got %v", bag.PerimeterLF)
		}
		if bag.WallSF != 352 {
			t.Errorf("expected wall 352, got %v", bag.WallSF)
		}
		if bag.RoofSQ != 0 {
			t.Errorf("expected no roof squares for interior room, got %v", bag.RoofSQ)
		}
	})

	t.Run("Should subtract opening areas from wall area", func(t *testing.T) {
		room := entities.Room{
			Length: 12, Width: 10, Height: 8,
			Openings: []entities.Opening{
				{Type: entities.OpeningDoor, Wall: 0, Width: 3, Height: 7, Quantity: 1},
				{Type: entities.OpeningWindow, Wall: 1, Width: 4, Height: 3, Quantity: 2},
			},
		}

		bag := Resolve(room)

		// 352 - 21 - 24
		if bag.WallSF != 307 {
			t.Errorf("expected wall 307, got %v", bag.WallSF)
		}
	})

	t.Run("Should default opening quantity to one", func(t *testing.T) {
		room := entities.Room{
			Length: 10, Width: 10, Height: 8,
			Openings: []entities.Opening{{Width: 3, Height: 7}},
		}

		bag := Resolve(room)

		if bag.WallSF != 299 {
			t.Errorf("expected wall 299, got %v", bag.WallSF)
		}
	})

	t.Run("Should clamp wall area at zero when openings exceed it", func(t *testing.T) {
		room := entities.Room{
			Length: 2, Width: 2, Height: 2,
			Openings: []entities.Opening{{Width: 10, Height: 10, Quantity: 5}},
		}

		bag := Resolve(room)

		if bag.WallSF != 0 {
			t.Errorf("expected wall clamped to 0, got %v", bag.WallSF)
		}
	})

	t.Run("Should mark bag incomplete when height is missing", func(t *testing.T) {
		room := entities.Room{Length: 12, Width: 10}

		bag := Resolve(room)

		if !bag.Incomplete {
			t.Fatal("expected incomplete bag")
		}
		if len(bag.Missing) != 1 || bag.Missing[0] != "height" {
			t.Errorf("expected missing [height], got %v", bag.Missing)
		}
		if bag.FloorSF != 120 || bag.PerimeterLF != 44 {
			t.Errorf("expected partial floor/perimeter measurements, got %v/%v", bag.FloorSF, bag.PerimeterLF)
		}
		if bag.WallSF != 0 {
			t.Errorf("expected no wall area without height, got %v", bag.WallSF)
		}
	})

	t.Run("Should list every missing dimension", func(t *testing.T) {
		bag := Resolve(entities.Room{})

		if !bag.Incomplete {
			t.Fatal("expected incomplete bag")
		}
		if len(bag.Missing) != 3 {
			t.Errorf("expected 3 missing dimensions, got %v", bag.Missing)
		}
	})

	t.Run("Should compute roofing squares for roof rooms", func(t *testing.T) {
		room := entities.Room{RoomType: "roof", Length: 40, Width: 30, Height: 1}

		bag := Resolve(room)

		if bag.RoofSQ != 12 {
			t.Errorf("expected 12 squares, got %v", bag.RoofSQ)
		}
	})

	t.Run("Should be deterministic across repeated resolutions", func(t *testing.T) {
		room := entities.Room{Length: 9.5, Width: 7.25, Height: 8,
			Openings: []entities.Opening{{Width: 3, Height: 6.8, Quantity: 1}}}

		first := Resolve(room)
		second := Resolve(room)

		if first.FloorSF != second.FloorSF || first.WallSF != second.WallSF || first.PerimeterLF != second.PerimeterLF {
			t.Errorf("expected identical bags, got %+v vs %+v", first, second)
		}
	})
}
