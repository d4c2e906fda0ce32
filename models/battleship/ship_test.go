package battleship_test

import (
	"reflect"
	"testing"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

func TestShipOccupiedCells(t *testing.T) {
	tests := []struct {
		name        string
		bow         mb.Coordinates
		length      int
		orientation mb.Orientation
		expected    []mb.Coordinates
	}{
		{
			name:        "single cell",
			bow:         mb.NewCoordinates(2, 2),
			length:      1,
			orientation: mb.OrientationVertical,
			expected:    coords([2]int{2, 2}),
		},
		{
			name:        "horizontal grows along x",
			bow:         mb.NewCoordinates(1, 4),
			length:      3,
			orientation: mb.OrientationHorizontal,
			expected:    coords([2]int{1, 4}, [2]int{2, 4}, [2]int{3, 4}),
		},
		{
			name:        "vertical grows along y",
			bow:         mb.NewCoordinates(0, 0),
			length:      2,
			orientation: mb.OrientationVertical,
			expected:    coords([2]int{0, 0}, [2]int{0, 1}),
		},
		{
			name:        "cells past the edge are still derived",
			bow:         mb.NewCoordinates(5, 5),
			length:      3,
			orientation: mb.OrientationHorizontal,
			expected:    coords([2]int{5, 5}, [2]int{6, 5}, [2]int{7, 5}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := mb.NewShip(test.bow, test.length, test.orientation)
			cells := ship.OccupiedCells()

			if !reflect.DeepEqual(cells, test.expected) {
				t.Fatalf("expected cells: %v\tgot: %v", test.expected, cells)
			}
			if ship.RemainingHits() != test.length {
				t.Fatalf("expected remaining hits: %d\tgot: %d", test.length, ship.RemainingHits())
			}
		})
	}
}

func TestShipCellsAreContiguous(t *testing.T) {
	for length := mb.MinShipLength; length <= mb.MaxShipLength; length++ {
		for _, o := range []mb.Orientation{mb.OrientationHorizontal, mb.OrientationVertical} {
			ship := mb.NewShip(mb.NewCoordinates(1, 1), length, o)
			cells := ship.OccupiedCells()

			if len(cells) != length {
				t.Fatalf("expected %d cells, got %d", length, len(cells))
			}

			seen := make(map[mb.Coordinates]bool, length)
			for i, c := range cells {
				if seen[c] {
					t.Fatalf("duplicate cell %v", c)
				}
				seen[c] = true

				if i == 0 {
					continue
				}
				dx, dy := c.X-cells[i-1].X, c.Y-cells[i-1].Y
				if o == mb.OrientationHorizontal && (dx != 1 || dy != 0) {
					t.Fatalf("horizontal ship is not a line along x: %v", cells)
				}
				if o == mb.OrientationVertical && (dx != 0 || dy != 1) {
					t.Fatalf("vertical ship is not a line along y: %v", cells)
				}
			}
		}
	}
}

func TestShipIsHitBy(t *testing.T) {
	ship := mb.NewShip(mb.NewCoordinates(0, 3), 3, mb.OrientationVertical)

	for _, c := range coords([2]int{0, 3}, [2]int{0, 4}, [2]int{0, 5}) {
		if !ship.IsHitBy(c) {
			t.Fatalf("%v should hit the ship", c)
		}
	}
	for _, c := range coords([2]int{1, 3}, [2]int{0, 2}, [2]int{0, 6}) {
		if ship.IsHitBy(c) {
			t.Fatalf("%v should not hit the ship", c)
		}
	}

	if ship.RemainingHits() != 3 {
		t.Fatal("IsHitBy must not change remaining hits")
	}
}
