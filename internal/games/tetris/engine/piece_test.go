package engine

import "testing"

func allTypes() []PieceType {
	return []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
}

func TestShapesHaveFourDistinctCells(t *testing.T) {
	for _, pt := range allTypes() {
		for rot := 0; rot < 4; rot++ {
			seen := make(map[Offset]bool, 4)
			for _, o := range Shape(pt, rot) {
				if seen[o] {
					t.Errorf("%s rotation %d has duplicate cell %v", pt, rot, o)
				}
				seen[o] = true
			}
			if len(seen) != 4 {
				t.Errorf("%s rotation %d has %d distinct cells", pt, rot, len(seen))
			}
		}
	}
}

func TestRotationHasOrderFour(t *testing.T) {
	for _, pt := range allTypes() {
		p := Piece{Type: pt, Row: 10, Col: 5}
		r := p.Rotated().Rotated().Rotated().Rotated()
		if r != p {
			t.Errorf("%s: four rotations should return to the start, got %+v", pt, r)
		}
		if p.Rotated().Rotation != 1 {
			t.Errorf("%s: single rotation state = %d, want 1", pt, p.Rotated().Rotation)
		}
	}
}

func TestRotationMapping(t *testing.T) {
	// A quarter turn clockwise maps (row, col) to (col, -row).
	for _, pt := range allTypes() {
		for rot := 0; rot < 4; rot++ {
			cur := Shape(pt, rot)
			next := Shape(pt, rot+1)
			for i, o := range cur {
				want := Offset{Row: o.Col, Col: -o.Row}
				if next[i] != want {
					t.Errorf("%s rotation %d cell %d: got %v, want %v", pt, rot, i, next[i], want)
				}
			}
		}
	}
}

func TestCellsApplyOrigin(t *testing.T) {
	p := Piece{Type: PieceI, Rotation: 0, Row: -2, Col: 4}
	want := [4]Offset{{-2, 4}, {-2, 3}, {-2, 5}, {-2, 6}}
	if got := p.Cells(); got != want {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestShiftedDoesNotMutate(t *testing.T) {
	p := Piece{Type: PieceT, Row: 3, Col: 3}
	q := p.Shifted(1, -1)
	if p.Row != 3 || p.Col != 3 {
		t.Error("Shifted mutated the receiver")
	}
	if q.Row != 4 || q.Col != 2 {
		t.Errorf("Shifted() = %+v, want row 4 col 2", q)
	}
}

func TestPieceColors(t *testing.T) {
	seen := make(map[Cell]bool)
	for _, pt := range allTypes() {
		c := pt.Color()
		if c == CellEmpty {
			t.Errorf("%s maps to the empty cell value", pt)
		}
		if seen[c] {
			t.Errorf("%s shares a cell value with another piece", pt)
		}
		seen[c] = true
	}
}
