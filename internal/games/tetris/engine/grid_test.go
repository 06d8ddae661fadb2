package engine

import "testing"

func fillRow(g *Grid, row int, color Cell) {
	for col := 0; col < g.Width(); col++ {
		g.cells[row][col] = color
	}
}

func TestOccupiedBounds(t *testing.T) {
	g := NewGrid(10, 20)

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"empty in-bounds", 5, 5, false},
		{"left of grid", 5, -1, true},
		{"right of grid", 5, 10, true},
		{"below grid", 20, 5, true},
		{"above grid is open", -1, 5, false},
		{"far above grid is open", -3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Occupied(tt.row, tt.col); got != tt.want {
				t.Errorf("Occupied(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}

	g.cells[5][5] = 3
	if !g.Occupied(5, 5) {
		t.Error("Occupied should report a filled cell")
	}
}

func TestRowFull(t *testing.T) {
	g := NewGrid(10, 20)

	if g.RowFull(19) {
		t.Error("empty row should not be full")
	}

	fillRow(g, 19, 1)
	if !g.RowFull(19) {
		t.Error("filled row should be full")
	}

	g.cells[19][4] = CellEmpty
	if g.RowFull(19) {
		t.Error("row with a gap should not be full")
	}

	// Out-of-range rows are never full
	if g.RowFull(-1) || g.RowFull(20) {
		t.Error("out-of-range rows must not report full")
	}
}

func TestClearRowsShiftsDown(t *testing.T) {
	g := NewGrid(10, 20)

	// Full rows at 2 and 5, markers above, between, and below them.
	fillRow(g, 2, 1)
	fillRow(g, 5, 1)
	g.cells[0][0] = 7 // above both: shifts down by 2
	g.cells[3][1] = 6 // between: shifts down by 1
	g.cells[6][2] = 5 // below both: stays

	g.ClearRows([]int{2, 5})

	if got := g.Height(); got != 20 {
		t.Fatalf("height changed to %d after clear", got)
	}
	if g.Cell(2, 0) != 7 {
		t.Errorf("marker above cleared rows should land on row 2, got cell %d", g.Cell(2, 0))
	}
	if g.Cell(4, 1) != 6 {
		t.Errorf("marker between cleared rows should land on row 4, got cell %d", g.Cell(4, 1))
	}
	if g.Cell(6, 2) != 5 {
		t.Errorf("marker below cleared rows should stay on row 6, got cell %d", g.Cell(6, 2))
	}

	// The two top rows must now be empty.
	for col := 0; col < g.Width(); col++ {
		if col != 0 && g.Cell(0, col) != CellEmpty {
			t.Errorf("top row not empty at col %d", col)
		}
		if g.Cell(1, col) != CellEmpty {
			t.Errorf("row 1 not empty at col %d", col)
		}
	}
	// Neither former full row survived.
	for row := 0; row < g.Height(); row++ {
		if g.RowFull(row) {
			t.Errorf("row %d still full after clear", row)
		}
	}
}

func TestFullRowsOrder(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 17, 2)
	fillRow(g, 4, 2)
	fillRow(g, 19, 2)

	rows := g.FullRows()
	want := []int{4, 17, 19}
	if len(rows) != len(want) {
		t.Fatalf("FullRows() = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("FullRows() = %v, want %v", rows, want)
		}
	}
}

func TestPlaceAndTopRowBlocked(t *testing.T) {
	g := NewGrid(10, 20)

	if g.TopRowBlocked() {
		t.Error("fresh grid should not be topped out")
	}

	g.Place([4]Offset{{19, 0}, {19, 1}, {18, 0}, {18, 1}}, 4)
	for _, c := range [][2]int{{19, 0}, {19, 1}, {18, 0}, {18, 1}} {
		if g.Cell(c[0], c[1]) != 4 {
			t.Errorf("cell (%d,%d) not placed", c[0], c[1])
		}
	}

	g.Place([4]Offset{{0, 3}, {0, 4}, {0, 5}, {0, 6}}, 1)
	if !g.TopRowBlocked() {
		t.Error("grid with a filled top-row cell should be topped out")
	}
}

func TestPlacePanicsOnOccupied(t *testing.T) {
	g := NewGrid(10, 20)
	g.Place([4]Offset{{19, 0}, {19, 1}, {19, 2}, {19, 3}}, 1)

	defer func() {
		if recover() == nil {
			t.Error("Place onto an occupied cell must panic")
		}
	}()
	g.Place([4]Offset{{19, 3}, {19, 4}, {19, 5}, {19, 6}}, 2)
}

func TestPlacePanicsOutOfBounds(t *testing.T) {
	g := NewGrid(10, 20)

	defer func() {
		if recover() == nil {
			t.Error("Place out of bounds must panic")
		}
	}()
	g.Place([4]Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, 1)
}
