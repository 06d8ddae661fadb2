// Package engine implements the tetris simulation: grid, pieces, bag
// randomizer, scoring, and the tick-driven session state machine. It is pure
// logic with no I/O and no platform dependencies, and is fully deterministic
// given a seed and a command stream.
package engine

import "fmt"

// Cell is the state of one grid cell: CellEmpty or a piece color id (1..7).
type Cell int8

// CellEmpty marks an unoccupied grid cell.
const CellEmpty Cell = 0

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Grid is the fixed-size playfield of locked blocks. Rows are addressed top
// (0) to bottom (height-1). Only piece locking and line clearing mutate it.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.Reset()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Reset clears every cell.
func (g *Grid) Reset() {
	g.cells = make([][]Cell, g.height)
	for r := range g.cells {
		g.cells[r] = make([]Cell, g.width)
	}
}

// Cell returns the value at (row, col), or CellEmpty when out of range.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return CellEmpty
	}
	return g.cells[row][col]
}

// Occupied reports whether a falling piece may not enter (row, col).
// Positions beyond the side or bottom edges count as occupied; positions
// above the top edge are open so pieces can spawn partially off-screen.
func (g *Grid) Occupied(row, col int) bool {
	if col < 0 || col >= g.width || row >= g.height {
		return true
	}
	if row < 0 {
		return false
	}
	return g.cells[row][col] != CellEmpty
}

// Place fills the given absolute cells with a color. Every cell must be
// in bounds and empty; a violation is a bug in the caller's transition
// logic and panics.
func (g *Grid) Place(cells [4]Offset, color Cell) {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= g.height || c.Col < 0 || c.Col >= g.width {
			panic(fmt.Sprintf("engine: place out of bounds at (%d,%d)", c.Row, c.Col))
		}
		if g.cells[c.Row][c.Col] != CellEmpty {
			panic(fmt.Sprintf("engine: place onto occupied cell (%d,%d)", c.Row, c.Col))
		}
	}
	for _, c := range cells {
		g.cells[c.Row][c.Col] = color
	}
}

// RowFull reports whether every cell in the row is filled.
// Out-of-range rows are never full.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	for col := 0; col < g.width; col++ {
		if g.cells[row][col] == CellEmpty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all completed rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := 0; row < g.height; row++ {
		if g.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearRows removes the given rows, shifts everything above them down, and
// inserts empty rows at the top, preserving the grid height.
func (g *Grid) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		cleared[r] = true
	}

	next := make([][]Cell, g.height)
	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if cleared[read] {
			continue
		}
		next[write] = g.cells[read]
		write--
	}
	for ; write >= 0; write-- {
		next[write] = make([]Cell, g.width)
	}
	g.cells = next
}

// TopRowBlocked reports whether any cell in the top row is filled.
// Used as a topped-out check.
func (g *Grid) TopRowBlocked() bool {
	for col := 0; col < g.width; col++ {
		if g.cells[0][col] != CellEmpty {
			return true
		}
	}
	return false
}
