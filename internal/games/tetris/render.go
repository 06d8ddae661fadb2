package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	hudHeight      = 2  // status line plus separator
	sidePanelWidth = 16 // hold box, next queue, stats
	blockRune      = '█'
	ghostRune      = '░'
)

// cellColor maps a locked-cell value to a terminal color, one per piece type.
func cellColor(c engine.Cell) core.Color {
	switch engine.PieceType(c - 1) {
	case engine.PieceI:
		return core.ColorCyan
	case engine.PieceJ:
		return core.ColorBlue
	case engine.PieceL:
		return core.ColorOrange
	case engine.PieceO:
		return core.ColorYellow
	case engine.PieceS:
		return core.ColorGreen
	case engine.PieceT:
		return core.ColorMagenta
	case engine.PieceZ:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// boardOrigin returns the top-left screen position of the playfield interior.
func (g *Game) boardOrigin() (int, int) {
	return 2, hudHeight + 1
}

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderSidePanel(dst)

	switch {
	case g.session.Over():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d | Press R to restart", g.session.Score()))
	case g.session.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Level: %d  Lines: %d",
		g.Title(), g.session.Score(), g.session.Level(), g.session.Lines())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the bordered playfield with locked blocks, the ghost
// projection, and the falling piece. Cells above the top edge stay hidden.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.session.Grid()
	bx, by := g.boardOrigin()

	dst.DrawBox(core.NewRect(bx-1, by-1, grid.Width()+2, grid.Height()+2))

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if c := grid.Cell(row, col); c != engine.CellEmpty {
				dst.SetCell(bx+col, by+row, blockRune, cellColor(c))
			}
		}
	}

	if g.session.Over() {
		return
	}

	active := g.session.ActivePiece()
	color := cellColor(active.Type.Color())

	if g.showGhost {
		for _, c := range g.session.GhostCells() {
			if c.Row >= 0 {
				dst.SetCell(bx+c.Col, by+c.Row, ghostRune, core.ColorGray)
			}
		}
	}
	for _, c := range g.session.ActiveCells() {
		if c.Row >= 0 {
			dst.SetCell(bx+c.Col, by+c.Row, blockRune, color)
		}
	}
}

// renderSidePanel draws the hold box, the next queue, and run stats to the
// right of the playfield.
func (g *Game) renderSidePanel(dst *core.Screen) {
	grid := g.session.Grid()
	bx, by := g.boardOrigin()
	px := bx + grid.Width() + 3

	dst.DrawText(px, by, "Hold:")
	if held, ok := g.session.HoldPiece(); ok {
		g.renderMiniPiece(dst, held, px+1, by+1)
	}

	ny := by + 4
	dst.DrawText(px, ny, "Next:")
	for i, t := range g.session.NextQueue() {
		g.renderMiniPiece(dst, t, px+1, ny+1+i*3)
	}

	sy := ny + 2 + g.preview*3
	dst.DrawText(px, sy, fmt.Sprintf("Level: %d", g.session.Level()))
	dst.DrawText(px, sy+1, fmt.Sprintf("Lines: %d", g.session.Lines()))
	dst.DrawText(px, sy+2, fmt.Sprintf("Speed: %dms", g.session.FallIntervalMs()))
}

// renderMiniPiece draws a piece preview in its spawn orientation. Shape
// offsets span rows -1..0 and columns -1..2, so the drawing area is 4x2.
func (g *Game) renderMiniPiece(dst *core.Screen, t engine.PieceType, x, y int) {
	color := cellColor(t.Color())
	for _, o := range engine.Shape(t, 0) {
		dst.SetCell(x+o.Col+1, y+o.Row+1, blockRune, color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
