package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Screen columns per grid cell
	panelGap   = 2  // Space between board and side panel
	panelWidth = 16 // Side panel width
)

// Glyphs for grid cells.
const (
	blockGlyph = '█'
	emptyGlyph = '·'
)

// MinScreenSize returns the smallest screen that fits the board and panel.
func MinScreenSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 2 + panelGap + panelWidth, rows + 2
}

// Render draws the current frame: the game-over screen once the game is
// lost, otherwise the playfield and side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateGameOver {
		RenderGameOver(dst, g.score)
		return
	}

	v := g.View()
	minW, minH := MinScreenSize(v.Grid.Cols, v.Grid.Rows)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardW := v.Grid.Cols*cellWidth + 2
	boardX := max(0, (dst.Width()-minW)/2)
	boardY := max(0, (dst.Height()-minH)/2)

	renderGrid(dst, v.Grid, boardX, boardY)
	renderPanel(dst, v, boardX+boardW+panelGap, boardY)
}

// renderGrid draws the bordered playfield with the top-left border corner at (x0, y0).
func renderGrid(dst *core.Screen, grid *Grid, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, grid.Cols*cellWidth+2, grid.Rows+2), core.ColorWhite)

	for y := range grid.Rows {
		for x := range grid.Cols {
			px := x0 + 1 + x*cellWidth
			py := y0 + 1 + y
			cell := grid.At(core.C(x, y))
			if cell.Filled {
				dst.SetCell(px, py, blockGlyph, cell.Color)
				dst.SetCell(px+1, py, blockGlyph, cell.Color)
				continue
			}
			dst.SetCell(px+1, py, emptyGlyph, core.ColorGray)
		}
	}
}

// renderPanel draws score, next-piece preview and counters.
func renderPanel(dst *core.Screen, v View, x0, y0 int) {
	dst.DrawTextColor(x0, y0+1, "TETRIS", core.ColorBrightWhite)
	dst.DrawText(x0, y0+3, fmt.Sprintf("Score: %d", v.Score))
	dst.DrawText(x0, y0+5, "Next:")

	for i, row := range v.Next.Shape {
		for j, occupied := range row {
			if !occupied {
				continue
			}
			px := x0 + j*cellWidth
			py := y0 + 7 + i
			dst.SetCell(px, py, blockGlyph, v.Next.Color)
			dst.SetCell(px+1, py, blockGlyph, v.Next.Color)
		}
	}

	statsY := y0 + 7 + max(v.Next.Shape.Rows(), 2) + 2
	dst.DrawText(x0, statsY, fmt.Sprintf("Lines: %d", v.Lines))
	dst.DrawText(x0, statsY+1, fmt.Sprintf("Pieces: %d", v.Pieces))
}

// RenderGameOver draws the final screen for the given score.
func RenderGameOver(dst *core.Screen, score int) {
	dst.Clear()
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Final Score: %d", score), core.ColorWhite)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}
