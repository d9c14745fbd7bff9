package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is one grid position: empty, or filled with a color.
type Cell struct {
	Filled bool       // Whether the cell holds a block
	Color  core.Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a filled cell with the given color.
func FilledCell(c core.Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Grid is the visible playfield, stored in row-major order.
// Dimensions never change after creation.
type Grid struct {
	Cols  int
	Rows  int
	cells []Cell
}

// CreateGrid builds an empty cols×rows grid and overlays every locked block.
// Blocks outside the visible area are not drawn.
func CreateGrid(cols, rows int, store *LockedStore) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	store.Each(func(c core.Coord, color core.Color) {
		g.set(c, FilledCell(color))
	})
	return g
}

func (g *Grid) index(c core.Coord) int {
	return c.Y*g.Cols + c.X
}

// InBounds returns true if the coordinate is inside the visible grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// At returns the cell at c. Out-of-bounds coordinates read as empty.
func (g *Grid) At(c core.Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.cells[g.index(c)]
}

// IsEmpty reports whether the cell at c holds no block.
func (g *Grid) IsEmpty(c core.Coord) bool {
	return !g.At(c).Filled
}

func (g *Grid) set(c core.Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = cell
	}
}

// WithPiece returns a copy of the grid with the piece drawn on top.
// The receiver is left untouched.
func (g *Grid) WithPiece(p Piece) *Grid {
	out := &Grid{
		Cols:  g.Cols,
		Rows:  g.Rows,
		cells: make([]Cell, len(g.cells)),
	}
	copy(out.cells, g.cells)
	for _, c := range p.Cells() {
		out.set(c, FilledCell(p.Color))
	}
	return out
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}
