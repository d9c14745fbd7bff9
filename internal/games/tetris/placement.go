package tetris

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ValidPosition reports whether every occupied cell of p lies inside the
// side walls, above the floor, and on an empty grid cell. Rows above the
// grid (negative Y) are allowed and always count as empty.
func ValidPosition(p Piece, g *Grid) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.Cols || c.Y >= g.Rows {
			return false
		}
		if !g.IsEmpty(c) {
			return false
		}
	}
	return true
}

// Place locks every occupied cell of p into the store with the piece color.
// Existing entries are overwritten; callers check ValidPosition first.
func Place(p Piece, store *LockedStore) {
	for _, c := range p.Cells() {
		store.Set(c, p.Color)
	}
}

// ClearRows removes every full row and pulls the rows above it down.
// Rows are scanned top to bottom; each full row is deleted and every block
// above it moves down by one before the scan continues.
// Returns the number of rows cleared.
func ClearRows(store *LockedStore, cols, rows int) int {
	cleared := 0
	for y := 0; y < rows; y++ {
		if !rowFull(store, cols, y) {
			continue
		}
		cleared++
		for x := 0; x < cols; x++ {
			store.Delete(core.C(x, y))
		}
		shiftDown(store, y)
	}
	return cleared
}

func rowFull(store *LockedStore, cols, y int) bool {
	for x := 0; x < cols; x++ {
		if !store.Has(core.C(x, y)) {
			return false
		}
	}
	return true
}

// shiftDown moves every block above row y down one row. Blocks are moved
// bottom-most first so a move never lands on a block that has yet to move.
func shiftDown(store *LockedStore, y int) {
	above := make([]core.Coord, 0, store.Len())
	store.Each(func(c core.Coord, _ core.Color) {
		if c.Y < y {
			above = append(above, c)
		}
	})
	slices.SortFunc(above, func(a, b core.Coord) int {
		return cmp.Compare(b.Y, a.Y)
	})
	for _, c := range above {
		color, _ := store.Get(c)
		store.Delete(c)
		store.Set(c.Add(0, 1), color)
	}
}
