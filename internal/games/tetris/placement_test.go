package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	testCols = 10
	testRows = 20
)

// compacted returns where every surviving block of orig should end up once
// the given full rows are removed: each block drops one row per cleared row
// below it.
func compacted(orig map[core.Coord]core.Color, full ...int) map[core.Coord]core.Color {
	isFull := make(map[int]bool, len(full))
	for _, y := range full {
		isFull[y] = true
	}
	out := make(map[core.Coord]core.Color, len(orig))
	for c, color := range orig {
		if isFull[c.Y] {
			continue
		}
		drop := 0
		for _, y := range full {
			if y > c.Y {
				drop++
			}
		}
		out[c.Add(0, drop)] = color
	}
	return out
}

func TestSpawnIsValidOnEmptyGrid(t *testing.T) {
	g := CreateGrid(testCols, testRows, NewLockedStore())

	for _, d := range CanonicalShapes() {
		t.Run(d.Name, func(t *testing.T) {
			assert.True(t, ValidPosition(pieceAt(t, d.Name, 3, 0), g))
		})
	}
}

func TestValidPositionBoundaries(t *testing.T) {
	g := CreateGrid(testCols, testRows, NewLockedStore())

	tests := []struct {
		name  string
		piece string
		x, y  int
		valid bool
	}{
		{"left wall flush", "O", 0, 0, true},
		{"past left wall", "O", -1, 0, false},
		{"right wall flush", "O", 8, 0, true},
		{"past right wall", "O", 9, 0, false},
		{"I past right wall", "I", 7, 0, false},
		{"on the floor", "O", 3, 18, true},
		{"through the floor", "O", 3, 19, false},
		{"partly above top", "O", 3, -1, true},
		{"entirely above top", "O", 3, -5, true},
		{"above top past wall", "O", -1, -5, false},
		{"T at left wall", "T", 0, 0, true},
		{"T past left wall", "T", -1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidPosition(pieceAt(t, tc.piece, tc.x, tc.y), g))
		})
	}
}

func TestValidPositionIgnoresEmptyShapeCells(t *testing.T) {
	// The T's top-left bounding-box cell is empty, so a block there is no collision.
	g := CreateGrid(testCols, testRows, storeOf(core.ColorRed, core.C(3, 10)))

	assert.True(t, ValidPosition(pieceAt(t, "T", 3, 10), g))
	assert.False(t, ValidPosition(pieceAt(t, "T", 2, 10), g))
}

func TestPlaceThenInvalid(t *testing.T) {
	store := NewLockedStore()
	p := pieceAt(t, "L", 4, 7)

	require.True(t, ValidPosition(p, CreateGrid(testCols, testRows, store)))
	Place(p, store)

	assert.Equal(t, 4, store.Len())
	for _, c := range p.Cells() {
		color, ok := store.Get(c)
		assert.True(t, ok)
		assert.Equal(t, p.Color, color)
	}
	assert.False(t, ValidPosition(p, CreateGrid(testCols, testRows, store)))
}

func TestPlaceOverwritesSilently(t *testing.T) {
	store := storeOf(core.ColorRed, core.C(3, 0))
	p := pieceAt(t, "O", 3, 0)

	Place(p, store)

	color, _ := store.Get(core.C(3, 0))
	assert.Equal(t, p.Color, color)
	assert.Equal(t, 4, store.Len())
}

func TestClearRowsNoFullRow(t *testing.T) {
	store := NewLockedStore()
	fillRow(store, testCols, 19, core.ColorRed, 4)
	fillRow(store, testCols, 18, core.ColorBlue, 0, 9)
	store.Set(core.C(5, 2), core.ColorGreen)
	before := store.Snapshot()

	assert.Equal(t, 0, ClearRows(store, testCols, testRows))
	assert.Equal(t, before, store.Snapshot())
}

func TestClearRowsSingleRow(t *testing.T) {
	for _, r := range []int{0, 7, 19} {
		store := NewLockedStore()
		fillRow(store, testCols, r, core.ColorCyan)
		store.Set(core.C(1, 0), core.ColorRed)
		store.Set(core.C(2, 3), core.ColorGreen)
		store.Set(core.C(8, 12), core.ColorBlue)
		store.Set(core.C(0, 19), core.ColorYellow)
		before := store.Snapshot()

		assert.Equal(t, 1, ClearRows(store, testCols, testRows), "row %d", r)
		assert.Equal(t, compacted(before, r), store.Snapshot(), "row %d", r)
	}
}

func TestClearRowsRowFiveScenario(t *testing.T) {
	store := NewLockedStore()
	fillRow(store, testCols, 5, core.ColorMagenta)
	fillRow(store, testCols, 6, core.ColorGreen, 7)
	for y := range 5 {
		store.Set(core.C(y, y), core.ColorRed)
		store.Set(core.C(9-y, y), core.ColorBlue)
	}
	before := store.Snapshot()

	require.Equal(t, 1, ClearRows(store, testCols, testRows))

	after := store.Snapshot()
	for c, color := range before {
		switch {
		case c.Y < 5:
			got, ok := after[c.Add(0, 1)]
			assert.True(t, ok, "block %v should move to row %d", c, c.Y+1)
			assert.Equal(t, color, got)
		case c.Y == 6:
			assert.Equal(t, color, after[c], "row 6 must stay put")
		}
	}
	for x := range testCols {
		// Row 5 now holds what used to be row 4, nothing of the cleared row.
		if got, ok := after[core.C(x, 5)]; ok {
			assert.NotEqual(t, core.ColorMagenta, got)
		}
	}
	assert.False(t, store.Has(core.C(7, 6)))
	assert.Equal(t, len(before)-testCols, store.Len())
}

func TestClearRowsMultiple(t *testing.T) {
	tests := []struct {
		name  string
		full  []int
		extra []core.Coord
	}{
		{
			name:  "two adjacent at the bottom",
			full:  []int{18, 19},
			extra: []core.Coord{core.C(0, 17), core.C(4, 16), core.C(9, 10)},
		},
		{
			name:  "two apart",
			full:  []int{10, 15},
			extra: []core.Coord{core.C(3, 9), core.C(3, 12), core.C(6, 17), core.C(0, 0)},
		},
		{
			name:  "four at once",
			full:  []int{16, 17, 18, 19},
			extra: []core.Coord{core.C(2, 15), core.C(2, 14), core.C(7, 3)},
		},
		{
			name:  "top row",
			full:  []int{0, 1},
			extra: []core.Coord{core.C(5, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storeOf(core.ColorOrange, tc.extra...)
			for _, y := range tc.full {
				fillRow(store, testCols, y, core.ColorCyan)
			}
			before := store.Snapshot()

			assert.Equal(t, len(tc.full), ClearRows(store, testCols, testRows))
			assert.Equal(t, compacted(before, tc.full...), store.Snapshot())
			assert.Equal(t, len(tc.extra), store.Len())
		})
	}
}

func TestClearRowsLeavesNoGaps(t *testing.T) {
	// A column stack with two full rows inside it must close up.
	store := NewLockedStore()
	for y := 12; y < testRows; y++ {
		store.Set(core.C(0, y), core.ColorRed)
	}
	fillRow(store, testCols, 15, core.ColorBlue)
	fillRow(store, testCols, 17, core.ColorBlue)

	require.Equal(t, 2, ClearRows(store, testCols, testRows))

	for y := 14; y < testRows; y++ {
		assert.True(t, store.Has(core.C(0, y)), "column 0 row %d should be filled", y)
	}
	assert.False(t, store.Has(core.C(0, 13)))
	assert.Equal(t, 6, store.Len())
}
