package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCreateGridEmpty(t *testing.T) {
	g := CreateGrid(10, 20, NewLockedStore())

	assert.Equal(t, 10, g.Cols)
	assert.Equal(t, 20, g.Rows)
	assert.Equal(t, 0, g.FilledCount())
	for y := range 20 {
		for x := range 10 {
			assert.True(t, g.IsEmpty(core.C(x, y)))
		}
	}
}

func TestCreateGridOverlaysStore(t *testing.T) {
	store := NewLockedStore()
	store.Set(core.C(0, 19), core.ColorRed)
	store.Set(core.C(9, 0), core.ColorBlue)
	store.Set(core.C(4, -1), core.ColorGreen) // above the visible grid

	g := CreateGrid(10, 20, store)

	assert.Equal(t, FilledCell(core.ColorRed), g.At(core.C(0, 19)))
	assert.Equal(t, FilledCell(core.ColorBlue), g.At(core.C(9, 0)))
	assert.Equal(t, 2, g.FilledCount())
	assert.True(t, g.IsEmpty(core.C(4, -1)))
}

func TestGridWithPieceDoesNotTouchStore(t *testing.T) {
	store := NewLockedStore()
	g := CreateGrid(10, 20, store)
	p := pieceAt(t, "O", 3, 0)

	overlaid := g.WithPiece(p)

	assert.Equal(t, 4, overlaid.FilledCount())
	assert.Equal(t, FilledCell(p.Color), overlaid.At(core.C(4, 1)))
	assert.Equal(t, 0, g.FilledCount(), "source grid must stay clean")
	assert.Equal(t, 0, store.Len(), "overlay must never reach the store")
}

func TestGridWithPieceClipsAboveTop(t *testing.T) {
	g := CreateGrid(10, 20, NewLockedStore())
	p := pieceAt(t, "O", 3, -1)

	overlaid := g.WithPiece(p)

	assert.Equal(t, 2, overlaid.FilledCount())
}

func TestGridOutOfBoundsReadsEmpty(t *testing.T) {
	g := CreateGrid(10, 20, NewLockedStore())

	for _, c := range []core.Coord{core.C(-1, 0), core.C(10, 0), core.C(0, 20), core.C(0, -1)} {
		assert.False(t, g.InBounds(c))
		assert.True(t, g.IsEmpty(c))
	}
}
