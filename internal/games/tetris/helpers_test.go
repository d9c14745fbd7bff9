package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// shapeDef looks up a canonical shape by name.
func shapeDef(t *testing.T, name string) ShapeDef {
	t.Helper()
	for _, d := range CanonicalShapes() {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("no canonical shape %q", name)
	return ShapeDef{}
}

// pieceAt builds a piece of the named canonical shape anchored at (x, y).
func pieceAt(t *testing.T, name string, x, y int) Piece {
	t.Helper()
	d := shapeDef(t, name)
	return Piece{Name: d.Name, Pos: core.C(x, y), Shape: d.Shape.Clone(), Color: d.Color}
}

// newTestGame returns a reset game whose spawner only draws the named shapes.
func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	settings := DefaultSettings()
	if len(names) > 0 {
		settings.Shapes = nil
		for _, n := range names {
			settings.Shapes = append(settings.Shapes, shapeDef(t, n))
		}
	}
	g := New(settings)
	g.Reset(core.RuntimeConfig{Seed: 1})
	require.Equal(t, StateRunning, g.Phase())
	return g
}

// fillRow locks every column of row y except the listed gaps.
func fillRow(store *LockedStore, cols, y int, color core.Color, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < cols; x++ {
		if !skip[x] {
			store.Set(core.C(x, y), color)
		}
	}
}

// storeOf builds a store from the given coordinates, all in one color.
func storeOf(color core.Color, coords ...core.Coord) *LockedStore {
	s := NewLockedStore()
	for _, c := range coords {
		s.Set(c, color)
	}
	return s
}
