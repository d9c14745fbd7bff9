package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCellKeyRoundTrip(t *testing.T) {
	coords := []core.Coord{
		core.C(0, 0),
		core.C(9, 19),
		core.C(3, -2),
		core.C(-1, 5),
		core.C(-7, -7),
	}
	for _, c := range coords {
		assert.Equal(t, c, keyOf(c).coord(), "coord %v", c)
	}
	assert.NotEqual(t, keyOf(core.C(1, 2)), keyOf(core.C(2, 1)))
}

func TestLockedStoreBasics(t *testing.T) {
	s := NewLockedStore()
	assert.Equal(t, 0, s.Len())

	s.Set(core.C(1, 2), core.ColorRed)
	s.Set(core.C(0, 2), core.ColorBlue)
	s.Set(core.C(1, 2), core.ColorCyan) // overwrite

	assert.Equal(t, 2, s.Len())
	color, ok := s.Get(core.C(1, 2))
	assert.True(t, ok)
	assert.Equal(t, core.ColorCyan, color)
	assert.True(t, s.Has(core.C(0, 2)))
	assert.False(t, s.Has(core.C(2, 2)))

	s.Delete(core.C(0, 2))
	s.Delete(core.C(5, 5)) // absent, no-op
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Has(core.C(0, 2)))
}

func TestLockedStoreCoordsOrdered(t *testing.T) {
	s := storeOf(core.ColorRed, core.C(4, 3), core.C(1, 0), core.C(0, 3), core.C(2, 1))

	assert.Equal(t, []core.Coord{
		core.C(1, 0),
		core.C(2, 1),
		core.C(0, 3),
		core.C(4, 3),
	}, s.Coords())
}

func TestLockedStoreCloneIsIndependent(t *testing.T) {
	s := storeOf(core.ColorGreen, core.C(0, 0), core.C(1, 1))
	clone := s.Clone()
	clone.Set(core.C(2, 2), core.ColorGreen)
	clone.Delete(core.C(0, 0))

	assert.Equal(t, map[core.Coord]core.Color{
		core.C(0, 0): core.ColorGreen,
		core.C(1, 1): core.ColorGreen,
	}, s.Snapshot())
	assert.Equal(t, 2, clone.Len())
}
