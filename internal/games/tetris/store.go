package tetris

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// cellKey packs a coordinate into one integer so the store can use an
// open-addressing int map. Both halves keep their sign through uint32.
type cellKey uint64

func keyOf(c core.Coord) cellKey {
	return cellKey(uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y))))
}

func (k cellKey) coord() core.Coord {
	return core.C(int(int32(uint32(k>>32))), int(int32(uint32(k))))
}

// LockedStore maps grid coordinates of locked blocks to their colors.
// It is owned by a single Game and never shared.
type LockedStore struct {
	cells *intmap.Map[cellKey, core.Color]
}

// NewLockedStore creates an empty store.
func NewLockedStore() *LockedStore {
	return &LockedStore{cells: intmap.New[cellKey, core.Color](256)}
}

// Set records a block at c, replacing any previous color.
func (s *LockedStore) Set(c core.Coord, color core.Color) {
	s.cells.Put(keyOf(c), color)
}

// Get returns the color at c and whether a block is present.
func (s *LockedStore) Get(c core.Coord) (core.Color, bool) {
	return s.cells.Get(keyOf(c))
}

// Has reports whether a block is present at c.
func (s *LockedStore) Has(c core.Coord) bool {
	_, ok := s.cells.Get(keyOf(c))
	return ok
}

// Delete removes the block at c, if any.
func (s *LockedStore) Delete(c core.Coord) {
	s.cells.Del(keyOf(c))
}

// Len returns the number of locked blocks.
func (s *LockedStore) Len() int {
	return s.cells.Len()
}

// Each calls fn for every block in unspecified order.
// fn must not modify the store.
func (s *LockedStore) Each(fn func(c core.Coord, color core.Color)) {
	s.cells.ForEach(func(k cellKey, color core.Color) bool {
		fn(k.coord(), color)
		return true
	})
}

// Coords returns all block coordinates ordered by row, then column.
func (s *LockedStore) Coords() []core.Coord {
	coords := make([]core.Coord, 0, s.Len())
	s.Each(func(c core.Coord, _ core.Color) {
		coords = append(coords, c)
	})
	slices.SortFunc(coords, func(a, b core.Coord) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return coords
}

// Snapshot returns a plain map copy of the store.
func (s *LockedStore) Snapshot() map[core.Coord]core.Color {
	out := make(map[core.Coord]core.Color, s.Len())
	s.Each(func(c core.Coord, color core.Color) {
		out[c] = color
	})
	return out
}

// Clone returns an independent copy of the store.
func (s *LockedStore) Clone() *LockedStore {
	out := NewLockedStore()
	s.Each(out.Set)
	return out
}
