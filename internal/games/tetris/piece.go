package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Piece is the falling polyomino: a shape anchored by its bounding-box
// top-left corner at Pos.
type Piece struct {
	Name  string
	Pos   core.Coord
	Shape Shape
	Color core.Color
}

// Cells returns the absolute grid coordinates of the occupied cells.
func (p Piece) Cells() []core.Coord {
	cells := make([]core.Coord, 0, 4)
	for i, row := range p.Shape {
		for j, occupied := range row {
			if occupied {
				cells = append(cells, p.Pos.Add(j, i))
			}
		}
	}
	return cells
}

// Rotated returns the piece's shape turned clockwise without changing the piece.
func (p Piece) Rotated() Shape {
	return p.Shape.Rotate()
}

// Spawner draws pieces uniformly at random from a fixed shape set.
// Each draw is independent; there is no bag.
type Spawner struct {
	defs   []ShapeDef
	anchor core.Coord
	rng    *rand.Rand
}

// NewSpawner creates a spawner anchoring new pieces at anchor.
func NewSpawner(defs []ShapeDef, anchor core.Coord, rng *rand.Rand) *Spawner {
	return &Spawner{defs: defs, anchor: anchor, rng: rng}
}

// Spawn returns a fresh piece at the spawn anchor.
func (s *Spawner) Spawn() Piece {
	return s.piece(s.defs[s.rng.Intn(len(s.defs))])
}

// SpawnNamed returns a piece of the named shape, or false if unknown.
func (s *Spawner) SpawnNamed(name string) (Piece, bool) {
	for _, d := range s.defs {
		if d.Name == name {
			return s.piece(d), true
		}
	}
	return Piece{}, false
}

func (s *Spawner) piece(d ShapeDef) Piece {
	return Piece{
		Name:  d.Name,
		Pos:   s.anchor,
		Shape: d.Shape.Clone(),
		Color: d.Color,
	}
}
