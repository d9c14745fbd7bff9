package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame   uint64
	State   string
	Score   int
	Lines   int
	Pieces  int
	Current string // Shape name of the falling piece
	Pos     core.Coord
	Shape   string // Current orientation, see Shape.String
	Next    string
	Locked  map[core.Coord]core.Color
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:   g.frames,
		State:   g.state.String(),
		Score:   g.score,
		Lines:   g.lines,
		Pieces:  g.pieces,
		Current: g.current.Name,
		Pos:     g.current.Pos,
		Shape:   g.current.Shape.String(),
		Next:    g.next.Name,
		Locked:  g.store.Snapshot(),
	}
}
