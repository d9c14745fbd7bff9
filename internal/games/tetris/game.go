// Package tetris implements the falling-block puzzle simulation: grid,
// pieces, collision and line clearing, and the frame-driven controller.
// It is UI-agnostic; the platform layer feeds it elapsed time and input
// actions and draws the View it produces.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the controller's lifecycle state.
type State int

const (
	StateRunning  State = iota
	StateGameOver       // A new piece could not be placed at the spawn point
	StateQuit           // The player left before losing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Settings are the immutable game constants, built once at startup.
type Settings struct {
	Cols         int
	Rows         int
	FallInterval time.Duration
	PointsPerRow int
	Spawn        core.Coord
	Shapes       []ShapeDef
}

// DefaultSettings returns the standard 10×20 game.
func DefaultSettings() Settings {
	s, err := NewSettings(config.DefaultTetrisConfig())
	if err != nil {
		panic(fmt.Sprintf("tetris: default config is invalid: %v", err))
	}
	return s
}

// NewSettings derives game constants from a loaded configuration.
func NewSettings(cfg config.TetrisConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("tetris: %w", err)
	}
	shapes, err := ShapesFromConfig(cfg.Shapes)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Cols:         cfg.Board.Cols(),
		Rows:         cfg.Board.Rows(),
		FallInterval: cfg.Timing.FallDuration(),
		PointsPerRow: cfg.Scoring.PointsPerRow,
		Spawn:        cfg.Spawn.Coord(),
		Shapes:       shapes,
	}, nil
}

// LockEvent describes one piece locking into the stack.
type LockEvent struct {
	Piece   string     // Shape name of the locked piece
	Pos     core.Coord // Anchor where it locked
	Cleared int        // Rows cleared by this lock
	Points  int        // Score gained
}

// FrameResult is returned by Frame.
type FrameResult struct {
	State core.GameState
	Lock  *LockEvent // Set when gravity locked a piece this frame
}

// View is what the render shell needs for one frame.
type View struct {
	Grid   *Grid // Locked blocks with the falling piece overlaid
	Next   Piece
	Score  int
	Lines  int
	Pieces int
	State  State
}

// Game is the state controller. It exclusively owns the locked store and
// is driven from a single goroutine.
type Game struct {
	settings Settings
	spawner  *Spawner
	store    *LockedStore
	grid     *Grid

	current Piece
	next    Piece

	fallAcc time.Duration
	score   int
	lines   int
	pieces  int
	frames  uint64
	state   State

	lastLock *LockEvent
}

// New creates a game with the given settings. Call Reset before use.
func New(settings Settings) *Game {
	return &Game{settings: settings}
}

// Settings returns the constants the game was built with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset starts a new game with an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = NewSpawner(g.settings.Shapes, g.settings.Spawn, rand.New(rand.NewSource(cfg.Seed)))
	g.store = NewLockedStore()
	g.rebuildGrid()

	g.current = g.spawner.Spawn()
	g.next = g.spawner.Spawn()

	g.fallAcc = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.frames = 0
	g.state = StateRunning
	g.lastLock = nil
}

func (g *Game) rebuildGrid() {
	g.grid = CreateGrid(g.settings.Cols, g.settings.Rows, g.store)
}

// Frame runs one iteration of the game loop: rebuild the grid, advance
// gravity by elapsed real time, then apply the drained input actions in
// order. Frames after the game has ended do nothing.
func (g *Game) Frame(elapsed time.Duration, actions []core.Action) FrameResult {
	if g.state != StateRunning {
		return FrameResult{State: g.State()}
	}
	g.frames++

	g.rebuildGrid()

	g.fallAcc += elapsed
	var lock *LockEvent
	if g.fallAcc >= g.settings.FallInterval {
		lock = g.gravity()
		g.fallAcc = 0
	}

	if g.state == StateRunning {
		for _, a := range actions {
			g.apply(a)
			if g.state != StateRunning {
				break
			}
		}
	}

	return FrameResult{State: g.State(), Lock: lock}
}

// gravity moves the current piece down one row, locking it if it cannot fall.
func (g *Game) gravity() *LockEvent {
	if g.tryMove(0, 1) {
		return nil
	}
	return g.lock()
}

// lock transfers the current piece into the store, clears rows, scores,
// and brings in the next piece. The game ends if that piece cannot spawn.
func (g *Game) lock() *LockEvent {
	Place(g.current, g.store)
	cleared := ClearRows(g.store, g.settings.Cols, g.settings.Rows)
	points := cleared * g.settings.PointsPerRow

	ev := &LockEvent{
		Piece:   g.current.Name,
		Pos:     g.current.Pos,
		Cleared: cleared,
		Points:  points,
	}
	g.score += points
	g.lines += cleared
	g.pieces++
	g.lastLock = ev

	g.rebuildGrid()
	g.current = g.next
	g.next = g.spawner.Spawn()
	if !ValidPosition(g.current, g.grid) {
		g.state = StateGameOver
	}
	return ev
}

// apply handles one input action. Rejected moves are reverted.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		g.tryMove(-1, 0)
	case core.ActionMoveRight:
		g.tryMove(1, 0)
	case core.ActionSoftDrop:
		g.tryMove(0, 1)
	case core.ActionRotate:
		g.rotate()
	case core.ActionQuit:
		g.state = StateQuit
	}
}

// tryMove shifts the current piece and undoes the shift if it collides.
func (g *Game) tryMove(dx, dy int) bool {
	g.current.Pos = g.current.Pos.Add(dx, dy)
	if ValidPosition(g.current, g.grid) {
		return true
	}
	g.current.Pos = g.current.Pos.Add(-dx, -dy)
	return false
}

// rotate turns the current piece clockwise. An illegal rotation is undone
// by rotating three more times, completing the 4-cycle.
func (g *Game) rotate() bool {
	g.current.Shape = g.current.Rotated()
	if ValidPosition(g.current, g.grid) {
		return true
	}
	for range 3 {
		g.current.Shape = g.current.Rotated()
	}
	return false
}

// Current returns the falling piece.
func (g *Game) Current() Piece {
	return g.current
}

// Next returns the buffered preview piece.
func (g *Game) Next() Piece {
	return g.next
}

// Store returns the locked-positions store. Callers must not mutate it
// while the game is running.
func (g *Game) Store() *LockedStore {
	return g.store
}

// LastLock returns the most recent lock event, or nil.
func (g *Game) LastLock() *LockEvent {
	return g.lastLock
}

// Phase returns the lifecycle state.
func (g *Game) Phase() State {
	return g.state
}

// View returns the data to draw this frame. The falling piece is overlaid
// on a copy of the grid, never on the store.
func (g *Game) View() View {
	grid := CreateGrid(g.settings.Cols, g.settings.Rows, g.store)
	if g.state == StateRunning {
		grid = grid.WithPiece(g.current)
	}
	return View{
		Grid:   grid,
		Next:   g.next,
		Score:  g.score,
		Lines:  g.lines,
		Pieces: g.pieces,
		State:  g.state,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Quit:     g.state == StateQuit,
	}
}
