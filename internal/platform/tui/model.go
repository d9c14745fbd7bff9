package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Options configure the terminal shell around a game.
type Options struct {
	Runtime       core.RuntimeConfig
	GameOverDelay time.Duration // How long the final screen stays up
	Logger        *log.Logger   // Nil discards log output
	Clock         core.Clock    // Nil uses the wall clock
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   *tetris.Game
	screen *core.Screen
	queue  *core.InputQueue
	clock  core.Clock
	keys   *KeyMapper
	help   help.Model
	logger *log.Logger

	config        core.RuntimeConfig
	gameOverDelay time.Duration
	gameState     core.GameState
	quitting      bool
}

// NewModel creates a Bubble Tea model and starts a fresh game.
func NewModel(game *tetris.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("game started", "seed", cfg.Seed, "fps", cfg.TickRate,
		"cols", game.Settings().Cols, "rows", game.Settings().Rows)

	// The wall clock starts here, so the first frame measures from setup.
	clock := opts.Clock
	if clock == nil {
		clock = core.NewRealClock()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		queue:         core.NewInputQueue(),
		clock:         clock,
		keys:          NewKeyMapper(DefaultKeyMap()),
		help:          h,
		logger:        logger,
		config:        cfg,
		gameOverDelay: opts.GameOverDelay,
		gameState:     game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case gameOverDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues the mapped action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		// Only a quit key cuts the final screen short.
		if _, isQuit := m.keys.MapKey(msg); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	m.keys.MapKeyToQueue(msg, m.queue)
	return m, nil
}

// handleResize processes window resize events. The bottom line is kept
// for the help footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game frame with the real time elapsed since the last.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.Done() {
		return m, nil
	}

	result := m.game.Frame(m.clock.Elapsed(), m.queue.Drain())
	m.gameState = result.State

	if ev := result.Lock; ev != nil {
		m.logger.Debug("piece locked",
			"piece", ev.Piece,
			"x", ev.Pos.X,
			"y", ev.Pos.Y,
			"cleared", ev.Cleared,
			"score", m.gameState.Score,
		)
	}

	switch {
	case m.gameState.Quit:
		m.logger.Info("player quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case m.gameState.GameOver:
		m.logger.Info("game over", "score", m.gameState.Score, "delay", m.gameOverDelay)
		return m, gameOverCmd(m.gameOverDelay)
	}

	return m, tickCmd(m.config.TickRate)
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program and blocks until the game ends.
// It returns the final game state.
func Run(game *tetris.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("run tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
