package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Rotate, k.Quit},
	}
}

// DefaultKeyMap returns arrow keys plus vim-style letters.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k", " "),
			key.WithHelp("↑/k/space", "rotate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionSoftDrop, false
	case key.Matches(msg, km.keys.Rotate):
		return core.ActionRotate, false
	}
	return core.ActionNone, false
}

// MapKeyToQueue pushes the mapped action, if any, onto the queue.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToQueue(msg tea.KeyMsg, queue *core.InputQueue) bool {
	action, isQuit := km.MapKey(msg)
	queue.Push(action)
	return isQuit
}
