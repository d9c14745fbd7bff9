// Package tui runs the tetris simulation inside a Bubble Tea program.
// It owns the terminal loop, key mapping, the real-time clock and the
// final-screen pause.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// gameOverDoneMsg ends the final-screen pause.
type gameOverDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd fires once the final screen has been shown for delay.
func gameOverCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gameOverDoneMsg{}
	})
}
