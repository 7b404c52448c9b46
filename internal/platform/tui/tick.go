// Package tui provides the Bubble Tea integration for snaketerm: the game
// loop, screen rendering, the scoreboard view and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent to trigger one simulation step.
type tickMsg time.Time

// tickCmd schedules the next simulation tick after the given interval.
// The interval is re-read every tick, so speed scaling takes effect as soon
// as the engine recomputes it.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
