// Package tui provides the Bubble Tea integration for the walkway game.
// It handles the frame loop, key and resize events, and rendering; all
// gameplay state lives in the sim package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock timestamp of one animation frame.
// The simulation derives Δt from consecutive timestamps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
