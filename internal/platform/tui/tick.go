// Package tui runs a registered game in the terminal with Bubble Tea.
// It owns the tick loop, key mapping, the help footer and color output;
// games only see input frames and a screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to step the game once.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval. The model re-arms it
// after every tick, so a slow frame delays the game instead of piling up ticks.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
