// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it.
type TickMsg struct {
	Gen int64
	At  time.Time
}

// tickGens hands out a generation per game model, so a tick scheduled by a
// model that was left for the menu never drives its successor.
var tickGens atomic.Int64

// tickCmd returns a Bubble Tea command that delivers one TickMsg after interval.
// The model reschedules it from every tick so ticks never overlap.
func tickCmd(interval time.Duration, gen int64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
