package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one second of the game clock. generation ties it to the game that scheduled it.
type tickMsg struct {
	generation int
}

func tickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}
