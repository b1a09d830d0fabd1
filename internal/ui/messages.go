package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fps           = 60
	frameInterval = time.Second / fps
)

// ShatterCompleteMsg is sent once when the shatter animation finishes.
type ShatterCompleteMsg struct{}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func completeCmd() tea.Cmd {
	return func() tea.Msg {
		return ShatterCompleteMsg{}
	}
}
