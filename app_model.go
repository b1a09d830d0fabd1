package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/shatter/internal/shatter"
	"github.com/olivier-w/shatter/internal/ui"
)

type appPhase uint8

const (
	phaseTrigger appPhase = iota
	phaseSuccess
)

// appModel routes messages to the active screen and navigates to the
// success screen once the shatter animation reports completion.
type appModel struct {
	trigger ui.Model
	success ui.SuccessModel
	phase   appPhase
	width   int
	height  int
}

func newAppModel(b *shatter.Builder) appModel {
	return appModel{
		trigger: ui.New(b),
		phase:   phaseTrigger,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.trigger.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ui.ShatterCompleteMsg:
		if m.phase == phaseSuccess {
			return m, nil
		}
		log.Print("navigating to success screen")
		m.phase = phaseSuccess
		m.success = ui.NewSuccess()
		model, _ := m.success.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		if success, ok := model.(ui.SuccessModel); ok {
			m.success = success
		}
		return m, m.success.Init()
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSuccess:
		model, cmd := m.success.Update(msg)
		if success, ok := model.(ui.SuccessModel); ok {
			m.success = success
		}
		return m, cmd
	default:
		model, cmd := m.trigger.Update(msg)
		if trigger, ok := model.(ui.Model); ok {
			m.trigger = trigger
		}
		return m, cmd
	}
}

func (m appModel) View() string {
	if m.phase == phaseSuccess {
		return m.success.View()
	}
	return m.trigger.View()
}
