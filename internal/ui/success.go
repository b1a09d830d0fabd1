package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	slideDistance = 24
	successTitle  = "shatter: done"
)

// SuccessModel is the screen shown after the shatter completes. The title
// springs in from the right, then the screen stays put until a key press.
type SuccessModel struct {
	title   slide
	settled bool
	width   int
}

func NewSuccess() SuccessModel {
	return SuccessModel{title: newSlide(slideDistance)}
}

func (m SuccessModel) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle(successTitle))
}

func (m SuccessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case frameMsg:
		if m.settled {
			return m, nil
		}
		m.settled = m.title.step(0)
		if m.settled {
			return m, nil
		}
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m SuccessModel) View() string {
	indent := 2 + max(m.title.offset(), 0)

	lines := "\n"
	lines += strings.Repeat(" ", indent) + titleStyle.Render("Shattered.") + "\n"
	lines += "  " + helpStyle.Render(strings.Repeat("─", min(max(m.width-4, 10), 40))) + "\n"
	lines += "  " + subtitleStyle.Render("The button is gone. Nothing else happened.") + "\n"
	lines += "\n"
	lines += "  " + helpStyle.Render("press any key to exit") + "\n"
	return lines
}
