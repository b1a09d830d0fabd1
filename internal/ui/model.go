package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/shatter/internal/render"
	"github.com/olivier-w/shatter/internal/shatter"
	"github.com/olivier-w/shatter/internal/util"
)

type phase uint8

const (
	phaseIdle phase = iota
	phaseShattering
	phaseDone
)

// footerLines is the number of rows below the stage: blank, progress, help.
const footerLines = 3

const buttonLabel = "Shatter"

// Model is the Bubbletea model for the trigger screen. It owns the frame
// clock that drives the shatter animation and reports completion with a
// single ShatterCompleteMsg.
type Model struct {
	builder  *shatter.Builder
	timeline shatter.Timeline
	canvas   *render.Canvas
	progress progress.Model
	button   lipgloss.Style

	phase  phase
	width  int
	height int

	fragments  []shatter.Fragment
	transforms []shatter.Transform
	start      time.Time
	pct        float64
	statusMsg  string
}

// New creates a trigger screen using b for fragment generation.
func New(b *shatter.Builder) Model {
	cfg := b.Config()
	p := progress.New(
		progress.WithSolidFill(cfg.AccentColor),
		progress.WithoutPercentage(),
	)
	return Model{
		builder:  b,
		timeline: shatter.Timeline{Duration: cfg.Duration},
		canvas:   render.NewCanvas(0, 0, canvasBackground(), lipgloss.ColorProfile()),
		progress: p,
		button:   buttonStyle(cfg.AccentColor),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("shatter")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if isTrigger(msg) {
			return m.trigger(time.Now())
		}
		return m, nil

	case frameMsg:
		return m.advance(time.Time(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(m.width, m.stageHeight())
		m.progress.Width = clampBarWidth(msg.Width - 16)
		if m.phase == phaseShattering {
			m.draw()
		}
		return m, nil
	}

	return m, nil
}

// trigger builds a fragment field from the button's current on-screen
// bounds and starts the frame clock. It is a no-op while an animation is
// running or before the window has been measured.
func (m Model) trigger(now time.Time) (Model, tea.Cmd) {
	if m.phase != phaseIdle {
		return m, nil
	}
	rect := m.buttonRect()
	frags, err := m.builder.Build(rect, m.canvas.Viewport())
	if err != nil {
		log.Printf("trigger rejected: %v", err)
		m.statusMsg = "Nothing to shatter yet"
		return m, nil
	}
	log.Printf("shattering %.0fx%.0f at (%.0f,%.0f) into %d fragments", rect.Width, rect.Height, rect.X, rect.Y, len(frags))

	m.fragments = frags
	m.transforms = make([]shatter.Transform, 0, len(frags))
	m.phase = phaseShattering
	m.start = now
	m.pct = 0
	m.statusMsg = ""
	m.draw()
	return m, frameCmd()
}

func (m Model) advance(now time.Time) (Model, tea.Cmd) {
	if m.phase != phaseShattering {
		return m, nil
	}
	m.pct = m.timeline.Progress(now.Sub(m.start))
	m.draw()
	if !m.timeline.Done(m.pct) {
		return m, frameCmd()
	}

	log.Printf("shatter complete after %v", now.Sub(m.start))
	m.phase = phaseDone
	m.fragments = nil
	m.transforms = nil
	return m, completeCmd()
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.transforms = shatter.EvaluateAll(m.fragments, m.pct, m.transforms)
	for i := range m.transforms {
		m.canvas.DrawFragment(m.fragments[i], m.transforms[i])
	}
}

func (m Model) stageHeight() int {
	h := m.height - footerLines
	if h < 0 {
		return 0
	}
	return h
}

// buttonRect returns where View places the button, or an empty rect when
// the window is too small (or not yet known) to lay it out.
func (m Model) buttonRect() shatter.Rect {
	x, y, w, h, ok := m.buttonLayout()
	if !ok {
		return shatter.Rect{}
	}
	return shatter.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

func (m Model) buttonLayout() (x, y, w, h int, ok bool) {
	view := m.button.Render(buttonLabel)
	w, h = lipgloss.Width(view), lipgloss.Height(view)
	if m.width < w || m.stageHeight() < h {
		return 0, 0, w, h, false
	}
	return (m.width - w) / 2, (m.stageHeight() - h) / 2, w, h, true
}

func (m Model) View() string {
	var stage string
	switch m.phase {
	case phaseIdle:
		x, y, _, _, ok := m.buttonLayout()
		if !ok {
			stage = "\n  " + m.button.Render(buttonLabel)
			break
		}
		stage = placeAt(m.button.Render(buttonLabel), x, y, m.width, m.stageHeight())
	default:
		stage = m.canvas.String()
	}

	footer := "  " + m.progress.ViewAs(m.pct) + "  " +
		statusStyle.Render(fmt.Sprintf("%s / %s", util.FormatDuration(m.elapsed()), util.FormatDuration(m.timeline.Duration)))
	help := helpText(m.phase)
	if m.statusMsg != "" {
		help = m.statusMsg + "  ·  " + help
	}

	return stage + "\n\n" + footer + "\n" + "  " + helpStyle.Render(help)
}

func (m Model) elapsed() time.Duration {
	return time.Duration(m.pct * float64(m.timeline.Duration))
}
