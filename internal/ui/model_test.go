package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/shatter/internal/shatter"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := shatter.DefaultConfig()
	cfg.GridSize = 4
	b, err := shatter.NewBuilder(cfg, shatter.NewSource(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(b)
}

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestTriggerBeforeLayoutIsRejected(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.trigger(time.Now())
	if cmd != nil {
		t.Fatal("expected no command when geometry is unavailable")
	}
	if next.phase != phaseIdle {
		t.Fatalf("expected phaseIdle, got %v", next.phase)
	}
	if next.statusMsg == "" {
		t.Fatal("expected a status message explaining the rejection")
	}
}

func TestTriggerInTinyWindowIsRejected(t *testing.T) {
	m := sized(t, newTestModel(t), 6, 4)

	next, cmd := m.trigger(time.Now())
	if cmd != nil || next.phase != phaseIdle {
		t.Fatalf("expected rejected trigger, got phase %v", next.phase)
	}
}

func TestTriggerBuildsFieldFromButtonBounds(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	rect := m.buttonRect()
	if rect.Empty() {
		t.Fatal("expected button bounds after sizing")
	}

	next, cmd := m.trigger(time.Now())
	if cmd == nil {
		t.Fatal("expected frame command")
	}
	if next.phase != phaseShattering {
		t.Fatalf("expected phaseShattering, got %v", next.phase)
	}
	if len(next.fragments) != 16 {
		t.Fatalf("expected 16 fragments, got %d", len(next.fragments))
	}
	first := next.fragments[0]
	if first.StartX != rect.X || first.StartY != rect.Y {
		t.Fatalf("expected first fragment at button origin (%v,%v), got (%v,%v)", rect.X, rect.Y, first.StartX, first.StartY)
	}
	if !strings.Contains(next.View(), "█") {
		t.Fatal("expected fragments drawn on the first frame")
	}
}

func TestRetriggerWhileShatteringIsIgnored(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	start := time.Now()
	m, _ = m.trigger(start)
	frags := m.fragments

	next, cmd := m.trigger(start.Add(100 * time.Millisecond))
	if cmd != nil {
		t.Fatal("expected re-trigger to be ignored")
	}
	if &next.fragments[0] != &frags[0] {
		t.Fatal("expected the running field to be kept")
	}
}

func TestFramesAdvanceAndCompleteOnce(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	start := time.Now()
	m, _ = m.trigger(start)

	next, cmd := m.Update(frameMsg(start.Add(750 * time.Millisecond)))
	m = next.(Model)
	if m.pct != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", m.pct)
	}
	if cmd == nil {
		t.Fatal("expected another frame to be scheduled")
	}
	if _, ok := cmd().(ShatterCompleteMsg); ok {
		t.Fatal("completion fired early")
	}

	next, cmd = m.Update(frameMsg(start.Add(2 * time.Second)))
	m = next.(Model)
	if m.phase != phaseDone || m.pct != 1 {
		t.Fatalf("expected done at progress 1, got phase %v progress %v", m.phase, m.pct)
	}
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	if _, ok := cmd().(ShatterCompleteMsg); !ok {
		t.Fatal("expected ShatterCompleteMsg")
	}

	next, cmd = m.Update(frameMsg(start.Add(3 * time.Second)))
	if cmd != nil {
		t.Fatal("expected completion to fire only once")
	}
	if next.(Model).phase != phaseDone {
		t.Fatal("expected model to stay done")
	}
}

func TestStrayFrameWhileIdleIsIgnored(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	next, cmd := m.Update(frameMsg(time.Now()))
	if cmd != nil || next.(Model).phase != phaseIdle {
		t.Fatal("expected idle model to ignore frames")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestIdleViewFillsWindow(t *testing.T) {
	m := sized(t, newTestModel(t), 60, 20)
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected 20 rows, got %d", got)
	}
	if !strings.Contains(view, buttonLabel) {
		t.Fatal("expected button label in idle view")
	}
}

func TestFrameIntervalMatchesRefreshRate(t *testing.T) {
	if frameInterval != time.Second/60 {
		t.Fatalf("expected a 60 FPS frame interval, got %v", frameInterval)
	}
	if _, ok := frameCmd()().(frameMsg); !ok {
		t.Fatal("expected frameCmd to deliver a frameMsg")
	}
}
