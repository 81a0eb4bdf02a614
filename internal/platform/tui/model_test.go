package tui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/core"
)

// fakeSim records Advance calls and draws a single white cell.
type fakeSim struct {
	dts       []float64
	frames    []core.InputFrame
	state     core.GameState
	renderErr error
}

func (f *fakeSim) Advance(dt float64, in core.InputFrame) {
	f.dts = append(f.dts, dt)
	f.frames = append(f.frames, in)
}

func (f *fakeSim) Render(dst core.Surface) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	if err := dst.Clear(core.ColorBlack); err != nil {
		return err
	}
	if err := dst.DrawText("hello", 0, 0); err != nil {
		return err
	}
	return dst.Present()
}

func (f *fakeSim) State() core.GameState {
	return f.state
}

func newTestModel(sim *fakeSim, logger *log.Logger) Model {
	return NewModel(sim, Options{TickRate: 60, KeyHold: 150 * time.Millisecond, ShowHelp: true, Width: 40, Height: 12}, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelFrameDelta(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)
	start := time.Unix(5000, 0)

	ticks := []time.Time{
		start,
		start.Add(20 * time.Millisecond),
		start.Add(20*time.Millisecond + 2*time.Second),
		start.Add(time.Second), // clock went backwards
	}
	for _, at := range ticks {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(at))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	want := []float64{1.0 / 60, 0.02, 0.1, 0}
	if len(sim.dts) != len(want) {
		t.Fatalf("Advance called %d times, want %d", len(sim.dts), len(want))
	}
	for i := range want {
		if math.Abs(sim.dts[i]-want[i]) > 1e-9 {
			t.Errorf("dt[%d] = %v, want %v", i, sim.dts[i], want[i])
		}
	}
}

func TestModelHeldKeysReachSimulation(t *testing.T) {
	sim := &fakeSim{}
	m := newTestModel(sim, nil)
	start := time.Unix(5000, 0)
	m.now = func() time.Time { return start }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(start.Add(10*time.Millisecond)))
	m, _ = update(t, m, TickMsg(start.Add(500*time.Millisecond)))

	if !sim.frames[0].Has(core.KeyLeft) {
		t.Error("first tick should see Left held")
	}
	if sim.frames[1].Has(core.KeyLeft) {
		t.Error("Left should expire after the hold window")
	}
	_ = m
}

func TestModelQuit(t *testing.T) {
	quitKeys := []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, msg := range quitKeys {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(&fakeSim{}, nil)
			m, cmd := update(t, m, msg)
			if cmd == nil {
				t.Fatal("quit key should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key should return tea.Quit")
			}
			if m.View() != "" {
				t.Error("View() after quit should be empty")
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(&fakeSim{}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}

	m.opts.ShowHelp = false
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Height() != 20 {
		t.Errorf("screen height without help = %d, want 20", m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeSim{}, nil)
	view := m.View()

	if !strings.Contains(view, "hello") {
		t.Errorf("View() missing rendered text:\n%s", view)
	}
	if !strings.Contains(view, "restart") {
		t.Errorf("View() missing help line:\n%s", view)
	}
}

func TestModelViewRenderError(t *testing.T) {
	m := newTestModel(&fakeSim{renderErr: errors.New("boom")}, nil)
	if view := m.View(); !strings.Contains(view, "boom") {
		t.Errorf("View() = %q, want render error", view)
	}
}

func TestModelLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sim := &fakeSim{}
	m := newTestModel(sim, logger)
	at := time.Unix(5000, 0)

	m, _ = update(t, m, TickMsg(at))
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	sim.state = core.GameState{Score: 40, GameOver: true}
	m, _ = update(t, m, TickMsg(at.Add(time.Millisecond)))
	m, _ = update(t, m, TickMsg(at.Add(2*time.Millisecond)))
	if strings.Count(buf.String(), "round over") != 1 {
		t.Errorf("want one round over entry, got:\n%s", buf.String())
	}

	sim.state = core.GameState{HighScore: 40}
	m, _ = update(t, m, TickMsg(at.Add(3*time.Millisecond)))
	if !strings.Contains(buf.String(), "round reset") {
		t.Errorf("missing round reset entry:\n%s", buf.String())
	}
	_ = m
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(&fakeSim{}, Options{}, nil)
	if m.opts.TickRate != 60 || m.opts.KeyHold != 150*time.Millisecond {
		t.Errorf("opts = %+v, want defaults", m.opts)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 80x24", m.screen.Width(), m.screen.Height())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}
