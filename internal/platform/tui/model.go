package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/core"
)

// World extent drawn by the simulation, in world units.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// maxFrameDelta caps dt after a stalled tick (suspended terminal, slow link).
const maxFrameDelta = 100 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal frame driver.
type Options struct {
	TickRate int           // Frames per second
	KeyHold  time.Duration // How long a key press counts as held
	ShowHelp bool          // Show the key help line under the playfield
	Width    int           // Initial terminal width in cells
	Height   int           // Initial terminal height in cells
}

// DefaultOptions returns options suitable for an 80x24 terminal at 60 FPS.
func DefaultOptions() Options {
	return Options{
		TickRate: 60,
		KeyHold:  150 * time.Millisecond,
		ShowHelp: true,
		Width:    80,
		Height:   24,
	}
}

// Model is the Bubble Tea model that drives a simulation frame by frame.
type Model struct {
	sim     core.Simulation
	screen  *core.Screen
	surface *TerminalSurface
	keys    KeyMap
	held    *HeldKeys
	help    help.Model
	logger  *log.Logger
	opts    Options
	now     func() time.Time

	lastTick time.Time
	watcher  core.Watcher
	quitting bool
}

// NewModel creates a frame driver for sim. A nil logger discards output.
func NewModel(sim core.Simulation, opts Options, logger *log.Logger) Model {
	defaults := DefaultOptions()
	if opts.TickRate <= 0 {
		opts.TickRate = defaults.TickRate
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = defaults.KeyHold
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaults.Width, defaults.Height
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Width, playfieldHeight(opts.Height, opts.ShowHelp))
	h := help.New()
	h.Width = opts.Width

	return Model{
		sim:     sim,
		screen:  screen,
		surface: NewTerminalSurface(screen, WorldWidth, WorldHeight),
		keys:    DefaultKeyMap(),
		held:    NewHeldKeys(opts.KeyHold),
		help:    h,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
	}
}

// playfieldHeight reserves the bottom line for help when it is shown.
func playfieldHeight(height int, showHelp bool) int {
	if showHelp {
		return max(height-1, 1)
	}
	return height
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses; the simulation only sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(m.keys.Resolve(msg), m.now())
	return m, nil
}

// handleResize refits the playfield to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width, m.opts.Height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height, m.opts.ShowHelp))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the time elapsed since the last tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.sim.Advance(m.frameDelta(at), m.held.Frame(at))
	m.lastTick = at
	m.reportTransition()

	return m, tickCmd(m.opts.TickRate)
}

// frameDelta returns dt in seconds. The first frame uses the nominal
// interval; later frames use wall time, capped at maxFrameDelta.
func (m Model) frameDelta(at time.Time) float64 {
	if m.lastTick.IsZero() {
		return 1 / float64(m.opts.TickRate)
	}
	elapsed := at.Sub(m.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	return min(elapsed, maxFrameDelta).Seconds()
}

// reportTransition logs when a round ends or restarts.
func (m *Model) reportTransition() {
	switch t, state := m.watcher.Observe(m.sim); t {
	case core.TransitionOver:
		m.logger.Info("round over", "score", state.Score, "high_score", state.HighScore)
	case core.TransitionReset:
		m.logger.Info("round reset", "high_score", state.HighScore)
	}
}

// View renders the simulation into the cell buffer and styles it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if err := m.sim.Render(m.surface); err != nil {
		m.logger.Error("render failed", "error", err)
		return "render failed: " + err.Error()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.opts.ShowHelp {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts a Bubble Tea program driving sim in the alternate screen.
func Run(sim core.Simulation, opts Options, logger *log.Logger) error {
	model := NewModel(sim, opts, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
