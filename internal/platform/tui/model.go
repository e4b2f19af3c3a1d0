package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrevlas/starwalk/internal/config"
	"github.com/andrevlas/starwalk/internal/core"
	"github.com/andrevlas/starwalk/internal/sim"
)

// Screen rows reserved around the walkway.
const (
	hudRows  = 2 // metrics line + separator
	helpRows = 1 // bubbles help footer below the buffer
)

// hudPanel receives the simulation's throttled metric publications and
// holds the latest values for the HUD. Keeping it behind a pointer lets
// the value-typed Bubble Tea model share one panel across updates.
type hudPanel struct {
	metrics sim.Metrics
	valid   bool
}

// ObserveMetrics implements sim.Observer.
func (p *hudPanel) ObserveMetrics(m sim.Metrics) {
	p.metrics = m
	p.valid = true
}

// Model is the Bubble Tea model running the walkway simulation.
type Model struct {
	sim     *sim.Simulation
	screen  *core.Screen
	hud     *hudPanel
	keys    KeyMap
	help    help.Model
	display config.DisplayConfig
	sustain time.Duration

	// pressed maps held key identifiers to their synthesized release
	// time. Terminals deliver no key-up events, so a press counts as
	// held for a short sustain window that repeats refresh.
	pressed map[string]time.Time

	quitting bool
}

// NewModel creates a model for the given configuration, terminal size,
// and RNG seed.
func NewModel(cfg config.Config, width, height int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	display := cfg.Display
	hud := &hudPanel{}

	s := sim.New(playBounds(width, height, display), cfg.Tuning(), seed)
	s.SetObserver(hud)

	return Model{
		sim:     s,
		screen:  core.NewScreen(width, max(1, height-helpRows)),
		hud:     hud,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		display: display,
		sustain: time.Duration(display.KeySustainMS) * time.Millisecond,
		pressed: make(map[string]time.Time),
	}
}

// playBounds converts a terminal size into play-area world dimensions.
// The HUD and help rows are excluded from the walkway.
func playBounds(width, height int, display config.DisplayConfig) core.Bounds {
	cols := max(1, width)
	rows := max(1, height-hudRows-helpRows)
	return core.Bounds{
		W: float64(cols) * display.CellWidth,
		H: float64(rows) * display.CellHeight,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.display.TickRate)
}

// Update handles messages and advances the model.
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

// handleKey processes keyboard input. Recognized movement keys are fed
// to the simulation and marked held; everything else falls through
// except the quit binding.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	k := msg.String()
	if m.sim.KeyDown(k) {
		m.pressed[k] = time.Now().Add(m.sustain)
	}

	return m, nil
}

// handleResize recomputes the play area and fully resets the session,
// mirroring how a window resize restarts the walk.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	m.sim.Reset(playBounds(msg.Width, msg.Height, m.display))
	m.hud.valid = false

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Synthesize key releases for presses past their sustain window.
	for k, expiry := range m.pressed {
		if now.After(expiry) {
			m.sim.KeyUp(k)
			delete(m.pressed, k)
		}
	}

	m.sim.Advance(now)

	return m, tickCmd(m.display.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.sim.Snapshot(), m.display, m.hud)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the walkway game.
func Run(cfg config.Config, width, height int, seed int64) error {
	model := NewModel(cfg, width, height, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
