package ui

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flipgrid/internal/config"
	"github.com/five82/flipgrid/internal/flip"
	"github.com/five82/flipgrid/internal/grid"
	"github.com/five82/flipgrid/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    config.Config
	States    []*flip.State // built from Config when nil
	ThemeName string
	Exclusive bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	keys      keyMap
	prefsPath string

	// Shared with flip listeners
	s    *session
	grid *grid.View

	// UI state
	width    int
	height   int
	ready    bool
	ticking  bool
	showHelp bool

	// Shown in the header while cards turn
	spin spinner.Model

	// Jump-to input
	jumping   bool
	jumpInput textinput.Model

	// Event log
	eventViewport viewport.Model
}

// ForceMsg drives one card to a side from outside the UI, as the autoplay
// driver does.
type ForceMsg struct {
	Position int
	Side     flip.Side
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}

	states := opts.States
	if states == nil {
		states = make([]*flip.State, cfg.Items)
		for i := range states {
			states[i] = flip.NewState(i, cfg.Flip)
		}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	s := newSession(cfg, states, GetTheme(themeName), opts.Exclusive)
	view := grid.NewView(grid.NewAdapter(states, s.paint), cfg.Columns, cfg.Rows, cfg.Card)

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Prompt = "jump to card: "
	input.Placeholder = "number"
	input.CharLimit = 9

	return Model{
		ctx:           ctx,
		keys:          DefaultKeyMap(),
		prefsPath:     opts.PrefsPath,
		s:             s,
		grid:          view,
		spin:          spin,
		jumpInput:     input,
		eventViewport: viewport.New(0, EventLogHeight),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flipgrid")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.fitGrid()
		m.eventViewport.Width = msg.Width
		m.syncEvents()
		return m.startFrames()

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case spinner.TickMsg:
		if !m.ticking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ForceMsg:
		if msg.Position >= 0 && msg.Position < len(m.s.states) {
			m.s.states[msg.Position].ForceTo(msg.Side)
		}
		return m.startFrames()
	}

	if m.jumping {
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.s.theme = GetTheme(NextTheme(m.s.theme.Name))
		m.repaint()
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		m.grid.Move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.grid.Move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.grid.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.grid.Move(1, 0)
	case key.Matches(msg, m.keys.PageUp):
		m.grid.Scroll(-m.grid.Rows())
	case key.Matches(msg, m.keys.PageDown):
		m.grid.Scroll(m.grid.Rows())

	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jumpInput.Reset()
		return m, m.jumpInput.Focus()

	case key.Matches(msg, m.keys.Flip):
		m.grid.Click()
	case key.Matches(msg, m.keys.ForceFront):
		if st := m.grid.SelectedState(); st != nil {
			st.ForceTo(flip.Front)
		}
	case key.Matches(msg, m.keys.ForceBack):
		if st := m.grid.SelectedState(); st != nil {
			st.ForceTo(flip.Back)
		}
	case key.Matches(msg, m.keys.ResetAll):
		m.s.forceAll(flip.Front)
	case key.Matches(msg, m.keys.Exclusive):
		m.s.exclusive = !m.s.exclusive
		if m.s.exclusive {
			m.s.record("one card open at a time")
		} else {
			m.s.record("cards flip independently")
		}
		m.savePrefs()
	}

	return m.startFrames()
}

// handleJumpKey routes keys to the jump-to input.
func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeJump()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		n, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err == nil && n >= 1 && n <= len(m.s.states) {
			m.grid.ScrollTo(n - 1)
			m.grid.Select(n - 1)
		}
		m.closeJump()
		return m.startFrames()
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) closeJump() {
	m.jumping = false
	m.jumpInput.Blur()
	m.jumpInput.Reset()
}

// handleFrame advances every turning card to now.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	animating := m.grid.Advance(now)
	m.syncEvents()
	if animating {
		return m, frameCmd()
	}
	m.ticking = false
	return m, nil
}

// startFrames schedules frame ticks when a card started turning and none
// are scheduled yet.
func (m Model) startFrames() (tea.Model, tea.Cmd) {
	m.syncEvents()
	if m.ticking || !m.grid.Animating() {
		return m, nil
	}
	m.ticking = true
	return m, tea.Batch(frameCmd(), m.spin.Tick)
}

// fitGrid shrinks the configured grid to what the terminal can show.
func (m *Model) fitGrid() {
	cellW, cellH := m.s.cfg.Card.Footprint()
	avail := m.height - HeaderHeight - FooterHeight - EventLogHeight - 1
	cols := min(m.s.cfg.Columns, max(1, m.width/cellW))
	rows := min(m.s.cfg.Rows, max(1, avail/cellH))
	selected := m.grid.Selected()
	m.grid.Resize(cols, rows)
	m.grid.Select(selected)
}

// repaint refreshes the faces of the visible cards after a theme change.
func (m *Model) repaint() {
	for _, row := range m.grid.Cells() {
		for _, cell := range row {
			m.s.paint(cell.Position, cell.Card)
		}
	}
}

func (m *Model) syncEvents() {
	m.eventViewport.SetContent(strings.Join(m.s.events, "\n"))
	m.eventViewport.GotoBottom()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.s.theme.Name, Exclusive: m.s.exclusive}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// NewProgram wraps a Model in a Bubble Tea program bound to ctx.
func NewProgram(opts Options) *tea.Program {
	m := New(opts)
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
}
