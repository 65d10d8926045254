package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/registry"
	"github.com/vovakirdan/tumble/internal/storage"
)

// Rows taken by the status and help lines around the playfield.
const chromeRows = 2

// Options configures a terminal game session.
type Options struct {
	Config core.RuntimeConfig
	Store  *storage.Store // May be nil
	Logger *log.Logger
	// ExitOnGameOver quits as soon as the game ends instead of
	// offering a restart.
	ExitOnGameOver bool
	Renderer       *lipgloss.Renderer // Nil for stdout
}

// Model is the Bubble Tea model for playing one game in a terminal.
type Model struct {
	game     registry.Game
	opts     Options
	config   core.RuntimeConfig
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     GameKeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	frames   uint64
	width    int
	height   int
	best     int // Stored high score, 0 without a store
	saved    bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := Model{
		game:     game,
		opts:     opts,
		config:   cfg,
		renderer: NewScreenRenderer(opts.Renderer),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.screen = core.NewScreen(1, 1)
	m.fitScreen()

	game.Reset(m.config)
	m.state = game.State()
	m.loadBest()
	return m
}

// loadBest reads the stored high score for the game.
func (m *Model) loadBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
		return
	}
	m.best = best
}

// fitScreen sizes the playfield to the terminal, keeping the game's
// aspect ratio with cells about twice as tall as wide.
func (m *Model) fitScreen() {
	vw, vh := m.game.Viewport()
	rows := max(m.height-chromeRows, 1)
	cols := int(float64(rows) * float64(vw) / float64(vh) * 2)
	if m.width > 0 && cols > m.width {
		cols = m.width
		rows = max(int(float64(cols)*float64(vh)/float64(vw)/2), 1)
	}
	m.screen.Resize(max(cols, 1), rows)
	m.screen.SetViewport(float64(vw), float64(vh))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		if m.input.Has(core.ActionRestart) {
			m.restart()
		}
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	res := m.game.Step(m.input)
	m.input.Clear()
	m.state = res.State
	if !res.State.Paused {
		m.frames++
	}

	if m.state.GameOver {
		m.finish()
		if m.opts.ExitOnGameOver {
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// finish records the finished run once.
func (m *Model) finish() {
	m.keys.Restart.SetEnabled(true)
	if m.saved {
		return
	}
	m.saved = true

	m.opts.Logger.Info("game finished", "game", m.game.ID(), "score", m.state.Score, "frames", m.frames)
	if m.opts.Store == nil {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Seed:   m.config.Seed,
		Frames: m.frames,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.best = max(m.best, m.state.Score)
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.frames = 0
	m.saved = false
	m.keys.Restart.SetEnabled(false)
	m.opts.Logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// View renders the status line, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.state.GameOver {
		m.drawResult()
	}

	status := fmt.Sprintf("%s  pieces: %d", m.game.Title(), m.state.Score)
	if m.opts.Store != nil {
		status += fmt.Sprintf("  best: %d", m.best)
	}
	if m.state.Paused {
		status += "  PAUSED"
	}

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.renderer.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// drawResult overlays the final score on the playfield.
func (m Model) drawResult() {
	msg := ResultLine(m.state.Score)
	hint := "r: restart  q: quit"
	w := min(max(len(msg), len(hint))+4, m.screen.Width())
	h := min(5, m.screen.Height())
	box := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)

	m.screen.DrawRect(box, ' ', core.ColorWhite)
	m.screen.DrawBox(box, core.ColorBlack)
	m.screen.DrawTextCentered(box.Y+1, msg, core.ColorBlack)
	m.screen.DrawTextCentered(box.Y+3, hint, core.ColorDarkGray)
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.state
}

// ResultLine is the message shown when a game ends.
func ResultLine(score int) string {
	return fmt.Sprintf("Well done. You scored %d.", score)
}

// Run plays game in the local terminal and returns its final state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return core.GameState{}, nil
	}
	return m.State(), nil
}
