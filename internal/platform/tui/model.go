package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Rows reserved above and below the field for the HUD and help line.
const chromeRows = 2

// Minimum terminal size that still fits the overlays.
const (
	minCols = 30
	minRows = 8
)

// Model is the Bubble Tea model for an invaders session.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	canvas   *Canvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model driving the given game.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 1))
	fieldW, fieldH := game.Field()

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: screen,
		canvas: NewCanvas(screen, fieldW, fieldH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(holdTicksFor(cfg.TickRate)),
		logger: logger,
	}
}

// Init waits on the start screen; ticks begin once the game starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.State().Score)
		return m, tea.Quit

	case core.ActionStart:
		return m.start()

	case core.ActionRestart:
		if m.game.Phase() == invaders.StateStart {
			return m.start()
		}
		return m.restart()

	case core.ActionLeft, core.ActionRight, core.ActionFire:
		if m.game.State().Playing {
			m.held.Press(action)
		}
	}

	return m, nil
}

// start leaves the start screen and begins ticking.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.game.Start() {
		return m, nil
	}
	m.held.Reset()
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session. A tick is scheduled only if the loop had
// stopped, so there is never more than one tick in flight.
func (m Model) restart() (tea.Model, tea.Cmd) {
	resume := m.game.Restart()
	m.held.Reset()
	m.logger.Info("game restarted")
	if !resume {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// handleResize fits the field to the new terminal size. The logical field
// is independent of the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := max(msg.Height-chromeRows, 1)
	m.screen.Resize(msg.Width, rows)
	m.canvas.SetViewport(0, 0, msg.Width, rows)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the current held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.game.State().Playing {
		return m, nil
	}

	result := m.game.Step(m.held.Snapshot())
	m.held.Tick()

	// The loop stops with the game; Start or Restart resumes it
	if !result.State.Playing {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// draw renders the game and overlays into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()

	if m.screen.Width() < minCols || m.screen.Height() < minRows {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small")
		return
	}

	m.game.Render(m.canvas)

	st := m.game.State()
	switch m.game.Phase() {
	case invaders.StateStart:
		m.drawOverlay("SPACE INVADERS", "Press Enter to start", "←/→ move  space fire")
	case invaders.StateGameOver:
		m.drawOverlay("GAME OVER", fmt.Sprintf("Final score: %d", st.Score), "Press R to restart")
	}
}

// drawOverlay draws a centered box with a title and message lines.
func (m *Model) drawOverlay(title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	x := (m.screen.Width() - boxW) / 2
	y := (m.screen.Height() - boxH) / 2

	m.screen.DrawRect(x, y, boxW, boxH, ' ')
	m.screen.DrawBox(x, y, boxW, boxH)
	m.screen.DrawTextColored(x+(boxW-len([]rune(title)))/2, y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		m.screen.DrawText(x+(boxW-len([]rune(l)))/2, y+3+i, l)
	}
}

// hudLine returns the score line shown above the field.
func (m Model) hudLine() string {
	st := m.game.State()
	line := hudStyle.Render(fmt.Sprintf("SCORE %-6d WAVE %d", st.Score, st.Wave))
	if st.PowerUp {
		line += "  " + powerStyle.Render("POWER UP")
	}
	return line
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("invaders_%s.txt", timestamp))
	st := m.game.State()
	text := fmt.Sprintf("SCORE %d WAVE %d\n%s\n", st.Score, st.Wave, m.screen.String())
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(m.hudLine())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Options configures a terminal session.
type Options struct {
	Config  config.InvadersConfig
	Runtime core.RuntimeConfig
	Audio   invaders.Audio
	Logger  *log.Logger
}

// NewGame builds a game wired to the session's audio and log.
func NewGame(opts Options) *invaders.Game {
	return invaders.New(opts.Config,
		invaders.WithAudio(opts.Audio),
		invaders.WithReporter(newLogReporter(opts.Logger)),
		invaders.WithSeed(opts.Runtime.Seed),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	model := NewModel(NewGame(opts), opts.Runtime, opts.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
