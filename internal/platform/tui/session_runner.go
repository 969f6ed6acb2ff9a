package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
	"github.com/bitbreak/minicade/internal/session"
	"github.com/bitbreak/minicade/internal/storage"
)

// SessionRunnerModel plays a planned sequence of games back to back.
// It enforces each game's tick budget, forwards score changes through
// the session hooks, and ends with an animated summary screen. Games
// are unaware of the budget; the runner cuts them off from outside.
type SessionRunnerModel struct {
	sess       *session.Session
	store      *storage.Store
	config     core.RuntimeConfig
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	game      registry.Game
	gameState core.GameState
	budget    int // Tick budget for the current game, 0 = unlimited
	ticksUsed int
	interlude int // Ticks left on the "next up" card between games

	summary  *SummaryModel
	saved    bool
	quitting bool
}

// Ticks the "next up" card stays on screen between games.
const interludeTicks = 90

// NewSessionRunnerModel creates a runner for the given plan.
func NewSessionRunnerModel(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) SessionRunnerModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return SessionRunnerModel{
		sess:       sess,
		store:      store,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the first planned game.
func (m SessionRunnerModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// startNext creates and resets the next planned game.
// Each game gets its own seed derived from the base seed and position.
func (m *SessionRunnerModel) startNext() error {
	planned, ok := m.sess.NextGame()
	if !ok {
		return fmt.Errorf("tui: session plan exhausted")
	}

	game, err := registry.Create(planned.GameID)
	if err != nil {
		return err
	}

	cfg := m.config
	cfg.Seed = m.config.Seed + int64(m.sess.GamesPlayed())
	game.Reset(cfg)

	m.game = game
	m.gameState = game.State()
	m.budget = planned.Budget
	m.ticksUsed = 0
	m.inputFrame.Clear()
	return nil
}

// Update handles messages for the session runner.
func (m SessionRunnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SessionRunnerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.summary != nil {
		// Quit keys always exit; anything else skips the count-up the
		// first time and closes the summary once it has settled
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionQuit || m.summary.Done() {
			m.quitting = true
			return m, tea.Quit
		}
		m.summary.Skip()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the current game, the interlude, or the summary.
func (m SessionRunnerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.summary != nil {
		m.summary.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	// Between games: hold the "next up" card, then start
	if m.game == nil {
		if m.interlude > 0 {
			m.interlude--
			return m, tickCmd(m.config.TickRate)
		}
		if err := m.startNext(); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	// Run one simulation tick
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	if !m.gameState.Paused {
		m.ticksUsed++
	}

	m.sess.ReportScore(m.game.ID(), m.gameState.Score)

	// The game ends on its own or the budget cuts it off
	outOfTime := m.budget > 0 && m.ticksUsed >= m.budget
	if m.gameState.GameOver || outOfTime {
		m.sess.CompleteGame(session.GameResult{
			GameID:    m.game.ID(),
			Score:     m.gameState.Score,
			Completed: m.gameState.GameOver,
			Ticks:     m.ticksUsed,
		})
		m.game = nil

		if m.sess.Done() {
			m.finish()
		} else {
			m.interlude = interludeTicks
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// finish persists the session and opens the summary screen.
func (m *SessionRunnerModel) finish() {
	if m.store != nil && !m.saved {
		record := storage.SessionRecord{
			SessionID:   string(m.sess.ID()),
			TotalScore:  m.sess.TotalScore(),
			GamesPlayed: m.sess.GamesPlayed(),
			Duration:    int(m.sess.Duration().Seconds()),
		}
		games := make([]storage.SessionGame, 0, len(m.sess.Results()))
		for i, r := range m.sess.Results() {
			games = append(games, storage.SessionGame{
				SessionID: string(m.sess.ID()),
				GameID:    r.GameID,
				Score:     r.Score,
				Completed: r.Completed,
				Position:  i,
			})
		}
		//nolint:errcheck // Best-effort save, the summary shows regardless
		m.store.SaveSession(record, games)
		m.saved = true
	}

	s := NewSummaryModel(m.sess, m.config)
	m.summary = &s
}

// View renders the current game, interlude, or summary.
func (m SessionRunnerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.summary != nil {
		return m.summary.View()
	}

	if m.game == nil {
		return m.renderInterlude()
	}

	m.game.Render(m.screen)

	// Budget countdown overlaid on the game's top row
	if m.budget > 0 {
		left := (m.budget - m.ticksUsed) / m.config.TickRate
		label := fmt.Sprintf(" %ds ", left)
		m.screen.DrawTextColor(m.screen.Width()-len(label)-2, 0, label, core.ColorOrange)
	}

	return RenderScreen(m.screen)
}

// renderInterlude draws the "next up" card between games.
func (m SessionRunnerModel) renderInterlude() string {
	m.screen.Clear()

	planned, ok := m.sess.NextGame()
	if ok {
		info, exists := registry.Get(planned.GameID)
		title := planned.GameID
		if exists {
			title = info.Title
		}
		m.screen.DrawTextCentered(m.screen.Height()/2-2, "NEXT UP")
		m.screen.DrawTextCentered(m.screen.Height()/2, title)
		m.screen.DrawTextCentered(m.screen.Height()/2+2,
			fmt.Sprintf("Game %d of %d  |  Total so far: %d",
				m.sess.GamesPlayed()+1, len(m.sess.Plan().Games), m.sess.TotalScore()))
	}

	return RenderScreen(m.screen)
}

// RunSession runs a full session plan through the terminal UI.
func RunSession(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionRunnerModel(sess, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
