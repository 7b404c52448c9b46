package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarpenko/snaketerm/internal/core"
	"github.com/vkarpenko/snaketerm/internal/game"
	"github.com/vkarpenko/snaketerm/internal/storage"
)

// Model is the Bubble Tea model driving one game session. It owns the tick
// loop, translates key presses into intents, and hands state snapshots to
// the renderer. While the game is running, ticks self-schedule at the
// engine's current interval; once the run ends the chain stops and the
// session waits on input alone.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	quitting   bool
	scoreSaved bool
}

// NewModel creates a session model. store may be nil, in which case scores
// are simply not persisted.
func NewModel(g *game.Game, store *storage.Store, screenW, screenH int) Model {
	return Model{
		game:   g,
		screen: core.NewScreen(screenW, screenH),
		store:  store,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles input, resize and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The playable grid is fixed for the process lifetime; only the
		// drawing surface follows the terminal.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := core.TranslateKey(msg.String())

	switch intent.Kind {
	case core.IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case core.IntentRestart:
		if m.game.Status() == game.StatusEnded {
			m.game.Reset()
			m.scoreSaved = false
			// Ticking stopped on game over; restart resumes it.
			return m, tickCmd(m.game.TickInterval())
		}

	case core.IntentMove:
		m.game.ApplyIntent(intent)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Status() != game.StatusRunning {
		return m, nil
	}

	m.game.Step()

	if m.game.Status() == game.StatusEnded {
		m.persistScore()
		// No further ticks until a restart.
		return m, nil
	}

	return m, tickCmd(m.game.TickInterval())
}

// persistScore saves the finished run once, best effort.
func (m *Model) persistScore() {
	if m.scoreSaved || m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveScore(m.game.Score(), m.game.Won())
	m.scoreSaved = true
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, screenW, screenH int) error {
	p := tea.NewProgram(
		NewModel(g, store, screenW, screenH),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
