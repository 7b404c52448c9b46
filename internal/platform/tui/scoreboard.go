package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkarpenko/snaketerm/internal/storage"
)

const maxScoreboardEntries = 100

// scoreboardKeyMap defines the key bindings for the scoreboard view.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

func defaultScoreboardKeyMap() scoreboardKeyMap {
	return scoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11")).
				Padding(0, 1)

	scoreboardBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel is the Bubble Tea model for the high-score table.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     scoreboardKeyMap
	stats    *storage.Stats
	quitting bool
}

// NewScoreboard builds the scoreboard from stored runs.
func NewScoreboard(store *storage.Store) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreboardEntries)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("scoreboard: %w", err)
	}
	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("scoreboard: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Result", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		result := "crashed"
		if e.Won {
			result = "won"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			result,
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("15"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("10")).Bold(true)
	t.SetStyles(styles)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  defaultScoreboardKeyMap(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quitting.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, the table and the help line.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("snaketerm — High Scores")
	summary := fmt.Sprintf(" %d games · best %d · %d wins",
		m.stats.Games, m.stats.HighScore, m.stats.Wins)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		scoreboardBorderStyle.Render(m.table.View()),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive high-score table.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboard(store)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
