package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

const maxBoardRows = 100

// boardView is one of the scoreboard's tables.
type boardView int

const (
	viewScores boardView = iota
	viewSessions
	viewLeaderboard
	numViews
)

func (v boardView) String() string {
	switch v {
	case viewSessions:
		return "Recent"
	case viewLeaderboard:
		return "Accuracy"
	}
	return "Scores"
}

func (v boardView) columns() []table.Column {
	switch v {
	case viewSessions:
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Player", Width: 12},
			{Title: "Acc", Width: 6},
			{Title: "Hits", Width: 5},
			{Title: "React", Width: 7},
			{Title: "Rank", Width: 5},
		}
	case viewLeaderboard:
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 12},
			{Title: "Acc", Width: 6},
			{Title: "React", Width: 7},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 13},
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.NextView, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next range")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev range")),
		NextView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/recent/accuracy")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows scores, recent sessions and the accuracy
// leaderboard, one range at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	view       boardView
	store      *storage.Store
	rows       []table.Row
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard reading from store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload rebuilds the table for the current range and view.
func (m *ScoreboardModel) reload() {
	m.rows = m.loadRows()

	t := table.New(
		table.WithColumns(m.view.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	m.table = t
}

func (m *ScoreboardModel) loadRows() []table.Row {
	id := m.gameID()
	if m.store == nil || id == "" {
		return nil
	}

	switch m.view {
	case viewSessions:
		sessions, err := m.store.RecentSessions(id, maxBoardRows)
		if err != nil {
			return nil
		}
		rows := make([]table.Row, len(sessions))
		for i, s := range sessions {
			rows[i] = table.Row{
				s.CreatedAt.Format("Jan 02 15:04"), s.Player,
				fmt.Sprintf("%.0f%%", s.Accuracy), fmt.Sprintf("%d", s.Hits),
				reactionCell(s), fmt.Sprintf("%d", s.Rank),
			}
		}
		return rows

	case viewLeaderboard:
		board, err := m.store.Leaderboard(id, maxBoardRows)
		if err != nil {
			return nil
		}
		rows := make([]table.Row, len(board))
		for i, s := range board {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1), s.Player, fmt.Sprintf("%.1f%%", s.Accuracy),
				reactionCell(s), s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}

	scores, err := m.store.TopScores(id, maxBoardRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", s.Score), s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func reactionCell(s storage.SessionRecord) string {
	if !s.HasReaction {
		return "-"
	}
	return fmt.Sprintf("%.2fs", s.AvgReaction)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shiftGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shiftGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % numViews
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shiftGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")

	if len(m.games) > 0 {
		tabs := make([]string, len(m.games))
		for i, g := range m.games {
			style := boardTabStyle
			if i == m.gameCursor {
				style = boardActiveStyle
			}
			tabs[i] = style.Render(g.Title)
		}
		line := strings.Join(tabs, " ")
		if lipgloss.Width(line) > m.width-4 {
			line = boardActiveStyle.Render("< " + m.games[m.gameCursor].Title + " >")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	views := make([]string, numViews)
	for v := boardView(0); v < numViews; v++ {
		style := boardTabStyle
		if v == m.view {
			style = boardTitleStyle.Padding(0, 1)
		}
		views[v] = style.Render(v.String())
	}
	b.WriteString(centerText(strings.Join(views, ""), m.width))
	b.WriteString("\n\n")

	content := m.table.View()
	if len(m.rows) == 0 {
		content = boardEmptyStyle.Render("Nothing recorded yet.\nShoot a session to get on the board!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(content)))
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard as its own program. It reports whether
// the user backed out to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
