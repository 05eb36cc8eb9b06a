package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/registry"
	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

const (
	minWidthForSidebar = 96 // narrower terminals get level tabs instead
	sidebarWidth       = 20
	maxRuns            = 100
)

// ScoreboardKeyMap holds the run history bindings.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLevel, k.NextLevel, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the run history bindings. Level switching
// accepts tab and the horizontal arrows.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextLevel: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next level")),
		PrevLevel: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev level")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardPickStyle.Background(lipgloss.Color("57")).Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	levels      []registry.GameInfo
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.LevelStats
	err         error
	tickRate    int
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard showing the level start first, or
// the first registered level when start is empty or unknown.
func NewScoreboardModel(store *storage.Store, width, height int, start string) ScoreboardModel {
	m := ScoreboardModel{
		levels:      registry.List(),
		store:       store,
		tickRate:    core.DefaultConfig().TickRate,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, l := range m.levels {
		if l.ID == start {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRuns(m.levels[m.cursor].ID)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Outcome", Width: 8},
		{Title: "Kills", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Spare width goes to the player name
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[5].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // title, stats, help and borders
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(st)
	return t
}

// loadRuns loads the best runs and the totals of a level.
func (m *ScoreboardModel) loadRuns(levelID string) {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.runs, m.err = m.store.TopRuns(levelID, maxRuns); m.err == nil {
			m.stats, m.err = m.store.Stats(levelID)
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r, m.tickRate)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats one run for display. Ticks become play time at tickRate.
func RunRow(rank int, r storage.Run, tickRate int) []string {
	player := r.Player
	if player == "" {
		player = "-"
	}
	return []string{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", r.Score),
		string(r.Outcome),
		fmt.Sprintf("%d", r.Kills),
		PlayTime(r.Ticks, tickRate),
		player,
		r.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

// PlayTime formats ticks as minutes and seconds.
func PlayTime(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

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
		case key.Matches(msg, m.keys.NextLevel):
			m.shiftLevel(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.shiftLevel(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// shiftLevel moves the level cursor by delta, wrapping at both ends.
func (m *ScoreboardModel) shiftLevel(delta int) {
	n := len(m.levels)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.loadRuns(m.levels[m.cursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "RUN HISTORY"
	if len(m.levels) > 0 {
		title += " - " + m.levels[m.cursor].Title
	}

	var body string
	box := boardBoxStyle.Render(m.tableContent())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", box)
	} else {
		body = centerText(m.tabs(), m.width) + "\n\n" + centerText(box, m.width)
	}

	return strings.Join([]string{
		boardTitleStyle.Render(centerText(title, m.width)),
		boardStatsStyle.Render(centerText(m.statsLine(), m.width)),
		"",
		body,
		boardHelpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// statsLine summarizes every run of the level, won or lost.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("runs %d  escaped %d  best %d  avg %.0f  kills %d",
		st.Runs, st.Wins, st.BestScore, st.AvgScore, st.TotalKills)
}

// sidebar lists the levels in a box to the left of the table.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Levels", strings.Repeat("-", sidebarWidth-4)}
	for i, l := range m.levels {
		name := truncate(l.Title, sidebarWidth-6)
		if i == m.cursor {
			lines = append(lines, boardPickStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return boardBoxStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// tabs shows the levels in one row, or only the current one between arrows
// when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.levels) == 0 {
		return ""
	}
	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		style := boardTabStyle
		if i == m.cursor {
			style = boardActiveTab
		}
		tabs[i] = style.Render(truncate(l.Title, 10))
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = "< " + m.levels[m.cursor].Title + " >"
	}
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.err != nil:
		return boardEmptyStyle.Render("Cannot read run history:\n" + m.err.Error())
	case len(m.runs) == 0:
		return boardEmptyStyle.Render("No runs recorded yet.\nReach the door to set a score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the run history in the terminal and reports whether
// the user left it with back rather than quit.
func RunScoreboard(store *storage.Store, width, height int, start string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, start), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, _ := final.(ScoreboardModel)
	return m.IsGoingBack(), nil
}
