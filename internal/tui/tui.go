// Package tui renders an interactive leaderboard of ranked hands. The rule
// variant can be toggled live to see how joker resolution reshuffles the
// ordering.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cameldeck/camelcards/camel"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for the hand leaderboard
type Model struct {
	mode     camel.Mode
	rankings map[camel.Mode][]camel.Ranked
	totals   camel.Totals
	table    table.Model
	quitting bool
}

// New builds a leaderboard model. Both variants are ranked up front so a
// malformed hand set fails before the program starts.
func New(hands []camel.Hand) (Model, error) {
	standard, err := camel.Rank(hands, camel.Standard)
	if err != nil {
		return Model{}, fmt.Errorf("ranking standard variant: %w", err)
	}
	wildcard, err := camel.Rank(hands, camel.Wildcard)
	if err != nil {
		return Model{}, fmt.Errorf("ranking wildcard variant: %w", err)
	}
	totals, err := camel.ScoreBoth(hands)
	if err != nil {
		return Model{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Hand", Width: 7},
		{Title: "Category", Width: 17},
		{Title: "Stake", Width: 8},
		{Title: "Winnings", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(len(hands), 15)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("14"))
	t.SetStyles(styles)

	m := Model{
		mode: camel.Standard,
		rankings: map[camel.Mode][]camel.Ranked{
			camel.Standard: standard,
			camel.Wildcard: wildcard,
		},
		totals: totals,
		table:  t,
	}
	m.table.SetRows(m.rows())
	return m, nil
}

// rows builds the table rows for the active mode, strongest hand first.
func (m Model) rows() []table.Row {
	ranked := m.rankings[m.mode]
	rows := make([]table.Row, 0, len(ranked))
	for i := len(ranked) - 1; i >= 0; i-- {
		r := ranked[i]
		rank := i + 1
		rows = append(rows, table.Row{
			strconv.Itoa(rank),
			r.Hand.String(),
			r.Category.String(),
			strconv.FormatInt(r.Hand.Stake(), 10),
			strconv.FormatInt(int64(rank)*r.Hand.Stake(), 10),
		})
	}
	return rows
}

// total returns the active mode's final score.
func (m Model) total() int64 {
	if m.mode == camel.Wildcard {
		return m.totals.Wildcard
	}
	return m.totals.Standard
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "w":
			if m.mode == camel.Standard {
				m.mode = camel.Wildcard
			} else {
				m.mode = camel.Standard
			}
			m.table.SetRows(m.rows())
			return m, nil
		}
	case tea.WindowSizeMsg:
		height := msg.Height - 6 // title, total and help lines
		if height < 3 {
			height = 3
		}
		if n := len(m.rankings[m.mode]); height > n {
			height = n
		}
		m.table.SetHeight(height)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("Camel Cards") + "  " + modeStyle.Render(m.mode.String())
	total := totalStyle.Render(fmt.Sprintf("total winnings: %d", m.total()))
	help := helpStyle.Render("tab: switch variant • ↑/↓: scroll • q: quit")

	return header + "\n" + total + "\n\n" + m.table.View() + "\n" + help + "\n"
}
