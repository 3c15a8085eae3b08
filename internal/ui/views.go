package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var content string

	switch m.state {
	case StateLoading:
		content = m.loadingView()
	case StateSetup:
		content = m.setupView()
	case StateComparing:
		content = m.comparingView()
	case StateResults:
		content = m.resultsView()
	default:
		return "Unknown state"
	}

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	return content
}

func (m *Model) loadingView() string {
	status := fmt.Sprintf("%s Restoring session...", m.spinner.View())

	content := m.styles.Dialog.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Title.Render("Faceoff"),
			"",
			m.styles.Normal.Render(status),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Center, content, "", m.renderHelpLine([]helpEntry{{"ctrl+c", "quit"}}))
}

func (m *Model) setupView() string {
	if m.ticket != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("Add ticket item"),
			"",
			m.ticket.View(),
		)
	}

	var list string
	if len(m.itemTitles) == 0 {
		list = m.styles.Help.Render("no items yet")
	} else {
		lines := make([]string, 0, len(m.itemTitles))
		for i, title := range m.itemTitles {
			lines = append(lines, m.styles.Normal.Render(fmt.Sprintf("%2d. %s", i+1, title)))
		}
		list = strings.Join(lines, "\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Faceoff — what are we ranking?"),
		"",
		list,
		"",
		m.input.View(),
	)

	dialog := m.styles.Dialog.Render(content)

	parts := []string{dialog}
	if m.statusMessage != "" {
		parts = append(parts, "", m.styles.Error.Render(m.statusMessage))
	}
	parts = append(parts, "", m.renderHelpLine([]helpEntry{
		{"enter", "add item"},
		{"empty enter", "start"},
		{"ctrl+t", "ticket item"},
		{"ctrl+c", "quit"},
	}))

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) comparingView() string {
	title := m.styles.Title.Render("Which do you prefer?")

	gap := "   "
	pair := lipgloss.JoinHorizontal(lipgloss.Top, m.leftRegion, gap, m.rightRegion)

	hints := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.HelpKey.Render("←/h"),
		m.styles.HelpDesc.Render(" this one"),
		strings.Repeat(" ", max(lipgloss.Width(pair)-24, 2)),
		m.styles.HelpKey.Render("→/l"),
		m.styles.HelpDesc.Render(" this one"),
	)

	parts := []string{title, "", pair, hints, ""}
	parts = append(parts, m.renderHelpLine([]helpEntry{
		{"←/→", "vote"},
		{"T", "theme"},
		{"q", "quit"},
	}))

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) resultsView() string {
	title := m.styles.Title.Render("Results")

	var rows []string
	for i, view := range m.resultViews {
		rank := m.styles.Highlight.Render(fmt.Sprintf("#%d", i+1))
		points := m.styles.HelpDesc.Render(fmt.Sprintf("%d points", m.ranked[i].Score))
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, rank+" "+points, view))
	}
	board := strings.Join(rows, "\n")
	if board == "" {
		board = m.styles.Help.Render("nothing was ranked")
	}

	parts := []string{title, "", board, ""}
	if m.statusMessage != "" {
		parts = append(parts, m.styles.Success.Render(m.statusMessage), "")
	}
	parts = append(parts, m.renderHelpLine([]helpEntry{
		{"c", "copy"},
		{"s", "new round"},
		{"T", "theme"},
		{"q", "quit"},
	}))

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Help rendering

type helpEntry struct {
	key  string
	desc string
}

func (m *Model) renderHelpLine(entries []helpEntry) string {
	var parts []string
	sep := m.styles.HelpSep.Render(" · ")
	for _, e := range entries {
		parts = append(parts, m.styles.HelpKey.Render(e.key)+" "+m.styles.HelpDesc.Render(e.desc))
	}
	return strings.Join(parts, sep)
}
