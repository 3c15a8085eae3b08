package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"faceoff/internal/card"
)

// Theme is a named color palette.
type Theme struct {
	Primary    string
	Secondary  string
	Text       string
	Subtle     string
	Background string
	Error      string
	Success    string
}

var Themes = map[string]Theme{
	"default": {
		Primary:    "#7D56F4",
		Secondary:  "#04B575",
		Text:       "#FAFAFA",
		Subtle:     "#737373",
		Background: "#1A1A1A",
		Error:      "#FF5F56",
		Success:    "#04B575",
	},
	"dracula": {
		Primary:    "#BD93F9",
		Secondary:  "#8BE9FD",
		Text:       "#F8F8F2",
		Subtle:     "#6272A4",
		Background: "#282A36",
		Error:      "#FF5555",
		Success:    "#50FA7B",
	},
	"nord": {
		Primary:    "#88C0D0",
		Secondary:  "#81A1C1",
		Text:       "#ECEFF4",
		Subtle:     "#4C566A",
		Background: "#2E3440",
		Error:      "#BF616A",
		Success:    "#A3BE8C",
	},
	"gruvbox": {
		Primary:    "#FABD2F",
		Secondary:  "#83A598",
		Text:       "#EBDBB2",
		Subtle:     "#928374",
		Background: "#282828",
		Error:      "#FB4934",
		Success:    "#B8BB26",
	},
}

// GetThemeNames returns all theme names, sorted for a stable cycle order.
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles holds all the UI styles
type Styles struct {
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpSep   lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Dialog    lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		HelpSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Secondary)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Primary)).
			Padding(1, 2),
	}
}

// NewStyleSheet builds the application-level sheet that card frames copy
// their styles from.
func NewStyleSheet(theme Theme) card.StyleSheet {
	return card.StyleSheet{
		card.StyleBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1),
		card.StyleTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),
		card.StyleSubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Secondary)).
			Underline(true),
		card.StyleDescription: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),
		card.StyleVote: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Success)),
	}
}
