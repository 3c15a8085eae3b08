package card

import "github.com/charmbracelet/lipgloss"

// StyleSheet is the application-level set of named styles that cards
// inherit from. The ui layer builds one per theme.
type StyleSheet map[string]lipgloss.Style

// Style names a card template may reference.
const (
	StyleBorder      = "border"
	StyleTitle       = "title"
	StyleSubtitle    = "subtitle"
	StyleDescription = "description"
	StyleVote        = "vote"
)

// Frame is the encapsulated render context every card component draws
// into. Construction copies every named style out of the application-level
// sheet, so the component renders with the same visual rules as the rest
// of the program while staying self-contained. The copy is a one-time
// snapshot: later changes to the sheet do not reach existing frames.
type Frame struct {
	styles map[string]lipgloss.Style
}

func newFrame(sheet StyleSheet) Frame {
	styles := make(map[string]lipgloss.Style, len(sheet))
	for name, style := range sheet {
		styles[name] = style
	}
	return Frame{styles: styles}
}

// Styles exposes the frame's style table for inspection.
func (f Frame) Styles() map[string]lipgloss.Style {
	return f.styles
}

func (f Frame) style(name string) lipgloss.Style {
	if style, ok := f.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
