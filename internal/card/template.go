package card

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Template identifiers, matching the item type tags the generators emit.
const (
	templatePlain  = "simple-card"
	templateTicket = "ticket-card"
)

const roleVote = "vote"

type slotID string

const (
	slotTitle       slotID = "title"
	slotSubtitle    slotID = "subtitle"
	slotDescription slotID = "description"
)

// templateLine is one declarative line of a card template: either a named
// insertion point (slot) or a static element, optionally carrying a role.
type templateLine struct {
	slot  slotID
	role  string
	text  string
	style string
}

type cardTemplate struct {
	lines []templateLine
}

var templates = map[string]cardTemplate{
	templatePlain: {
		lines: []templateLine{
			{slot: slotTitle, style: StyleTitle},
			{role: roleVote, text: "↳ vote", style: StyleVote},
		},
	},
	templateTicket: {
		lines: []templateLine{
			{slot: slotTitle, style: StyleTitle},
			{slot: slotSubtitle, style: StyleSubtitle},
			{slot: slotDescription, style: StyleDescription},
			{role: roleVote, text: "↳ vote", style: StyleVote},
		},
	},
}

// componentLine is a cloned template line plus its populated content.
type componentLine struct {
	templateLine
	content string
	hidden  bool
}

// Component is one renderable card: a frame with the program's styles and
// a clone of a named template. It is created fresh for every render and
// never cached.
type Component struct {
	frame Frame
	lines []componentLine
	votes []*componentLine
}

// newComponent clones the named template into a fresh component, opening a
// styled frame and capturing every vote-role element of the clone.
func newComponent(name string, sheet StyleSheet) (*Component, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown card template %q", name)
	}

	c := &Component{frame: newFrame(sheet)}
	c.lines = make([]componentLine, len(tmpl.lines))
	for i, line := range tmpl.lines {
		c.lines[i] = componentLine{templateLine: line}
	}
	for i := range c.lines {
		if c.lines[i].role == roleVote {
			c.votes = append(c.votes, &c.lines[i])
		}
	}

	return c, nil
}

// HideVoteLinks sets every vote-role element to not-displayed. Idempotent;
// a card without vote elements is a valid no-op.
func (c *Component) HideVoteLinks() {
	for _, vote := range c.votes {
		vote.hidden = true
	}
}

// VoteLinksHidden reports whether all vote-role elements are hidden. False
// for a card without any.
func (c *Component) VoteLinksHidden() bool {
	if len(c.votes) == 0 {
		return false
	}
	for _, vote := range c.votes {
		if !vote.hidden {
			return false
		}
	}
	return true
}

func (c *Component) setSlot(slot slotID, content string) {
	for i := range c.lines {
		if c.lines[i].slot == slot {
			c.lines[i].content = content
		}
	}
}

// setLink fills a slot with a link: the visible name followed by the
// target.
func (c *Component) setLink(slot slotID, href, name string) {
	c.setSlot(slot, fmt.Sprintf("%s (%s)", name, href))
}

// Frame exposes the component's render context for inspection.
func (c *Component) Frame() Frame {
	return c.frame
}

// Render draws the card at the given total width. Hidden elements and
// unfilled slots are omitted.
func (c *Component) Render(width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var lines []string
	for _, line := range c.lines {
		if line.hidden {
			continue
		}
		content := line.text
		if line.slot != "" {
			content = line.content
			if content == "" {
				continue
			}
		}
		style := c.frame.style(line.style)
		lines = append(lines, style.Render(truncate(content, inner)))
	}

	border := c.frame.style(StyleBorder)
	return border.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) > maxWidth {
		return runewidth.Truncate(s, maxWidth, "…")
	}
	return s
}
