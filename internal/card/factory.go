package card

import (
	"encoding/json"
	"fmt"
)

// cardSpec is the decoded form of a raw item: exactly one variant per
// recognized item type.
type cardSpec interface {
	templateName() string
}

// PlainCardSpec renders as a title plus a vote affordance.
type PlainCardSpec struct {
	Title string
}

// TicketCardSpec renders as a title, a subtitle link, a free-text
// description and a vote affordance.
type TicketCardSpec struct {
	Title       string
	Subtitle    SubtitleLink
	Description string
}

// SubtitleLink is the link shown in a ticket card's subtitle.
type SubtitleLink struct {
	Href string `json:"href"`
	Name string `json:"name"`
}

func (PlainCardSpec) templateName() string  { return templatePlain }
func (TicketCardSpec) templateName() string { return templateTicket }

// wireItem is the structured encoding of an item payload.
type wireItem struct {
	Type        string        `json:"type"`
	Title       string        `json:"title"`
	Subtitle    *SubtitleLink `json:"subtitle"`
	Description string        `json:"description"`
}

// decodeSpec decodes a raw item into its card variant. Decode failure is
// the defined representation of a freeform text item, never an error. A
// structured item with an unrecognized type IS an error: the system
// defines no default card for it.
func decodeSpec(raw string) (cardSpec, error) {
	var w *wireItem
	if err := json.Unmarshal([]byte(raw), &w); err != nil || w == nil {
		return PlainCardSpec{Title: raw}, nil
	}

	switch w.Type {
	case templatePlain:
		return PlainCardSpec{Title: w.Title}, nil
	case templateTicket:
		spec := TicketCardSpec{Title: w.Title, Description: w.Description}
		if w.Subtitle != nil {
			spec.Subtitle = *w.Subtitle
		}
		return spec, nil
	default:
		return nil, fmt.Errorf("no card variant for item type %q", w.Type)
	}
}

// DecodeTitle returns the display title of a raw item: the structured
// title when the item decodes, the raw string otherwise.
func DecodeTitle(raw string) string {
	spec, err := decodeSpec(raw)
	if err != nil {
		return raw
	}
	switch s := spec.(type) {
	case PlainCardSpec:
		if s.Title == "" {
			return raw
		}
		return s.Title
	case TicketCardSpec:
		if s.Title == "" {
			return raw
		}
		return s.Title
	}
	return raw
}

// EncodeTicket builds the structured payload for a ticket item.
func EncodeTicket(title, href, name, description string) (string, error) {
	data, err := json.Marshal(wireItem{
		Type:        templateTicket,
		Title:       title,
		Subtitle:    &SubtitleLink{Href: href, Name: name},
		Description: description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket item: %w", err)
	}
	return string(data), nil
}

// View is a rendering-only projection of one item. It has no identity
// beyond its backing item and is recreated on every render.
type View struct {
	component *Component
}

// Render draws the view at the given width.
func (v *View) Render(width int) string {
	return v.component.Render(width)
}

// Component exposes the backing component for inspection.
func (v *View) Component() *Component {
	return v.component
}

// Factory turns raw item payloads into card views.
type Factory struct {
	sheet StyleSheet
}

func NewFactory(sheet StyleSheet) Factory {
	return Factory{sheet: sheet}
}

// RenderItem decodes a raw item, instantiates the matching card variant
// and populates its slots. voteHidden suppresses the vote affordance.
// Rendering the same input twice produces two independent equivalent
// views. An unrecognized item type is a contract violation and returns an
// error; callers are expected to treat it as fatal.
func (f Factory) RenderItem(raw string, voteHidden bool) (*View, error) {
	spec, err := decodeSpec(raw)
	if err != nil {
		return nil, err
	}

	component, err := newComponent(spec.templateName(), f.sheet)
	if err != nil {
		return nil, err
	}

	if voteHidden {
		component.HideVoteLinks()
	}

	switch s := spec.(type) {
	case PlainCardSpec:
		component.setSlot(slotTitle, s.Title)
	case TicketCardSpec:
		component.setSlot(slotTitle, s.Title)
		component.setLink(slotSubtitle, s.Subtitle.Href, s.Subtitle.Name)
		component.setSlot(slotDescription, s.Description)
	}

	return &View{component: component}, nil
}
